package prell

// --- A general purpose type for token categories ---------------------------

// TokType is a category type for a terminal symbol. Terminals of a grammar
// carry a token value of this type, assigned by the client (or by package
// gdef when grammars are read from text). We do not define any constants
// here, except for the two pseudo-terminals every analysis needs.
type TokType int

// Token values reserved for pseudo-terminals. Client-assigned token values
// must be positive; 0 and all negative values are reserved.
const (
	EpsilonType TokType = 0  // ε, the empty string
	EOFType     TokType = -1 // '$', the end-of-input marker
)

// TokTypeStringer is a type for mapping token values back to a printable
// name. Grammars provide one for their terminal alphabet.
type TokTypeStringer func(TokType) string
