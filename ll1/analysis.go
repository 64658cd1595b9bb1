package ll1

import (
	"github.com/gramkit/prell"
	"golang.org/x/tools/container/intsets"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 4.5, Creating LL(1) Parsers: FIRST, FOLLOW and PREDICT sets.
//
// All computations are iterative fixed-point passes over the rule list.
// The sets involved only ever grow and are bounded by the terminal alphabet
// (plus ε resp. end-of-input), so each loop terminates after at most
// |non-terminals| · (|terminals|+1) changes, regardless of cycles or
// left-recursion in the grammar.

// LL1Analysis holds the results of the static analysis of a grammar:
// epsilon-derivability, FIRST, FOLLOW and PREDICT sets. Create one with
// Analysis(g); the results are frozen from then on.
type LL1Analysis struct {
	g           *Grammar
	derivesEps  map[*Symbol]bool
	firstSets   map[*Symbol]*intsets.Sparse
	followSets  map[*Symbol]*intsets.Sparse
	predictSets []*intsets.Sparse // indexed by rule serial
}

// Analysis analyses a grammar and computes its FIRST, FOLLOW and PREDICT
// sets. The set members are token values; use g.TokTypeStringer() to map
// them back to symbol names. ε is represented by token value 0, the
// end-of-input marker by -1.
func Analysis(g *Grammar) *LL1Analysis {
	ga := &LL1Analysis{
		g:          g,
		derivesEps: make(map[*Symbol]bool),
		firstSets:  make(map[*Symbol]*intsets.Sparse),
		followSets: make(map[*Symbol]*intsets.Sparse),
	}
	ga.markEpsilons()
	ga.computeFirstSets()
	ga.computeFollowSets()
	ga.computePredictSets()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *LL1Analysis) Grammar() *Grammar {
	return ga.g
}

// DerivesEpsilon returns true iff non-terminal A can derive the empty
// string, directly or through a chain of nullable non-terminals.
func (ga *LL1Analysis) DerivesEpsilon(A *Symbol) bool {
	return ga.derivesEps[A]
}

// First returns FIRST(A) for a non-terminal A: all terminals which can
// begin a derivation of A, plus ε if A is nullable.
// The returned set is a copy; callers may modify it freely.
func (ga *LL1Analysis) First(A *Symbol) *intsets.Sparse {
	return copySet(ga.firstSets[A])
}

// Follow returns FOLLOW(A) for a non-terminal A: all terminals which can
// immediately follow A in a derivation from the start symbol, plus the
// end-of-input marker where applicable.
// The returned set is a copy; callers may modify it freely.
func (ga *LL1Analysis) Follow(A *Symbol) *intsets.Sparse {
	return copySet(ga.followSets[A])
}

// Predict returns PREDICT(r) for a rule r: the set of lookahead tokens on
// which a predictive parser selects r. It equals FIRST(RHS) without ε,
// extended by FOLLOW(LHS) iff the RHS can derive the empty string.
// The returned set is a copy; callers may modify it freely.
func (ga *LL1Analysis) Predict(r *Rule) *intsets.Sparse {
	if r == nil || r.Serial < 0 || r.Serial >= len(ga.predictSets) {
		return &intsets.Sparse{}
	}
	return copySet(ga.predictSets[r.Serial])
}

// FirstOf returns FIRST(seq) for an arbitrary sequence of grammar symbols.
// It walks the sequence left to right: a terminal contributes itself and
// stops the walk; a non-terminal contributes FIRST of it without ε and
// stops the walk unless it is nullable. If the walk consumes the whole
// sequence, ε is added. FirstOf of an empty sequence is {ε}.
func (ga *LL1Analysis) FirstOf(seq []*Symbol) *intsets.Sparse {
	first := &intsets.Sparse{}
	for _, sym := range seq {
		if sym.IsTerminal() {
			if sym.IsEpsilon() { // ε within a sequence dissolves
				continue
			}
			first.Insert(sym.Value)
			return first
		}
		first.UnionWith(ga.firstSets[sym])
		first.Remove(int(prell.EpsilonType))
		if !ga.derivesEps[sym] {
			return first
		}
	}
	first.Insert(int(prell.EpsilonType))
	return first
}

// --- Epsilon-derivability --------------------------------------------------

// markEpsilons finds all nullable non-terminals. A non-terminal is marked
// as soon as one of its rules has an empty RHS or a RHS of nullable
// non-terminals only; passes repeat until a full pass marks nothing new.
func (ga *LL1Analysis) markEpsilons() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.derivesEps[r.LHS] {
				continue
			}
			nullable := true
			for _, sym := range r.rhs {
				if sym.IsTerminal() {
					if !sym.IsEpsilon() {
						nullable = false
						break
					}
				} else if !ga.derivesEps[sym] {
					nullable = false
					break
				}
			}
			if nullable {
				tracer().Debugf("%v is nullable (rule %v)", r.LHS, r)
				ga.derivesEps[r.LHS] = true
				changed = true
			}
		}
	}
}

// --- FIRST sets ------------------------------------------------------------

// computeFirstSets iterates FIRST(A) ∪= FIRST(RHS) over all rules A → RHS
// until no set changes in a full pass. FirstOf works on the partial sets
// while the fixed point is still being approached; since it only reads,
// the union stays monotone.
func (ga *LL1Analysis) computeFirstSets() {
	for _, A := range ga.g.nonterminals {
		ga.firstSets[A] = &intsets.Sparse{}
	}
	passes := 1
	for ga.firstSetsPass() {
		passes++
	}
	tracer().Debugf("FIRST sets converged after %d passes", passes)
	for _, A := range ga.g.nonterminals {
		tracer().Debugf("FIRST(%v) = %v", A, ga.firstSets[A])
	}
}

// firstSetsPass runs one full pass over all rules and reports whether any
// FIRST set grew. Growth is detected by comparing cardinalities before and
// after the union: Sparse.UnionWith's return value also reports mere operand
// differences as change, which would keep the fixed-point loop spinning
// forever once a FIRST set strictly exceeds a single rule's contribution.
func (ga *LL1Analysis) firstSetsPass() bool {
	changed := false
	for _, r := range ga.g.rules {
		f := ga.FirstOf(r.rhs)
		first := ga.firstSets[r.LHS]
		before := first.Len()
		first.UnionWith(f)
		if first.Len() != before {
			changed = true
		}
	}
	return changed
}

// --- FOLLOW sets -----------------------------------------------------------

// computeFollowSets seeds FOLLOW(start) with the end-of-input marker and
// propagates along all rules until no set changes in a full pass:
// for every occurrence of a non-terminal A in a rule B → … A β,
// FOLLOW(A) receives FIRST(β) without ε, and additionally FOLLOW(B)
// whenever β can derive the empty string.
func (ga *LL1Analysis) computeFollowSets() {
	for _, A := range ga.g.nonterminals {
		ga.followSets[A] = &intsets.Sparse{}
	}
	ga.followSets[ga.g.start].Insert(int(prell.EOFType))
	passes := 1
	for ga.followSetsPass() {
		passes++
	}
	tracer().Debugf("FOLLOW sets converged after %d passes", passes)
	for _, A := range ga.g.nonterminals {
		tracer().Debugf("FOLLOW(%v) = %v", A, ga.followSets[A])
	}
}

// followSetsPass runs one full pass over all rules and reports whether any
// FOLLOW set grew (by cardinality, see firstSetsPass).
func (ga *LL1Analysis) followSetsPass() bool {
	changed := false
	for _, r := range ga.g.rules {
		for i, A := range r.rhs {
			if A.IsTerminal() {
				continue
			}
			beta := r.rhs[i+1:]
			f := ga.FirstOf(beta)
			eps := f.Remove(int(prell.EpsilonType))
			follow := ga.followSets[A]
			before := follow.Len()
			follow.UnionWith(f)
			if eps { // β is empty or fully nullable
				follow.UnionWith(ga.followSets[r.LHS])
			}
			if follow.Len() != before {
				changed = true
			}
		}
	}
	return changed
}

// --- Helpers ---------------------------------------------------------------

func copySet(s *intsets.Sparse) *intsets.Sparse {
	c := &intsets.Sparse{}
	if s != nil {
		c.Copy(s)
	}
	return c
}
