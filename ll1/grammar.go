package ll1

import (
	"bytes"
	"fmt"

	"github.com/gramkit/prell"
)

// NonTermType is the upper bound for symbol values of non-terminals.
// Non-terminals receive serial values descending from NonTermType - 1.
// Everything above is the terminal range: positive token values for real
// terminals, 0 for ε and -1 for the end-of-input marker.
const NonTermType = -1000

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are identified by name; their value doubles as the token value
// for terminals and as an internal ID for non-terminals.
// Clients receive symbols from a Grammar and must not modify them.
type Symbol struct {
	Name  string
	Value int
}

// IsTerminal returns true for terminals and the two pseudo-terminals
// ε and end-of-input.
func (s *Symbol) IsTerminal() bool {
	return s.Value > NonTermType
}

// IsEpsilon returns true for the ε pseudo-terminal.
func (s *Symbol) IsEpsilon() bool {
	return s.Value == int(prell.EpsilonType)
}

// TokenType returns the token value of a terminal symbol.
func (s *Symbol) TokenType() prell.TokType {
	return prell.TokType(s.Value)
}

func (s *Symbol) String() string {
	return s.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a grammar production LHS → RHS. An empty RHS denotes an
// ε-production. Rules carry a serial number, unique within their grammar
// and reflecting declaration order.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right-hand side of a rule. Clients must not modify the
// returned slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon returns true for ε-productions, i.e. rules with an empty RHS.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString("[" + r.LHS.Name + "] ::= [")
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	b.WriteString("]")
	return b.String()
}

// eq compares two rules by LHS and RHS symbols.
func (r *Rule) eq(other *Rule) bool {
	if r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, sym := range r.rhs {
		if sym != other.rhs[i] {
			return false
		}
	}
	return true
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an immutable representation of a context-free grammar:
// terminals, non-terminals, an ordered list of rules and a designated
// start symbol. Grammars are constructed with a GrammarBuilder and never
// change afterwards.
type Grammar struct {
	Name         string
	rules        []*Rule
	symbols      map[string]*Symbol
	byValue      map[int]*Symbol
	nonterminals []*Symbol // in order of first appearance
	terminals    []*Symbol // in order of first appearance
	epsilon      *Symbol
	eof          *Symbol
	start        *Symbol
}

// Size returns the number of rules of the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the rule with a given serial number, or nil.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Epsilon returns the ε pseudo-terminal of the grammar.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// EOF returns the end-of-input pseudo-terminal of the grammar.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolFor returns the symbol with a given name, or nil if the grammar
// does not contain it.
func (g *Grammar) SymbolFor(name string) *Symbol {
	return g.symbols[name]
}

// EachNonTerminal iterates over all non-terminals of the grammar, in order
// of first appearance, and collects the mapper results.
func (g *Grammar) EachNonTerminal(mapper func(name string, N *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A.Name, A))
	}
	return r
}

// EachTerminal iterates over all terminals of the grammar, in order of first
// appearance, and collects the mapper results. The pseudo-terminals ε and
// end-of-input are not part of the terminal alphabet and not visited.
func (g *Grammar) EachTerminal(mapper func(name string, t *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, t := range g.terminals {
		r = append(r, mapper(t.Name, t))
	}
	return r
}

// EachRule iterates over all rules in declaration order.
func (g *Grammar) EachRule(mapper func(r *Rule) interface{}) []interface{} {
	var res []interface{}
	for _, r := range g.rules {
		res = append(res, mapper(r))
	}
	return res
}

// RulesFor returns all rules with a given non-terminal as their LHS.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// TokTypeStringer returns a mapper from token values to symbol names,
// suitable for printing result sets. ε and end-of-input map to "ε" and "$".
func (g *Grammar) TokTypeStringer() prell.TokTypeStringer {
	return func(t prell.TokType) string {
		if s, ok := g.byValue[int(t)]; ok {
			return s.Name
		}
		return fmt.Sprintf("#%d", t)
	}
}

// Dump is a debugging helper, listing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------", g.Name)
	tracer().Debugf("start symbol = %v", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("---------------------")
}

// --- Errors ----------------------------------------------------------------

// UndefinedSymbolError is returned by GrammarBuilder.Grammar() if a rule
// references a non-terminal which no rule defines, or if the designated
// start symbol is undefined (Rule is nil in the latter case).
type UndefinedSymbolError struct {
	Rule *Rule
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	if e.Rule == nil {
		return fmt.Sprintf("start symbol '%s' has no defining rule", e.Name)
	}
	return fmt.Sprintf("rule %d: %v references non-terminal '%s', which has no defining rule",
		e.Rule.Serial, e.Rule, e.Name)
}

// EmptyGrammarError is returned by GrammarBuilder.Grammar() if no rules
// have been supplied.
type EmptyGrammarError struct {
	Name string
}

func (e *EmptyGrammarError) Error() string {
	return fmt.Sprintf("grammar '%s' has no rules", e.Name)
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder builds a Grammar rule by rule. Unless overridden with
// Start(…), the LHS of the first rule becomes the start symbol.
//
// Validation happens eagerly when Grammar() is called: no engine ever runs
// on a structurally invalid grammar.
type GrammarBuilder struct {
	g         *Grammar
	ntSerial  int
	startName string
	err       error
}

// NewGrammarBuilder creates a new builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	g := &Grammar{
		Name:    name,
		symbols: make(map[string]*Symbol),
		byValue: make(map[int]*Symbol),
	}
	g.epsilon = &Symbol{Name: "ε", Value: int(prell.EpsilonType)}
	g.eof = &Symbol{Name: "$", Value: int(prell.EOFType)}
	g.byValue[g.epsilon.Value] = g.epsilon
	g.byValue[g.eof.Value] = g.eof
	return &GrammarBuilder{
		g:        g,
		ntSerial: NonTermType - 1,
	}
}

// fail records the first error encountered while building.
func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

func (gb *GrammarBuilder) nonterminal(name string) *Symbol {
	if sym, ok := gb.g.symbols[name]; ok {
		if sym.IsTerminal() {
			gb.fail(fmt.Errorf("grammar '%s': symbol '%s' is both terminal and non-terminal",
				gb.g.Name, name))
		}
		return sym
	}
	sym := &Symbol{Name: name, Value: gb.ntSerial}
	gb.ntSerial--
	gb.g.symbols[name] = sym
	gb.g.byValue[sym.Value] = sym
	gb.g.nonterminals = append(gb.g.nonterminals, sym)
	return sym
}

func (gb *GrammarBuilder) terminal(name string, tokval int) *Symbol {
	if sym, ok := gb.g.symbols[name]; ok {
		if !sym.IsTerminal() {
			gb.fail(fmt.Errorf("grammar '%s': symbol '%s' is both terminal and non-terminal",
				gb.g.Name, name))
		} else if sym.Value != tokval {
			gb.fail(fmt.Errorf("grammar '%s': terminal '%s' declared with token values %d and %d",
				gb.g.Name, name, sym.Value, tokval))
		}
		return sym
	}
	if tokval <= 0 {
		gb.fail(fmt.Errorf("grammar '%s': terminal '%s' has token value %d; values <= 0 are reserved",
			gb.g.Name, name, tokval))
		tokval = 1 // keep building; the error surfaces from Grammar()
	}
	if other, ok := gb.g.byValue[tokval]; ok && other.Name != name {
		gb.fail(fmt.Errorf("grammar '%s': terminals '%s' and '%s' share token value %d",
			gb.g.Name, other.Name, name, tokval))
	}
	sym := &Symbol{Name: name, Value: tokval}
	gb.g.symbols[name] = sym
	gb.g.byValue[tokval] = sym
	gb.g.terminals = append(gb.g.terminals, sym)
	return sym
}

// LHS starts a new rule with a given non-terminal as its left-hand side.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: gb.nonterminal(name)}
}

// Start designates the start symbol of the grammar. The symbol must be
// defined by at least one rule when Grammar() is called.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.startName = name
	return gb
}

// Grammar validates the rules added so far and returns the finished
// grammar. It fails with an EmptyGrammarError if no rules have been added,
// and with an UndefinedSymbolError if any RHS references a non-terminal
// without a defining rule.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.g.rules) == 0 {
		return nil, &EmptyGrammarError{Name: gb.g.Name}
	}
	if gb.err != nil {
		return nil, gb.err
	}
	defined := make(map[*Symbol]bool)
	for _, r := range gb.g.rules {
		defined[r.LHS] = true
	}
	for _, r := range gb.g.rules {
		for _, sym := range r.rhs {
			if !sym.IsTerminal() && !defined[sym] {
				return nil, &UndefinedSymbolError{Rule: r, Name: sym.Name}
			}
		}
	}
	if gb.startName != "" {
		start, ok := gb.g.symbols[gb.startName]
		if !ok || start.IsTerminal() || !defined[start] {
			return nil, &UndefinedSymbolError{Name: gb.startName}
		}
		gb.g.start = start
	} else {
		gb.g.start = gb.g.rules[0].LHS
	}
	tracer().Infof("grammar '%s' has %d rules, %d non-terminals, %d terminals",
		gb.g.Name, len(gb.g.rules), len(gb.g.nonterminals), len(gb.g.terminals))
	return gb.g, nil
}

// RuleBuilder builds the right-hand side of a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal to the RHS of the rule under construction.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.nonterminal(name))
	return rb
}

// T appends a terminal with a given token value to the RHS of the rule
// under construction. Token values must be positive; 0 and negative values
// are reserved for ε and end-of-input.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.terminal(name, tokval))
	return rb
}

// Eps appends the ε symbol, which dissolves: ε contributes nothing to a
// non-empty RHS, and a RHS of only ε symbols is the empty RHS. This mirrors
// grammar notations which write 'A → ε' instead of an empty right-hand side.
func (rb *RuleBuilder) Eps() *RuleBuilder {
	return rb
}

// End finishes the rule under construction and appends it to the grammar.
// Duplicate rules are dropped silently.
func (rb *RuleBuilder) End() *Rule {
	rule := &Rule{
		Serial: len(rb.gb.g.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	for _, r := range rb.gb.g.rules {
		if r.eq(rule) {
			tracer().Infof("grammar '%s': dropping duplicate rule %v", rb.gb.g.Name, rule)
			return r
		}
	}
	rb.gb.g.rules = append(rb.gb.g.rules, rule)
	tracer().Debugf("added rule %v", rule)
	return rule
}

// Epsilon finishes the rule under construction as an ε-production,
// discarding any RHS symbols appended so far.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}
