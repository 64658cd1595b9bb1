package gdef

import (
	"fmt"
	"io"
	"io/ioutil"
	"unicode"

	"github.com/gramkit/prell/ll1"
)

// Option configures a Parse run.
type Option func(*config)

type config struct {
	start string
}

// Start overrides the start symbol of the parsed grammar. By default the
// head of the first production is the start symbol.
func Start(symname string) Option {
	return func(cfg *config) {
		cfg.start = symname
	}
}

// Parse reads a grammar definition and constructs a grammar from it.
// Symbol classification follows the uppercase convention (see the package
// documentation); terminals receive token values in order of first
// appearance, starting at 1.
func Parse(name string, input io.Reader, opts ...Option) (*ll1.Grammar, error) {
	text, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, err
	}
	return ParseString(name, string(text), opts...)
}

// ParseString is Parse for in-memory grammar definitions.
func ParseString(name string, input string, opts ...Option) (*ll1.Grammar, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{
		b:       ll1.NewGrammarBuilder(name),
		toks:    toks,
		tokvals: make(map[string]int),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	if cfg.start != "" {
		p.b.Start(cfg.start)
	}
	return p.b.Grammar()
}

// parser builds a grammar from the token stream, one production group at a
// time. The definition format is trivially LL(1) itself, so a plain
// left-to-right walk suffices.
type parser struct {
	b       *ll1.GrammarBuilder
	toks    []token
	pos     int
	tokvals map[string]int // terminal name → token value
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) parse() error {
	for {
		t, ok := p.peek()
		if !ok {
			return nil
		}
		if t.typ == tokStop { // blank line or stray ';'
			p.pos++
			continue
		}
		if err := p.production(); err != nil {
			return err
		}
	}
}

// production parses one group  HEAD -> alt | alt | … , terminated by a
// newline, a ';' or the end of input.
func (p *parser) production() error {
	head, _ := p.next()
	if head.typ != tokIdent {
		return fmt.Errorf("line %d: expected a production head, got '%s'", head.line, head.lexeme)
	}
	if !isNonTermName(head.lexeme) {
		return fmt.Errorf("line %d: production head '%s' is not an uppercase non-terminal name",
			head.line, head.lexeme)
	}
	if arrow, ok := p.next(); !ok || arrow.typ != tokArrow {
		return fmt.Errorf("line %d: expected '->' after '%s'", head.line, head.lexeme)
	}
	for {
		if err := p.alternative(head); err != nil {
			return err
		}
		t, ok := p.next()
		if !ok || t.typ == tokStop {
			return nil
		}
		if t.typ != tokPipe {
			return fmt.Errorf("line %d: expected '|' or end of production, got '%s'", t.line, t.lexeme)
		}
	}
}

// alternative parses one right-hand side. An empty alternative and an
// alternative of ε symbols only both yield an ε-production; ε symbols
// mixed into a non-empty RHS dissolve.
func (p *parser) alternative(head token) error {
	rb := p.b.LHS(head.lexeme)
	empty := true
	for {
		t, ok := p.peek()
		if !ok || t.typ == tokStop || t.typ == tokPipe {
			break
		}
		p.pos++
		switch t.typ {
		case tokEpsilon:
			rb.Eps()
		case tokIdent:
			empty = false
			if isNonTermName(t.lexeme) {
				rb.N(t.lexeme)
			} else {
				rb.T(t.lexeme, p.tokval(t.lexeme))
			}
		default:
			return fmt.Errorf("line %d: unexpected '%s' in production body", t.line, t.lexeme)
		}
	}
	if empty {
		rb.Epsilon()
	} else {
		rb.End()
	}
	return nil
}

// tokval assigns terminal token values in order of first appearance.
func (p *parser) tokval(name string) int {
	if v, ok := p.tokvals[name]; ok {
		return v
	}
	v := len(p.tokvals) + 1
	p.tokvals[name] = v
	tracer().Debugf("terminal '%s' gets token value %d", name, v)
	return v
}

// isNonTermName reports the uppercase naming convention: a name consisting
// solely of uppercase letters denotes a non-terminal.
func isNonTermName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
