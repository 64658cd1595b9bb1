package gdef

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter for grammar-definition text

// Token types of the definition format.
const (
	tokIdent = iota + 1
	tokArrow
	tokPipe
	tokStop // ';' or newline: ends a production group
	tokEpsilon
)

// token is a scanned token together with its input line, for error messages.
type token struct {
	typ    int
	lexeme string
	line   int
}

func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[ \t\r]+`), skip)
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte("\n"), makeToken(tokStop))
	for _, lit := range []string{"->", "::="} {
		lexer.Add(escape(lit), makeToken(tokArrow))
	}
	lexer.Add(escape("|"), makeToken(tokPipe))
	lexer.Add(escape(";"), makeToken(tokStop))
	lexer.Add([]byte("ε"), makeToken(tokEpsilon))
	lexer.Add([]byte("eps"), makeToken(tokEpsilon))
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_']*`), makeToken(tokIdent))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// escape turns a literal into a regex matching exactly that literal.
func escape(lit string) []byte {
	return []byte("\\" + strings.Join(strings.Split(lit, ""), "\\"))
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, lexeme: string(m.Bytes), line: m.StartLine}, nil
	}
}

// tokenize scans a complete grammar definition into a token slice.
// Unconsumable input is reported as an error, not skipped: a grammar
// definition with junk in it must not silently lose symbols.
func tokenize(input string) ([]token, error) {
	lexer, err := newLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, err
		}
		t := tok.(token)
		tracer().Debugf("token %d %q at line %d", t.typ, t.lexeme, t.line)
		toks = append(toks, t)
	}
	return toks, nil
}
