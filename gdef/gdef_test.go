package gdef

import (
	"strings"
	"testing"

	"github.com/gramkit/prell/ll1"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exercise1 = `
# exercise grammar no. 1
S -> A uno B C | S dos
A -> B C D | A tres | ε
B -> D cuatro C tres
C -> cinco D B | ε
D -> ε
`

func TestParseExercise1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	g, err := ParseString("Ejercicio 1", exercise1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 9 {
		t.Errorf("expected 9 rules, got %d", g.Size())
	}
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol S, got %v", g.Start())
	}
	for _, nt := range []string{"S", "A", "B", "C", "D"} {
		sym := g.SymbolFor(nt)
		if sym == nil || sym.IsTerminal() {
			t.Errorf("expected '%s' to be a non-terminal", nt)
		}
	}
	for _, term := range []string{"uno", "dos", "tres", "cuatro", "cinco"} {
		sym := g.SymbolFor(term)
		if sym == nil || !sym.IsTerminal() {
			t.Errorf("expected '%s' to be a terminal", term)
		}
	}
	// token values in order of first appearance
	if g.SymbolFor("uno").Value != 1 || g.SymbolFor("dos").Value != 2 {
		t.Errorf("expected token values by first appearance, got uno=%d dos=%d",
			g.SymbolFor("uno").Value, g.SymbolFor("dos").Value)
	}
	// 'D -> ε' must be an ε-production
	rules := g.RulesFor(g.SymbolFor("D"))
	if len(rules) != 1 || !rules[0].IsEpsilon() {
		t.Errorf("expected exactly one ε-production for D, got %v", rules)
	}
}

func TestParseFeedsAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	g, err := Parse("Ejercicio 1", strings.NewReader(exercise1))
	if err != nil {
		t.Fatal(err)
	}
	ga := ll1.Analysis(g)
	first := ga.First(g.SymbolFor("S"))
	want := []int{g.SymbolFor("cuatro").Value, g.SymbolFor("uno").Value}
	if first.Len() != 2 || !first.Has(want[0]) || !first.Has(want[1]) {
		t.Errorf("expected FIRST(S) = {cuatro, uno}, got %v", first)
	}
}

func TestParseVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	tests := []struct {
		name  string
		src   string
		rules int
	}{
		{"bnf arrow and semicolon", "S ::= a S ; S ::= b", 2},
		{"empty alternative", "S -> a |", 2},
		{"eps keyword", "S -> a | eps", 2},
		{"epsilon dissolves in sequence", "S -> a ε b", 1},
		{"comments and blank lines", "# nothing\n\nS -> a\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseString("G", tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if g.Size() != tt.rules {
				t.Errorf("expected %d rules, got %d", tt.rules, g.Size())
			}
		})
	}
}

func TestParseEpsilonNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	g, err := ParseString("G", "S -> a ε b")
	if err != nil {
		t.Fatal(err)
	}
	r := g.Rule(0)
	if len(r.RHS()) != 2 {
		t.Errorf("expected ε to dissolve, got RHS %v", r)
	}
}

func TestParseStartOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	g, err := ParseString("G", "S -> T a\nT -> b", Start("T"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Start().Name != "T" {
		t.Errorf("expected start symbol T, got %v", g.Start())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	tests := []struct {
		name string
		src  string
	}{
		{"empty definition", ""},
		{"comment only", "# nothing here\n"},
		{"missing arrow", "S a b"},
		{"lowercase head", "s -> a"},
		{"stray pipe", "S -> | | ->"},
		{"undefined non-terminal", "S -> A uno"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseString("Bad", tt.src)
			if err == nil {
				t.Errorf("expected parse of %q to fail, got grammar %v", tt.src, g)
			}
		})
	}
}

func TestParseUndefinedSymbolPassthrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.gdef")
	defer teardown()
	//
	_, err := ParseString("Bad", "S -> A uno")
	if err == nil {
		t.Fatal("expected an error for undefined non-terminal A")
	}
	undef, ok := err.(*ll1.UndefinedSymbolError)
	if !ok {
		t.Fatalf("expected *ll1.UndefinedSymbolError, got %T: %v", err, err)
	}
	if undef.Name != "A" {
		t.Errorf("expected offending symbol 'A', got '%s'", undef.Name)
	}
}
