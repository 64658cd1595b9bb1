package report

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/gramkit/prell/ll1"
)

// The first exercise grammar from the ll1 package tests:
//
//     S → A uno B C | S dos
//     A → B C D | A tres | ε
//     B → D cuatro C tres
//     C → cinco D B | ε
//     D → ε
//
func exercise1(t *testing.T) *ll1.LL1Analysis {
	b := ll1.NewGrammarBuilder("Ejercicio 1")
	b.LHS("S").N("A").T("uno", 1).N("B").N("C").End()
	b.LHS("S").N("S").T("dos", 2).End()
	b.LHS("A").N("B").N("C").N("D").End()
	b.LHS("A").N("A").T("tres", 3).End()
	b.LHS("A").Epsilon()
	b.LHS("B").N("D").T("cuatro", 4).N("C").T("tres", 3).End()
	b.LHS("C").T("cinco", 5).N("D").N("B").End()
	b.LHS("C").Epsilon()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return ll1.Analysis(g)
}

func TestBundleContents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.report")
	defer teardown()
	//
	b := Build(exercise1(t))
	if b.Grammar != "Ejercicio 1" || b.Start != "S" {
		t.Errorf("unexpected bundle header: %s / %s", b.Grammar, b.Start)
	}
	if len(b.Productions) != 9 {
		t.Fatalf("expected 9 production labels, got %d", len(b.Productions))
	}
	if b.Productions[0] != "S -> A uno B C" {
		t.Errorf("unexpected label for rule 0: %q", b.Productions[0])
	}
	if b.Productions[4] != "A -> ε" {
		t.Errorf("expected ε rendering for the empty body, got %q", b.Productions[4])
	}
	tests := []struct {
		section map[string][]string
		key     string
		want    []string
	}{
		{b.First, "S", []string{"cuatro", "uno"}},
		{b.First, "D", []string{"ε"}},
		{b.First, "C", []string{"cinco", "ε"}},
		{b.Follow, "S", []string{"$", "dos"}},
		{b.Predict, "C -> ε", []string{"$", "dos", "tres", "uno"}},
	}
	for _, tt := range tests {
		if got := tt.section[tt.key]; !reflect.DeepEqual(got, tt.want) {
			t.Errorf("entry %q: want %v, got %v", tt.key, tt.want, got)
		}
	}
	if b.LL1 {
		t.Errorf("expected left-recursive grammar to be flagged as not LL(1)")
	}
}

func TestBundleSortedTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.report")
	defer teardown()
	//
	b := Build(exercise1(t))
	for name, tokens := range b.Follow {
		for i := 1; i < len(tokens); i++ {
			if tokens[i-1] >= tokens[i] {
				t.Errorf("FOLLOW(%s) not sorted: %v", name, tokens)
			}
		}
	}
}

func TestFingerprintStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.report")
	defer teardown()
	//
	ga := exercise1(t)
	b1 := Build(ga)
	b2 := Build(ga)
	if b1.Fingerprint == "" {
		t.Fatal("expected a non-empty fingerprint")
	}
	if b1.Fingerprint != b2.Fingerprint {
		t.Errorf("fingerprint not stable: %s vs %s", b1.Fingerprint, b2.Fingerprint)
	}
	//
	other := ll1.NewGrammarBuilder("Other")
	other.LHS("S").T("a", 1).End()
	g, err := other.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	b3 := Build(ll1.Analysis(g))
	if b3.Fingerprint == b1.Fingerprint {
		t.Errorf("different grammars share fingerprint %s", b1.Fingerprint)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "prell.report")
	defer teardown()
	//
	b := Build(exercise1(t))
	var buf bytes.Buffer
	if err := b.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"first"`)) {
		t.Errorf("JSON document misses the first section:\n%s", buf.String())
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b, loaded) {
		t.Errorf("bundle changed over JSON round trip:\nwant %+v\ngot  %+v", b, loaded)
	}
}
