/*
Package report turns a finished grammar analysis into a result bundle.

A Bundle is a plain, serializable view over the frozen FIRST, FOLLOW and
PREDICT sets: symbol names instead of token values, sorted token lists
instead of sparse sets, production labels instead of rule objects. ε is
rendered as "ε" and the end-of-input marker as "$". Bundles can be written
as indented JSON documents and pretty-printed to the console; the analysis
itself stays free of any output concern.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/tools/container/intsets"

	"github.com/gramkit/prell"
	"github.com/gramkit/prell/ll1"
)

// tracer traces with key 'prell.report'.
func tracer() tracing.Trace {
	return tracing.Select("prell.report")
}

// Bundle is the in-memory result of a grammar analysis, ready for
// serialization. Token lists are sorted lexicographically; Productions
// keeps declaration order and doubles as the key order for Predict.
type Bundle struct {
	Grammar     string              `json:"grammar"`
	Start       string              `json:"start"`
	Fingerprint string              `json:"fingerprint"`
	LL1         bool                `json:"ll1"`
	Productions []string            `json:"productions"`
	First       map[string][]string `json:"first"`
	Follow      map[string][]string `json:"follow"`
	Predict     map[string][]string `json:"predict"`
}

// Build creates a result bundle from a finished analysis.
func Build(ga *ll1.LL1Analysis) *Bundle {
	g := ga.Grammar()
	names := g.TokTypeStringer()
	b := &Bundle{
		Grammar: g.Name,
		Start:   g.Start().Name,
		First:   make(map[string][]string),
		Follow:  make(map[string][]string),
		Predict: make(map[string][]string),
	}
	g.EachRule(func(r *ll1.Rule) interface{} {
		b.Productions = append(b.Productions, Label(r))
		return nil
	})
	g.EachNonTerminal(func(name string, A *ll1.Symbol) interface{} {
		b.First[name] = sortedTokens(ga.First(A), names)
		b.Follow[name] = sortedTokens(ga.Follow(A), names)
		return nil
	})
	g.EachRule(func(r *ll1.Rule) interface{} {
		b.Predict[Label(r)] = sortedTokens(ga.Predict(r), names)
		return nil
	})
	b.LL1 = len(ga.Conflicts()) == 0
	b.Fingerprint = fingerprint(b)
	tracer().Infof("bundle for grammar '%s' built, fingerprint %s", b.Grammar, b.Fingerprint)
	return b
}

// Label renders a production as "HEAD -> body", with ε for an empty body.
// Labels are stable across runs and identify productions in the bundle.
func Label(r *ll1.Rule) string {
	var buf bytes.Buffer
	buf.WriteString(r.LHS.Name)
	buf.WriteString(" ->")
	if r.IsEpsilon() {
		buf.WriteString(" ε")
		return buf.String()
	}
	for _, sym := range r.RHS() {
		buf.WriteString(" ")
		buf.WriteString(sym.Name)
	}
	return buf.String()
}

// sortedTokens maps a set of token values to a sorted list of symbol names.
func sortedTokens(set *intsets.Sparse, names prell.TokTypeStringer) []string {
	sorted := treeset.NewWith(utils.StringComparator)
	for _, tok := range set.AppendTo(nil) {
		sorted.Add(names(prell.TokType(tok)))
	}
	tokens := make([]string, 0, sorted.Size())
	for _, v := range sorted.Values() {
		tokens = append(tokens, v.(string))
	}
	return tokens
}

// fingerprint hashes the structural identity of the analysed grammar, so a
// persisted bundle can be matched to the grammar version that produced it.
func fingerprint(b *Bundle) string {
	identity := struct {
		Grammar     string
		Start       string
		Productions []string
	}{b.Grammar, b.Start, b.Productions}
	hash, err := structhash.Hash(identity, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint grammar '%s': %v", b.Grammar, err)
		return ""
	}
	return hash
}

// WriteJSON writes the bundle as an indented JSON document.
func (b *Bundle) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(b)
}

// Save persists the bundle as a JSON document at a given path.
func (b *Bundle) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	tracer().Infof("saving results for grammar '%s' to %s", b.Grammar, path)
	return b.WriteJSON(f)
}

// Load reads a previously saved bundle back from a JSON document.
func Load(r io.Reader) (*Bundle, error) {
	b := &Bundle{}
	if err := json.NewDecoder(r).Decode(b); err != nil {
		return nil, err
	}
	return b, nil
}
