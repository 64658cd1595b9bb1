/*
Package ll1 implements prerequisites for predictive LL(1) parsing.
It computes the decision sets a top-down parser with a single token of
lookahead needs to choose productions without backtracking.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type prell.TokType. Grammars may contain
epsilon-productions.

Example:

    b := ll1.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a", 1).End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b", 2).End()         // B  ->  b
    b.LHS("B").Epsilon()               // B  ->
    b.LHS("D").T("d", 3).End()         // D  ->  d
    b.LHS("D").Epsilon()               // D  ->

This results in the following trivial grammar:

   b.Grammar().Dump()

   0: [S] ::= [A a]
   1: [A] ::= [B D]
   2: [B] ::= [b]
   3: [B] ::= []
   4: [D] ::= [d]
   5: [D] ::= []

The builder validates eagerly: a non-terminal used in a right-hand side
without any defining rule makes Grammar() fail with an UndefinedSymbolError,
and a builder without rules fails with an EmptyGrammarError. A constructed
grammar is never mutated afterwards.

Static Grammar Analysis

After the grammar is complete, it is subjected to an LL1Analysis object,
which determines all epsilon-derivable non-terminals and computes FIRST,
FOLLOW and PREDICT sets for the grammar. All of these are calculated as
iterative fixed-point computations: sets only ever grow during the passes
and are bounded, so termination is guaranteed even for cyclic and
left-recursive grammars (no recursion is involved).

    ga := ll1.Analysis(g)  // analyser for grammar above
    ga.Grammar().EachNonTerminal(
        func(name string, N *Symbol) interface{} {
            fmt.Printf("FIRST(%s) = %v", name, ga.First(N))
            return nil
        })

FIRST sets may contain the epsilon pseudo-terminal (token value 0), FOLLOW
and PREDICT sets may contain the end-of-input pseudo-terminal (token
value -1). A parser (or client) selects production A → α on lookahead t iff
t ∈ PREDICT(A → α); the grammar is LL(1) iff ga.Conflicts() is empty.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'prell.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("prell.ll1")
}
