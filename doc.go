/*
Package prell is a toolbox for predictive-parser preparation.

Prell computes the classic static analyses on context-free grammars which a
top-down parser with one token of lookahead relies on: nullability, FIRST,
FOLLOW and PREDICT sets. It does not parse any input itself; it produces the
decision data a predictive parser (or a student of one) needs.
Package structure is as follows:

■ ll1: Package ll1 holds the core. It implements the grammar model, a builder
for grammars, and the fixed-point engines for nullability, FIRST, FOLLOW and
PREDICT sets.

■ gdef: Package gdef reads grammar definitions from a small line-oriented
text format and constructs ll1 grammars from them.

■ report: Package report turns a finished analysis into a serializable result
bundle, renders it to the console, and persists it as JSON.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prell
