/*
Package gdef reads grammar definitions from a small line-oriented text
format and constructs ll1 grammars from them.

A definition file contains one production group per line. Alternatives are
separated by '|', the arrow may be written '->' or '::=', and '#' starts a
comment running to the end of the line:

    # exercise grammar
    S -> A uno B C | S dos
    A -> B C D | A tres | ε
    B -> D cuatro C tres
    C -> cinco D B | ε
    D -> ε

Symbols are classified by a naming convention, following the usual
blackboard notation: a name consisting solely of uppercase letters denotes
a non-terminal, every other name a terminal. ε-productions are written with
'ε' (or 'eps'), or simply as an empty alternative. Terminals receive token
values in order of first appearance, starting at 1.

The start symbol defaults to the head of the first production; it can be
overridden with the Start option:

    g, err := gdef.Parse("G", reader, gdef.Start("EXPR"))

Structural validation of the grammar itself (undefined non-terminals, empty
definition) is performed by the ll1 grammar builder and its errors are
passed through.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gdef

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'prell.gdef'.
func tracer() tracing.Trace {
	return tracing.Select("prell.gdef")
}
