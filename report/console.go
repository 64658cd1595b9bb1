package report

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pterm/pterm"
)

// Print renders a result bundle to the console, using moderately fancy
// leveled trees. It consumes only the finalized bundle; no computation
// happens here.
func Print(b *Bundle) {
	pterm.Info.Println("Grammar " + b.Grammar + "  (start symbol " + b.Start + ")")
	productions := pterm.LeveledList{}
	for _, label := range b.Productions {
		productions = append(productions, pterm.LeveledListItem{Level: 0, Text: label})
	}
	renderTree("Productions", productions)
	renderTree("FIRST", setList(b.First, "FIRST"))
	renderTree("FOLLOW", setList(b.Follow, "FOLLOW"))
	predict := pterm.LeveledList{}
	for _, label := range b.Productions { // declaration order, not map order
		predict = append(predict, pterm.LeveledListItem{
			Level: 0,
			Text:  "PREDICT(" + label + ") = " + tokenList(b.Predict[label]),
		})
	}
	renderTree("PREDICT", predict)
	if b.LL1 {
		pterm.Info.Println("Grammar is LL(1): all PREDICT sets with a common head are disjoint")
	} else {
		pterm.Error.Println("Grammar is not LL(1): overlapping PREDICT sets")
	}
}

func renderTree(label string, ll pterm.LeveledList) {
	pterm.Println(label)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// setList renders a name → token-list map in sorted key order.
func setList(sets map[string][]string, what string) pterm.LeveledList {
	keys := treeset.NewWith(utils.StringComparator)
	for name := range sets {
		keys.Add(name)
	}
	ll := pterm.LeveledList{}
	for _, k := range keys.Values() {
		name := k.(string)
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  what + "(" + name + ") = " + tokenList(sets[name]),
		})
	}
	return ll
}

func tokenList(tokens []string) string {
	return "{ " + strings.Join(tokens, ", ") + " }"
}
