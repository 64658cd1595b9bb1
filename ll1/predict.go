package ll1

import (
	"github.com/gramkit/prell"
)

// computePredictSets derives PREDICT for every rule from the frozen FIRST
// and FOLLOW sets. No iteration is involved:
//
//    PREDICT(A → α) = (FIRST(α) \ {ε}) ∪ (FOLLOW(A)  iff ε ∈ FIRST(α))
//
// A predictive parser selects rule A → α on lookahead t iff t ∈ PREDICT(A → α).
func (ga *LL1Analysis) computePredictSets() {
	for _, r := range ga.g.rules {
		p := ga.FirstOf(r.rhs)
		if p.Remove(int(prell.EpsilonType)) {
			p.UnionWith(ga.followSets[r.LHS])
		}
		ga.predictSets = append(ga.predictSets, p)
		tracer().Debugf("PREDICT(%v) = %v", r, p)
	}
}

// Conflict is a pair of rules with the same LHS whose PREDICT sets overlap.
// A single conflict already disqualifies a grammar from LL(1) parsing.
type Conflict struct {
	R1, R2 *Rule
}

// Conflicts returns all pairs of same-LHS rules with intersecting PREDICT
// sets, in rule order. A grammar is usable for predictive parsing with one
// token of lookahead iff the returned slice is empty.
//
// This is a diagnostic: grammars with conflicts are still analysed in full.
func (ga *LL1Analysis) Conflicts() []Conflict {
	var conflicts []Conflict
	for i, r1 := range ga.g.rules {
		for _, r2 := range ga.g.rules[i+1:] {
			if r1.LHS != r2.LHS {
				continue
			}
			if ga.predictSets[r1.Serial].Intersects(ga.predictSets[r2.Serial]) {
				conflicts = append(conflicts, Conflict{R1: r1, R2: r2})
			}
		}
	}
	return conflicts
}
