package lsystem

import (
	"strconv"
	"strings"
)

type WeightedRule = Weighted[Token]

// ProductionRule is the validated rule set of one token of a text grammar.
type ProductionRule struct {
	Predecessor Token
	Weights     []WeightedRule

	set *RuleSet[Token]
}

// NewProductionRule validates weights as a rule set.
func NewProductionRule(predecessor Token, weights []WeightedRule) (*ProductionRule, error) {
	set, err := NewWeightedRuleSet(weights...)
	if err != nil {
		return nil, err
	}
	return &ProductionRule{
		Predecessor: predecessor,
		Weights:     weights,
		set:         set,
	}, nil
}

// Stochastic reports whether the rule has more than one alternative.
func (r *ProductionRule) Stochastic() bool {
	return r.set.Len() > 1
}

// ChooseSuccessor selects an alternative for a draw in [0, 1).
func (r *ProductionRule) ChooseSuccessor(random float64) []Token {
	return r.set.Choose(random)
}

// Successor returns the first alternative, the only one of a
// deterministic rule.
func (r *ProductionRule) Successor() []Token {
	return r.set.successors[0]
}

func (r *ProductionRule) String() string {
	var sb strings.Builder
	sb.WriteRune('"')
	sb.WriteString(string(r.Predecessor))
	sb.WriteRune('"')
	sb.WriteString(": `")
	for i, wt := range r.Weights {
		sb.WriteString(strconv.FormatFloat(wt.Probability, 'f', -1, 64))
		for _, t := range wt.Successor {
			sb.WriteString(" ")
			sb.WriteString(string(t))
		}
		if i != len(r.Weights)-1 {
			sb.WriteString("; ")
		}
	}
	sb.WriteString("`")
	return sb.String()
}
