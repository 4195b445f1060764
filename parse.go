package lsystem

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Grammar is a text grammar: one production rule per rewritten token.
// Tokens without a rule are constants and reproduce themselves.
type Grammar struct {
	Rules     map[Token]*ProductionRule
	Variables TokenSet
	Constants TokenSet
}

// ParseRule reads the notation "0.7 A B; 0.3 C": alternatives separated by
// semicolons, each led by its probability. A rule with a single alternative
// may leave out the probability, unless its successor starts with a numeric
// token: "2 F" reads as weight 2, so write "1 2 F" instead.
func ParseRule(predecessor Token, str string) (*ProductionRule, error) {
	var groups []string
	for _, group := range strings.Split(strings.ReplaceAll(str, "\n", " "), ";") {
		if strings.TrimSpace(group) != "" {
			groups = append(groups, group)
		}
	}
	if len(groups) == 0 {
		return nil, errors.Wrapf(ErrEmptyRuleSet, "rule %q", predecessor)
	}

	weights := make([]WeightedRule, 0, len(groups))
	for i, group := range groups {
		tokens := strings.Fields(group)
		weight, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			if len(groups) > 1 {
				return nil, errors.Errorf("rule %q: alternative %d has no probability: %q", predecessor, i, strings.TrimSpace(group))
			}
			weights = append(weights, WeightedRule{Probability: 1, Successor: symbolsToTokens(tokens)})
			continue
		}
		if len(groups) == 1 && !math.IsNaN(weight) && !math.IsInf(weight, 0) && math.Abs(weight-1) > Tolerance {
			return nil, errors.Wrapf(singleWeightError(weight),
				"rule %q: the only alternative must weigh 1, got %v; write \"1 %s\" for a successor starting with a number",
				predecessor, weight, strings.Join(tokens, " "))
		}
		weights = append(weights, WeightedRule{Probability: weight, Successor: symbolsToTokens(tokens[1:])})
	}

	rule, err := NewProductionRule(predecessor, weights)
	if err != nil {
		return nil, errors.Wrapf(err, "rule %q", predecessor)
	}
	return rule, nil
}

// ParseRules parses a table of rules keyed by predecessor.
func ParseRules(rulesMap map[Token]string) (*Grammar, error) {
	g := &Grammar{
		Rules:     make(map[Token]*ProductionRule, len(rulesMap)),
		Variables: make(TokenSet),
		Constants: make(TokenSet),
	}

	for key, value := range rulesMap {
		rule, err := ParseRule(key, value)
		if err != nil {
			return nil, err
		}
		g.Rules[key] = rule
		g.Variables.Add(key)
	}

	for _, rule := range g.Rules {
		for _, wt := range rule.Weights {
			for _, token := range wt.Successor {
				if !g.Variables.Contains(token) {
					g.Constants.Add(token)
				}
			}
		}
	}

	return g, nil
}

// ParseState splits a whitespace separated sequence of tokens.
func ParseState(state string) []Token {
	return symbolsToTokens(strings.Fields(state))
}

// Stochastic reports whether any rule has several alternatives.
func (g *Grammar) Stochastic() bool {
	for _, rule := range g.Rules {
		if rule.Stochastic() {
			return true
		}
	}
	return false
}

// Produce is the deterministic production of the grammar. A stochastic rule
// contributes its first alternative.
func (g *Grammar) Produce(t Token) []Token {
	if rule, ok := g.Rules[t]; ok {
		return rule.Successor()
	}
	return []Token{t}
}

// ProduceStochastic picks among weighted alternatives with the draw r.
func (g *Grammar) ProduceStochastic(t Token, r float64) []Token {
	if rule, ok := g.Rules[t]; ok {
		return rule.ChooseSuccessor(r)
	}
	return []Token{t}
}

// LSystem builds a deterministic engine over this grammar.
func (g *Grammar) LSystem(axiom []Token, opts ...Option) *LSystem[Token] {
	return New(axiom, g.Produce, opts...)
}

// StochasticLSystem builds a stochastic engine over this grammar.
func (g *Grammar) StochasticLSystem(axiom []Token, opts ...Option) *Stochastic[Token] {
	return NewStochastic(axiom, g.ProduceStochastic, opts...)
}

func (g *Grammar) String() string {
	keys := make([]Token, 0, len(g.Rules))
	for k := range g.Rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Rules[k].String())
	}
	return sb.String()
}

func singleWeightError(weight float64) error {
	if weight > 1 {
		return ErrProbabilityOverflow
	}
	return ErrProbabilitySum
}

func symbolsToTokens(symbols []string) []Token {
	tokens := make([]Token, 0, len(symbols))
	for _, symbol := range symbols {
		tokens = append(tokens, Token(symbol))
	}
	return tokens
}
