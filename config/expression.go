package config

import (
	"math"
	"strconv"

	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"
)

var expressionFunctions = map[string]govaluate.ExpressionFunction{
	"deg": unary(func(x float64) float64 { return x * math.Pi / 180 }),
	"sqrt": unary(math.Sqrt),
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
}

var expressionParameters = map[string]interface{}{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
	"phi": math.Phi,
}

func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, errors.Errorf("expected 1 argument, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, errors.Errorf("argument %v is not a number", args[0])
		}
		return f(x), nil
	}
}

// evalNumber evaluates a numeric argument such as "3", "-pi / 6" or
// "deg(25.7)".
func evalNumber(s string) (float64, error) {
	if scalar, err := strconv.ParseFloat(s, 64); err == nil {
		return scalar, nil
	}

	expr, err := govaluate.NewEvaluableExpressionWithFunctions(s, expressionFunctions)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing expression %q", s)
	}
	res, err := expr.Evaluate(expressionParameters)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating expression %q", s)
	}
	f, ok := res.(float64)
	if !ok {
		return 0, errors.Errorf("expression %q is not numeric (got %T)", s, res)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("expression %q is not finite", s)
	}
	return f, nil
}
