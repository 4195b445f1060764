package config

import (
	"regexp"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/viktordanov/lturtle/turtle"
)

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

func parseColor(s string) (turtle.Color, error) {
	s = strings.TrimSpace(s)
	if !hexColor.MatchString(s) {
		return turtle.Color{}, errors.Errorf("invalid colour %q, want #rgb, #rgba, #rrggbb or #rrggbbaa", s)
	}
	return gg.Hex(s), nil
}

// ParseAction reads one action: "move <expr>", "rotate <expr>",
// "thickness <expr>", "color <hex>", "push", "pop", "penup" or "pendown".
func ParseAction(s string) (turtle.Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return turtle.Action{}, errors.New("empty action")
	}
	verb := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	noArg := func(a turtle.Action) (turtle.Action, error) {
		if arg != "" {
			return turtle.Action{}, errors.Errorf("%s takes no argument, got %q", verb, arg)
		}
		return a, nil
	}
	number := func(build func(float64) turtle.Action) (turtle.Action, error) {
		if arg == "" {
			return turtle.Action{}, errors.Errorf("%s needs an argument", verb)
		}
		v, err := evalNumber(arg)
		if err != nil {
			return turtle.Action{}, errors.Wrap(err, verb)
		}
		return build(v), nil
	}

	switch verb {
	case "move", "forward":
		return number(turtle.Move)
	case "rotate", "turn":
		return number(turtle.Rotate)
	case "thickness", "width":
		return number(turtle.SetThickness)
	case "color", "colour":
		c, err := parseColor(arg)
		if err != nil {
			return turtle.Action{}, err
		}
		return turtle.SetColor(c), nil
	case "push":
		return noArg(turtle.Push())
	case "pop":
		return noArg(turtle.Pop())
	case "penup":
		return noArg(turtle.RaisePen())
	case "pendown":
		return noArg(turtle.LowerPen())
	default:
		return turtle.Action{}, errors.Errorf("unknown action %q", verb)
	}
}
