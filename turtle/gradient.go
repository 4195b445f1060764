package turtle

// Gradient returns a copy of actions where every move is preceded by a
// colour change, interpolated from `from` at the first move towards `to`
// along the path.
func Gradient(actions []Action, from, to Color) []Action {
	moves := 0
	for _, a := range actions {
		if a.Kind == ActionMove {
			moves++
		}
	}
	if moves == 0 {
		return append([]Action(nil), actions...)
	}

	out := make([]Action, 0, len(actions)+moves)
	n := 0
	for _, a := range actions {
		if a.Kind == ActionMove {
			out = append(out, SetColor(from.Lerp(to, float64(n)/float64(moves))))
			n++
		}
		out = append(out, a)
	}
	return out
}
