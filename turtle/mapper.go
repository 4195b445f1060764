package turtle

// ActionFunc translates one grammar symbol into turtle actions. It must be
// pure and defined for every symbol.
type ActionFunc[S any] func(S) []Action

// Actions concatenates the actions of every symbol, in order.
func Actions[S any](symbols []S, action ActionFunc[S]) []Action {
	out := make([]Action, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, action(s)...)
	}
	return out
}
