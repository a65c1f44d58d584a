package actions

// State is the renderable result of a form action: field-attributed validation
// messages and/or a single summary message. It is built fresh per submission
// and never persisted.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Outcome is the explicit result of an action: either a redirect to a route or
// a state for the caller to re-render. Navigation is plain data here, never a
// panic or thrown signal, so callers react to it without special-casing
// control flow.
type Outcome struct {
	RedirectTo string
	State      *State
}

// Redirect transfers control to the given route after a successful mutation.
func Redirect(path string) Outcome {
	return Outcome{RedirectTo: path}
}

// Render returns a state for the caller to re-render the form with.
func Render(state *State) Outcome {
	return Outcome{State: state}
}

// IsRedirect reports whether the outcome transfers control to another route.
func (o Outcome) IsRedirect() bool {
	return o.RedirectTo != ""
}
