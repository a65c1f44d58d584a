package auth

import "fmt"

// ErrorKind is a closed set of recognized authentication failures. Callers
// switch on the kind to pick a user-facing message instead of inspecting
// error types at runtime.
type ErrorKind string

const (
	// KindCredentialsSignin means the submitted email/password pair does not
	// match a known user.
	KindCredentialsSignin ErrorKind = "CredentialsSignin"
	// KindCallbackRouteError covers provider-side failures during sign-in
	// that are not the user's fault.
	KindCallbackRouteError ErrorKind = "CallbackRouteError"
)

// Error is a recognized authentication failure. Anything the provider returns
// that is not an *Error is an infrastructure failure and must propagate.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}
