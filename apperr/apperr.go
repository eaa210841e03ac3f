// Package apperr defines the error taxonomy shared by all services.
// Handlers map kinds to HTTP statuses; messages are safe to return to
// callers as-is.
package apperr

import "errors"

type Kind int

const (
	// NotFound: an entity id did not resolve.
	NotFound Kind = iota + 1
	// NotAuthorized: the identity fails an ownership or role check.
	NotAuthorized
	// Validation: a referential or business-rule violation in the request.
	Validation
	// InvalidStatus: an illegal status transition target for the role.
	InvalidStatus
	// Persistence: a collaborator I/O failure, normalized to a generic
	// message so internal detail never leaks.
	Persistence
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the kind from err. Anything that is not an *Error is
// treated as a persistence failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Persistence
}
