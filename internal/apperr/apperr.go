// Package apperr defines the request-rejection taxonomy shared by the draft
// engine, the room service, and the HTTP layer. Every kind is a caller error;
// none is a server fault and none is retried.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies why a request was rejected.
type Kind string

const (
	Validation       Kind = "validation"        // malformed or empty input
	Configuration    Kind = "configuration"     // mode without the base game
	NotFound         Kind = "not_found"         // unknown room code or player
	Forbidden        Kind = "forbidden"         // actor lacks permission
	InvalidState     Kind = "invalid_state"     // operation in wrong room status
	Conflict         Kind = "conflict"          // duplicate pick
	InsufficientPool Kind = "insufficient_pool" // not enough factions for the roster
)

// Error carries a kind plus a human-readable message for the client.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from an error chain, or "" if the error does not
// belong to the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
