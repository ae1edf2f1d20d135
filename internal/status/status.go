package status

import "net/http"

// Kind classifies a failed invocation. Every error leaving the provisioning
// flow carries exactly one kind; callers never see a raw unclassified failure.
type Kind string

const (
	Unauthenticated  Kind = "UNAUTHENTICATED"
	PermissionDenied Kind = "PERMISSION_DENIED"
	InvalidArgument  Kind = "INVALID_ARGUMENT"
	Internal         Kind = "INTERNAL"
)

// Error is a classified failure with a human-readable message.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// New builds a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// HTTPStatus maps an error kind to the HTTP status code it is served with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case PermissionDenied:
		return http.StatusForbidden
	case InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
