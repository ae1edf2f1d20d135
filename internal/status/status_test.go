package status

import (
	"net/http"
	"testing"
)

func TestErrorHTTPStatus(t *testing.T) {
	tests := map[Kind]int{
		Unauthenticated:  http.StatusUnauthorized,
		PermissionDenied: http.StatusForbidden,
		InvalidArgument:  http.StatusBadRequest,
		Internal:         http.StatusInternalServerError,
		Kind("UNKNOWN"):  http.StatusInternalServerError,
	}

	for kind, want := range tests {
		if got := New(kind, "msg").HTTPStatus(); got != want {
			t.Fatalf("kind %s: expected %d, got %d", kind, want, got)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(Internal, "EMAIL_EXISTS")
	if err.Error() != "INTERNAL: EMAIL_EXISTS" {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
}
