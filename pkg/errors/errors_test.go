package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	notFound := New(NotFound, "donation not found")
	wrapped := fmt.Errorf("review: %w", notFound)

	if KindOf(wrapped) != NotFound {
		t.Errorf("expected NotFound, got %v", KindOf(wrapped))
	}
	if !errors.Is(wrapped, notFound) {
		t.Error("expected errors.Is to match the sentinel")
	}
	if KindOf(errors.New("boom")) != Internal {
		t.Error("plain errors should be Internal")
	}
}

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		Validation:    http.StatusBadRequest,
		Unauthorized:  http.StatusUnauthorized,
		Forbidden:     http.StatusForbidden,
		NotFound:      http.StatusNotFound,
		Conflict:      http.StatusConflict,
		Unprocessable: http.StatusUnprocessableEntity,
		Internal:      http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := kind.Status(); got != want {
			t.Errorf("kind %d: expected %d, got %d", kind, want, got)
		}
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(ErrOptimisticLock, "fallback"); got != ErrOptimisticLock.Message {
		t.Errorf("unexpected message %q", got)
	}
	if got := MessageOf(errors.New("db down"), "server error"); got != "server error" {
		t.Errorf("expected fallback, got %q", got)
	}
}
