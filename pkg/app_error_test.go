package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
		if e.Error() != "CAR_NOT_FOUND: Car not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Success || body.Code != "CAR_NOT_FOUND" || body.Message != "Car not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("dynamodb unavailable")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb unavailable" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into the body")
		}
	})
}
