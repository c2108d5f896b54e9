package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestServiceErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *ServiceError
		want int
	}{
		{"validation", NewValidationError("données invalides", nil), http.StatusBadRequest},
		{"not_found", NewNotFoundError("cours introuvable", nil), http.StatusNotFound},
		{"forbidden", NewForbiddenError("opération non autorisée", nil), http.StatusForbidden},
		{"conflict", NewConflictError("mémoire déjà existant", nil), http.StatusConflict},
		{"internal", NewInternalError("erreur stockage", errors.New("boom")), http.StatusInternalServerError},
		{"type inconnu", &ServiceError{Type: "autre"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, attendu %d", got, tt.want)
			}
		})
	}
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("connexion perdue")
	err := NewInternalError("erreur stockage", fmt.Errorf("niveau intermédiaire: %w", cause))

	if !errors.Is(err, cause) {
		t.Error("errors.Is devrait retrouver la cause à travers Unwrap")
	}
}

func TestAsServiceError(t *testing.T) {
	svcErr := NewNotFoundError("introuvable", nil)
	if got := AsServiceError(svcErr); got != svcErr {
		t.Error("une ServiceError doit être retournée telle quelle")
	}

	plain := errors.New("erreur technique")
	got := AsServiceError(plain)
	if got.Type != ErrInternal {
		t.Errorf("Type = %q, attendu %q", got.Type, ErrInternal)
	}
	if !errors.Is(got, plain) {
		t.Error("la cause technique doit rester accessible via Unwrap")
	}
}
