package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation sentinel", domain.ErrValidation, http.StatusBadRequest},
		{"field validation", domain.NewValidationError("slug", "taken"), http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"session closed", formflow.ErrSessionClosed, http.StatusConflict},
		{"submit in flight", formflow.ErrSubmitInFlight, http.StatusConflict},
		{"close decision", formflow.ErrInvalidCloseDecision, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handleError(rec, req, testLogger(), tc.err)

			if rec.Code != tc.want {
				t.Errorf("handleError(%v) = %d, want %d", tc.err, rec.Code, tc.want)
			}
		})
	}
}
