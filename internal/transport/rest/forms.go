package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/service/formsession"
)

type formsService interface {
	Open(ctx context.Context, collection domain.Collection, documentID *uuid.UUID) (*formsession.SessionView, error)
	Get(ctx context.Context, collection domain.Collection) (*formsession.SessionView, error)
	SetField(ctx context.Context, collection domain.Collection, path string, value any) (*formsession.SessionView, error)
	Navigate(ctx context.Context, collection domain.Collection, input formsession.NavigateInput) (*formsession.SessionView, error)
	Submit(ctx context.Context, collection domain.Collection) (*formsession.SessionView, error)
	RestoreDraft(ctx context.Context, collection domain.Collection) (*formsession.SessionView, error)
	DiscardDraft(ctx context.Context, collection domain.Collection) (*formsession.SessionView, error)
	RequestClose(ctx context.Context, collection domain.Collection) (formflow.ClosePrompt, error)
	ResolveClose(ctx context.Context, collection domain.Collection, decision formflow.CloseDecision) error
}

// FormsHandler serves the multi-step form session endpoints. One session per
// user and collection; every mutation returns the refreshed session view so
// the client never derives state locally.
type FormsHandler struct {
	svc formsService
	log *slog.Logger
}

// NewFormsHandler creates a FormsHandler.
func NewFormsHandler(svc formsService, logger *slog.Logger) *FormsHandler {
	return &FormsHandler{svc: svc, log: logger.With("handler", "forms")}
}

type openRequest struct {
	DocumentID *string `json:"documentId"`
}

type setFieldRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type navigateRequest struct {
	Action string `json:"action"`
	Step   int    `json:"step"`
}

type resolveCloseRequest struct {
	Decision string `json:"decision"`
}

// Open handles POST /forms/{collection}/open.
func (h *FormsHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var documentID *uuid.UUID
	if req.DocumentID != nil {
		id, err := uuid.Parse(*req.DocumentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid document id")
			return
		}
		documentID = &id
	}

	view, err := h.svc.Open(r.Context(), domain.Collection(r.PathValue("collection")), documentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Get handles GET /forms/{collection}.
func (h *FormsHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(r.Context(), domain.Collection(r.PathValue("collection")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// SetField handles PATCH /forms/{collection}/field.
func (h *FormsHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	view, err := h.svc.SetField(r.Context(), domain.Collection(r.PathValue("collection")), req.Path, req.Value)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Navigate handles POST /forms/{collection}/navigate.
func (h *FormsHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.Navigate(r.Context(), domain.Collection(r.PathValue("collection")), formsession.NavigateInput{
		Action: formsession.NavigateAction(req.Action),
		Step:   req.Step,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Submit handles POST /forms/{collection}/submit. A validation rejection
// still carries the refreshed session view so the client can paint field
// errors from the same response.
func (h *FormsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Submit(r.Context(), domain.Collection(r.PathValue("collection")))
	if err != nil {
		if view != nil && errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":       "validation failed",
				"fieldErrors": view.Errors,
				"session":     view,
			})
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RestoreDraft handles POST /forms/{collection}/draft/restore.
func (h *FormsHandler) RestoreDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.RestoreDraft(r.Context(), domain.Collection(r.PathValue("collection")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// DiscardDraft handles DELETE /forms/{collection}/draft.
func (h *FormsHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.DiscardDraft(r.Context(), domain.Collection(r.PathValue("collection")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RequestClose handles POST /forms/{collection}/close/request.
func (h *FormsHandler) RequestClose(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.svc.RequestClose(r.Context(), domain.Collection(r.PathValue("collection")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, prompt)
}

// ResolveClose handles POST /forms/{collection}/close.
func (h *FormsHandler) ResolveClose(w http.ResponseWriter, r *http.Request) {
	var req resolveCloseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.ResolveClose(r.Context(), domain.Collection(r.PathValue("collection")),
		formflow.CloseDecision(req.Decision))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
