package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/service/catalog"
)

type catalogService interface {
	Create(ctx context.Context, input catalog.CreateInput) (*domain.CatalogDocument, error)
	Get(ctx context.Context, collection domain.Collection, id uuid.UUID) (*domain.CatalogDocument, error)
	GetBySlug(ctx context.Context, collection domain.Collection, slug string) (*domain.CatalogDocument, error)
	List(ctx context.Context, input catalog.ListInput) (*catalog.ListResult, error)
	Update(ctx context.Context, input catalog.UpdateInput) (*domain.CatalogDocument, error)
	Delete(ctx context.Context, collection domain.Collection, id uuid.UUID) error
}

// CatalogHandler serves catalog document CRUD for all collections. The
// collection name is a path segment; unknown names map to 404.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type documentRequest struct {
	Slug   string         `json:"slug"`
	Title  string         `json:"title"`
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

type documentResponse struct {
	ID         string         `json:"id"`
	Collection string         `json:"collection"`
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	Status     string         `json:"status"`
	Data       map[string]any `json:"data"`
	CreatedBy  string         `json:"createdBy"`
	UpdatedBy  string         `json:"updatedBy"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type listResponse struct {
	Documents []documentResponse `json:"documents"`
	Total     int                `json:"total"`
}

// Create handles POST /catalog/{collection}.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.svc.Create(r.Context(), catalog.CreateInput{
		Collection: domain.Collection(r.PathValue("collection")),
		Slug:       req.Slug,
		Title:      req.Title,
		Status:     domain.DocumentStatus(req.Status),
		Data:       req.Data,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

// Get handles GET /catalog/{collection}/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := h.svc.Get(r.Context(), domain.Collection(r.PathValue("collection")), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// GetBySlug handles GET /catalog/{collection}/slug/{slug}.
func (h *CatalogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.GetBySlug(r.Context(),
		domain.Collection(r.PathValue("collection")), r.PathValue("slug"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// List handles GET /catalog/{collection}?search=&status=&limit=&offset=.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := catalog.ListInput{
		Collection: domain.Collection(r.PathValue("collection")),
		Search:     q.Get("search"),
		Status:     domain.DocumentStatus(q.Get("status")),
	}
	if v := q.Get("limit"); v != "" {
		input.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		input.Offset, _ = strconv.Atoi(v)
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := listResponse{
		Documents: make([]documentResponse, 0, len(result.Documents)),
		Total:     result.Total,
	}
	for _, doc := range result.Documents {
		out.Documents = append(out.Documents, toDocumentResponse(doc))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /catalog/{collection}/{id}.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.svc.Update(r.Context(), catalog.UpdateInput{
		Collection: domain.Collection(r.PathValue("collection")),
		ID:         r.PathValue("id"),
		Slug:       req.Slug,
		Title:      req.Title,
		Status:     domain.DocumentStatus(req.Status),
		Data:       req.Data,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// Delete handles DELETE /catalog/{collection}/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	if err := h.svc.Delete(r.Context(), domain.Collection(r.PathValue("collection")), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toDocumentResponse(doc *domain.CatalogDocument) documentResponse {
	return documentResponse{
		ID:         doc.ID.String(),
		Collection: doc.Collection.String(),
		Slug:       doc.Slug,
		Title:      doc.Title,
		Status:     doc.Status.String(),
		Data:       doc.Data,
		CreatedBy:  doc.CreatedBy.String(),
		UpdatedBy:  doc.UpdatedBy.String(),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
