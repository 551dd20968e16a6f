package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/docstore"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// Create inserts a new document into the collection.
// A slug collision surfaces as a field-scoped validation error.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.CatalogDocument, error) {
	user, err := s.requireWrite(ctx, input.Collection)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	repo, err := s.repo(input.Collection)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	doc, err := repo.Create(ctx, &domain.CatalogDocument{
		ID:         uuid.New(),
		Collection: input.Collection,
		Slug:       input.Slug,
		Title:      input.Title,
		Status:     status,
		Data:       input.Data,
		CreatedBy:  user.ID,
		UpdatedBy:  user.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, repo.SlugConstraint()) {
			return nil, domain.NewValidationError("slug", "a document with this slug already exists")
		}
		return nil, fmt.Errorf("catalog.Create: %w", err)
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("collection", input.Collection.String()),
		slog.String("document_id", doc.ID.String()),
		slog.String("slug", doc.Slug))

	return doc, nil
}

// Get returns one document by ID.
func (s *Service) Get(ctx context.Context, collection domain.Collection, id uuid.UUID) (*domain.CatalogDocument, error) {
	if _, err := s.requireRead(ctx, collection); err != nil {
		return nil, err
	}
	repo, err := s.repo(collection)
	if err != nil {
		return nil, err
	}

	doc, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.Get: %w", err)
	}
	return doc, nil
}

// GetBySlug returns one document by slug.
func (s *Service) GetBySlug(ctx context.Context, collection domain.Collection, slug string) (*domain.CatalogDocument, error) {
	if _, err := s.requireRead(ctx, collection); err != nil {
		return nil, err
	}
	repo, err := s.repo(collection)
	if err != nil {
		return nil, err
	}

	doc, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetBySlug: %w", err)
	}
	return doc, nil
}

// ListResult is a page of documents plus the unpaginated total.
type ListResult struct {
	Documents []*domain.CatalogDocument
	Total     int
}

// List returns a filtered page of documents.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, err := s.requireRead(ctx, input.Collection); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	repo, err := s.repo(input.Collection)
	if err != nil {
		return nil, err
	}

	docs, total, err := repo.List(ctx, docstore.Filter{
		Search: input.Search,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.List: %w", err)
	}
	return &ListResult{Documents: docs, Total: total}, nil
}

// Update replaces a document's content. The read and write run in one
// transaction so concurrent updates cannot interleave.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.CatalogDocument, error) {
	user, err := s.requireWrite(ctx, input.Collection)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, domain.NewValidationError("id", "must be a UUID")
	}
	repo, err := s.repo(input.Collection)
	if err != nil {
		return nil, err
	}

	var updated *domain.CatalogDocument
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		existing.Slug = input.Slug
		existing.Title = input.Title
		if input.Status != "" {
			existing.Status = input.Status
		}
		existing.Data = input.Data
		existing.UpdatedBy = user.ID

		updated, err = repo.Update(txCtx, existing)
		return err
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, repo.SlugConstraint()) {
			return nil, domain.NewValidationError("slug", "a document with this slug already exists")
		}
		return nil, fmt.Errorf("catalog.Update: %w", err)
	}

	s.log.InfoContext(ctx, "document updated",
		slog.String("collection", input.Collection.String()),
		slog.String("document_id", updated.ID.String()))

	return updated, nil
}

// Delete removes a document. Only admins may delete.
func (s *Service) Delete(ctx context.Context, collection domain.Collection, id uuid.UUID) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleAdmin {
		return fmt.Errorf("delete %s: %w", collection, domain.ErrForbidden)
	}
	repo, err := s.repo(collection)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("collection", collection.String()),
		slog.String("document_id", id.String()))

	return nil
}
