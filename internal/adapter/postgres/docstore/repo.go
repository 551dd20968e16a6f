// Package docstore implements the catalog document repository using
// PostgreSQL. One repo instance serves one collection table; the tables share
// a shape, so a single implementation covers all five. All queries use raw
// SQL since the data column is JSONB requiring custom marshal/unmarshal
// logic; list filtering is built with squirrel.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// Repo provides catalog document persistence for one collection.
type Repo struct {
	pool       *pgxpool.Pool
	collection domain.Collection
	table      string
}

// New creates a repository over the collection's table.
func New(pool *pgxpool.Pool, collection domain.Collection) (*Repo, error) {
	if !collection.IsValid() {
		return nil, fmt.Errorf("docstore: unknown collection %q", collection)
	}
	// Table names come from the closed Collection enum, never from input.
	return &Repo{pool: pool, collection: collection, table: collection.String()}, nil
}

// Collection returns the collection this repo serves.
func (r *Repo) Collection() domain.Collection { return r.collection }

// SlugConstraint is the unique-constraint name guarding slugs in this table.
func (r *Repo) SlugConstraint() string { return r.table + "_slug_key" }

const docColumns = `id, slug, title, status, data, created_by, updated_by, created_at, updated_at`

func (r *Repo) createSQL() string {
	return `INSERT INTO ` + r.table + ` (` + docColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + docColumns
}

func (r *Repo) getByIDSQL() string {
	return `SELECT ` + docColumns + ` FROM ` + r.table + ` WHERE id = $1`
}

func (r *Repo) getBySlugSQL() string {
	return `SELECT ` + docColumns + ` FROM ` + r.table + ` WHERE slug = $1`
}

func (r *Repo) updateSQL() string {
	return `UPDATE ` + r.table + `
SET slug = $2, title = $3, status = $4, data = $5, updated_by = $6, updated_at = $7
WHERE id = $1
RETURNING ` + docColumns
}

func (r *Repo) deleteSQL() string {
	return `DELETE FROM ` + r.table + ` WHERE id = $1`
}

// Create inserts a new document and returns the persisted record.
// A slug collision surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("document %s: marshal data: %w", doc.Slug, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, r.createSQL(),
		doc.ID, doc.Slug, doc.Title, string(doc.Status), raw,
		doc.CreatedBy, doc.UpdatedBy, now, now,
	)

	created, err := r.scanDoc(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", doc.Slug)
	}
	return created, nil
}

// GetByID returns a document by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogDocument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	doc, err := r.scanDoc(querier.QueryRow(ctx, r.getByIDSQL(), id))
	if err != nil {
		return nil, postgres.MapError(err, "document", id.String())
	}
	return doc, nil
}

// GetBySlug returns a document by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.CatalogDocument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	doc, err := r.scanDoc(querier.QueryRow(ctx, r.getBySlugSQL(), slug))
	if err != nil {
		return nil, postgres.MapError(err, "document", slug)
	}
	return doc, nil
}

// Update replaces the stored document. Returns domain.ErrNotFound when the
// id does not exist, domain.ErrAlreadyExists on a slug collision.
func (r *Repo) Update(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("document %s: marshal data: %w", doc.Slug, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, r.updateSQL(),
		doc.ID, doc.Slug, doc.Title, string(doc.Status), raw, doc.UpdatedBy, now,
	)

	updated, err := r.scanDoc(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", doc.Slug)
	}
	return updated, nil
}

// Delete removes a document permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, r.deleteSQL(), id)
	if err != nil {
		return postgres.MapError(err, "document", id.String())
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanDoc scans a single document row.
func (r *Repo) scanDoc(row pgx.Row) (*domain.CatalogDocument, error) {
	var (
		doc    domain.CatalogDocument
		status string
		raw    []byte
	)

	if err := row.Scan(&doc.ID, &doc.Slug, &doc.Title, &status, &raw,
		&doc.CreatedBy, &doc.UpdatedBy, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}

	doc.Collection = r.collection
	doc.Status = domain.DocumentStatus(status)
	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return nil, fmt.Errorf("unmarshal data: %w", err)
	}
	return &doc, nil
}
