package docstore

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// Filter narrows a List query. Zero values mean "no constraint".
type Filter struct {
	// Search matches title and slug, case-insensitive substring.
	Search string
	// Status restricts to one publication state.
	Status domain.DocumentStatus
	Limit  int
	Offset int
}

const defaultListLimit = 50

// List returns a page of documents ordered by most recently updated, plus the
// total count matching the filter.
func (r *Repo) List(ctx context.Context, f Filter) ([]*domain.CatalogDocument, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	where := squirrel.And{}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"slug": pattern},
		})
	}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": string(f.Status)})
	}

	countSQL, countArgs, err := builder.
		Select("count(*)").
		From(r.table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	listSQL, listArgs, err := builder.
		Select(docColumns).
		From(r.table).
		Where(where).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.CatalogDocument
	for rows.Next() {
		doc, err := r.scanDoc(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}

	return docs, total, nil
}
