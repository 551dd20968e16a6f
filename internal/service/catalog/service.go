// Package catalog implements CRUD use cases over the per-collection document
// stores, with role and collection-grant permission checks.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/docstore"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/pkg/ctxutil"
)

// docRepo defines the document repository interface needed per collection.
type docRepo interface {
	Create(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogDocument, error)
	GetBySlug(ctx context.Context, slug string) (*domain.CatalogDocument, error)
	Update(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter docstore.Filter) ([]*domain.CatalogDocument, int, error)
	SlugConstraint() string
}

// userRepo defines the user repository interface needed for permission checks.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog document operations across all collections.
type Service struct {
	log   *slog.Logger
	repos map[domain.Collection]docRepo
	users userRepo
	tx    txManager
}

// NewService creates a catalog service over the given per-collection repos.
func NewService(logger *slog.Logger, repos map[domain.Collection]docRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "catalog"),
		repos: repos,
		users: users,
		tx:    tx,
	}
}

// Repos builds the repo map from a pool-backed docstore per collection.
func Repos(newRepo func(domain.Collection) (*docstore.Repo, error)) (map[domain.Collection]docRepo, error) {
	repos := make(map[domain.Collection]docRepo, len(domain.Collections()))
	for _, c := range domain.Collections() {
		r, err := newRepo(c)
		if err != nil {
			return nil, err
		}
		repos[c] = r
	}
	return repos, nil
}

func (s *Service) repo(collection domain.Collection) (docRepo, error) {
	r, ok := s.repos[collection]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown collection %q: %w", collection, domain.ErrNotFound)
	}
	return r, nil
}

// currentUser loads the authenticated user from the request context.
func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("catalog: load user: %w", err)
	}
	return user, nil
}

// requireWrite loads the current user and checks write access to the collection.
func (s *Service) requireWrite(ctx context.Context, collection domain.Collection) (*domain.User, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.CanWrite(collection) {
		return nil, fmt.Errorf("collection %s: %w", collection, domain.ErrForbidden)
	}
	return user, nil
}

// requireRead loads the current user and checks read access to the collection.
func (s *Service) requireRead(ctx context.Context, collection domain.Collection) (*domain.User, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.CanRead(collection) {
		return nil, fmt.Errorf("collection %s: %w", collection, domain.ErrForbidden)
	}
	return user, nil
}
