package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/docstore"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

var (
	_ docRepo   = &docRepoMock{}
	_ userRepo  = &userRepoMock{}
	_ txManager = &txManagerMock{}
)

type docRepoMock struct {
	CreateFunc         func(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.CatalogDocument, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*domain.CatalogDocument, error)
	UpdateFunc         func(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListFunc           func(ctx context.Context, filter docstore.Filter) ([]*domain.CatalogDocument, int, error)
	SlugConstraintName string

	calls struct {
		Create []struct{ Doc *domain.CatalogDocument }
		Update []struct{ Doc *domain.CatalogDocument }
		Delete []struct{ ID uuid.UUID }
		List   []struct{ Filter docstore.Filter }
	}
	lock sync.RWMutex
}

func (mock *docRepoMock) Create(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error) {
	if mock.CreateFunc == nil {
		panic("docRepoMock.CreateFunc: method is nil but docRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Doc *domain.CatalogDocument }{Doc: doc})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, doc)
}

func (mock *docRepoMock) CreateCalls() []struct{ Doc *domain.CatalogDocument } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *docRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogDocument, error) {
	if mock.GetByIDFunc == nil {
		panic("docRepoMock.GetByIDFunc: method is nil but docRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *docRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.CatalogDocument, error) {
	if mock.GetBySlugFunc == nil {
		panic("docRepoMock.GetBySlugFunc: method is nil but docRepo.GetBySlug was just called")
	}
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *docRepoMock) Update(ctx context.Context, doc *domain.CatalogDocument) (*domain.CatalogDocument, error) {
	if mock.UpdateFunc == nil {
		panic("docRepoMock.UpdateFunc: method is nil but docRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Doc *domain.CatalogDocument }{Doc: doc})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, doc)
}

func (mock *docRepoMock) UpdateCalls() []struct{ Doc *domain.CatalogDocument } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *docRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("docRepoMock.DeleteFunc: method is nil but docRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *docRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *docRepoMock) List(ctx context.Context, filter docstore.Filter) ([]*domain.CatalogDocument, int, error) {
	if mock.ListFunc == nil {
		panic("docRepoMock.ListFunc: method is nil but docRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter docstore.Filter }{Filter: filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *docRepoMock) ListCalls() []struct{ Filter docstore.Filter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *docRepoMock) SlugConstraint() string {
	return mock.SlugConstraintName
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}
