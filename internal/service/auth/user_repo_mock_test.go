package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateGrantsFunc   func(ctx context.Context, id uuid.UUID, role domain.Role, collections []domain.Collection) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, passwordHash string) error
	ListFunc           func(ctx context.Context) ([]*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByEmail []struct {
			Email string
		}
		Create []struct {
			User *domain.User
		}
		UpdateGrants []struct {
			ID          uuid.UUID
			Role        domain.Role
			Collections []domain.Collection
		}
		UpdatePassword []struct {
			ID           uuid.UUID
			PasswordHash string
		}
		List []struct{}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByEmail
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{User: user})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) UpdateGrants(ctx context.Context, id uuid.UUID, role domain.Role, collections []domain.Collection) (*domain.User, error) {
	if mock.UpdateGrantsFunc == nil {
		panic("userRepoMock.UpdateGrantsFunc: method is nil but userRepo.UpdateGrants was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateGrants = append(mock.calls.UpdateGrants, struct {
		ID          uuid.UUID
		Role        domain.Role
		Collections []domain.Collection
	}{ID: id, Role: role, Collections: collections})
	mock.lock.Unlock()
	return mock.UpdateGrantsFunc(ctx, id, role, collections)
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, struct {
		ID           uuid.UUID
		PasswordHash string
	}{ID: id, PasswordHash: passwordHash})
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	ID           uuid.UUID
	PasswordHash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePassword
}

func (mock *userRepoMock) List(ctx context.Context) ([]*domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}
