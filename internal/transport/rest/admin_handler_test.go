package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	authsvc "github.com/noor-saray-dubai/admin-panel-sub002/internal/service/auth"
	"github.com/noor-saray-dubai/admin-panel-sub002/pkg/ctxutil"
)

type userAdminServiceMock struct {
	CreateUserFunc   func(ctx context.Context, input authsvc.CreateUserInput) (*domain.User, error)
	UpdateGrantsFunc func(ctx context.Context, input authsvc.UpdateGrantsInput) (*domain.User, error)
	ListUsersFunc    func(ctx context.Context) ([]*domain.User, error)
	GetUserFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userAdminServiceMock) CreateUser(ctx context.Context, input authsvc.CreateUserInput) (*domain.User, error) {
	return m.CreateUserFunc(ctx, input)
}

func (m *userAdminServiceMock) UpdateGrants(ctx context.Context, input authsvc.UpdateGrantsInput) (*domain.User, error) {
	return m.UpdateGrantsFunc(ctx, input)
}

func (m *userAdminServiceMock) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return m.ListUsersFunc(ctx)
}

func (m *userAdminServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetUserFunc(ctx, id)
}

func adminRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := ctxutil.WithUserID(req.Context(), uuid.New())
	ctx = ctxutil.WithRole(ctx, "ADMIN")
	return req.WithContext(ctx)
}

func TestAdminCreateUser_Success(t *testing.T) {
	t.Parallel()

	svc := &userAdminServiceMock{
		CreateUserFunc: func(_ context.Context, input authsvc.CreateUserInput) (*domain.User, error) {
			if input.Role != domain.RoleEditor {
				t.Errorf("expected role EDITOR, got %s", input.Role)
			}
			if len(input.Collections) != 2 {
				t.Errorf("expected two collections, got %v", input.Collections)
			}
			return &domain.User{
				ID:          uuid.New(),
				Email:       input.Email,
				Name:        input.Name,
				Role:        input.Role,
				Collections: input.Collections,
			}, nil
		},
	}
	h := NewAdminHandler(svc, testLogger())

	body := `{"email":"new@noorsaray.com","name":"New Editor","password":"long enough password","role":"EDITOR","collections":["hotels","projects"]}`
	req := adminRequest(http.MethodPost, "/admin/users", body)
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Email != "new@noorsaray.com" {
		t.Errorf("unexpected email %q", resp.Email)
	}
}

func TestAdminCreateUser_NonAdmin(t *testing.T) {
	t.Parallel()

	h := NewAdminHandler(&userAdminServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{}`))
	req = req.WithContext(ctxutil.WithRole(req.Context(), "EDITOR"))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestAdminCreateUser_Anonymous(t *testing.T) {
	t.Parallel()

	h := NewAdminHandler(&userAdminServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestAdminUpdateGrants_PassesPathID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &userAdminServiceMock{
		UpdateGrantsFunc: func(_ context.Context, input authsvc.UpdateGrantsInput) (*domain.User, error) {
			if input.UserID != userID.String() {
				t.Errorf("expected user id %s, got %s", userID, input.UserID)
			}
			return &domain.User{ID: userID, Role: input.Role, Collections: input.Collections}, nil
		},
	}
	h := NewAdminHandler(svc, testLogger())

	req := adminRequest(http.MethodPut, "/admin/users/"+userID.String()+"/grants", `{"role":"VIEWER","collections":[]}`)
	req.SetPathValue("id", userID.String())
	rec := httptest.NewRecorder()

	h.UpdateGrants(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminListUsers(t *testing.T) {
	t.Parallel()

	svc := &userAdminServiceMock{
		ListUsersFunc: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{testUser(), testUser()}, nil
		},
	}
	h := NewAdminHandler(svc, testLogger())

	req := adminRequest(http.MethodGet, "/admin/users", "")
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected two users, got %d", len(resp))
	}
}

func TestAdminGetUser_BadID(t *testing.T) {
	t.Parallel()

	h := NewAdminHandler(&userAdminServiceMock{}, testLogger())

	req := adminRequest(http.MethodGet, "/admin/users/nope", "")
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	h.GetUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
