package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an editor with access to every collection.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.RoleEditor, domain.Collections())
}

// SeedUserWithRole creates a user with the given role and collection grants.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.Role, collections []domain.Collection) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$testtesttesttesttesttesttesttesttesttesttesttesttestte",
		Role:         role,
		Collections:  collections,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	grants := make([]string, len(collections))
	for i, c := range collections {
		grants[i] = c.String()
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, collections, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), grants, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDocument inserts a catalog document into the collection's table.
// Returns the filled domain.CatalogDocument.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, collection domain.Collection, createdBy uuid.UUID, data map[string]any) domain.CatalogDocument {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	if data == nil {
		data = map[string]any{"name": "Seed " + suffix}
	}
	title, _ := data["name"].(string)
	if title == "" {
		title = "Seed " + suffix
	}

	doc := domain.CatalogDocument{
		ID:         uuid.New(),
		Collection: collection,
		Slug:       "seed-" + suffix,
		Title:      title,
		Status:     domain.StatusActive,
		Data:       data,
		CreatedBy:  createdBy,
		UpdatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	raw, err := json.Marshal(doc.Data)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument marshal data: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO `+collection.String()+` (id, slug, title, status, data, created_by, updated_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		doc.ID, doc.Slug, doc.Title, string(doc.Status), raw, doc.CreatedBy, doc.UpdatedBy, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert: %v", err)
	}

	return doc
}
