package redisdraft

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

var (
	once       sync.Once
	sharedAddr string
	initErr    error
)

// setupRedis starts a shared Redis container (once for the entire test run)
// and returns a fresh client. The client is closed via t.Cleanup; the
// container lives until the process exits.
func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	once.Do(func() {
		sharedAddr, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("redisdraft: failed to setup test redis: %v", initErr)
	}

	client := redis.NewClient(&redis.Options{Addr: sharedAddr})
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

func TestStore_SaveLoadClear(t *testing.T) {
	t.Parallel()

	client := setupRedis(t)
	store := New(client, "hotels", uuid.New())
	ctx := context.Background()

	_, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if ok {
		t.Fatal("expected no draft before save")
	}

	saved := formflow.DraftRecord{
		Document: formflow.Document{
			"name": "Palm Crown Hotel",
			"location": map[string]any{
				"city": "Dubai",
			},
		},
		SavedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected draft after save")
	}
	if rec.Document["name"] != "Palm Crown Hotel" {
		t.Errorf("unexpected name %v", rec.Document["name"])
	}
	loc, ok := rec.Document["location"].(map[string]any)
	if !ok || loc["city"] != "Dubai" {
		t.Errorf("nested document did not survive the round trip: %v", rec.Document)
	}
	if !rec.SavedAt.Equal(saved.SavedAt) {
		t.Errorf("expected SavedAt %s, got %s", saved.SavedAt, rec.SavedAt)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	_, ok, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load after clear: %v", err)
	}
	if ok {
		t.Fatal("expected no draft after clear")
	}
}

func TestStore_KeyIsolation(t *testing.T) {
	t.Parallel()

	client := setupRedis(t)
	ctx := context.Background()

	userA := uuid.New()
	userB := uuid.New()

	storeA := New(client, "hotels", userA)
	storeB := New(client, "hotels", userB)
	storeOther := New(client, "projects", userA)

	if err := storeA.Save(ctx, formflow.DraftRecord{
		Document: formflow.Document{"name": "Owned by A"},
		SavedAt:  time.Now().UTC(),
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok, _ := storeB.Load(ctx); ok {
		t.Error("another user's store must not see the draft")
	}
	if _, ok, _ := storeOther.Load(ctx); ok {
		t.Error("another collection's store must not see the draft")
	}
}

func TestStore_KeyFormat(t *testing.T) {
	t.Parallel()

	client := setupRedis(t)
	ctx := context.Background()

	userID := uuid.New()
	store := New(client, "developers", userID)

	if err := store.Save(ctx, formflow.DraftRecord{
		Document: formflow.Document{"name": "K"},
		SavedAt:  time.Now().UTC(),
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	key := fmt.Sprintf("draft:developers:%s", userID)
	if err := client.Get(ctx, key).Err(); err != nil {
		t.Errorf("expected key %q to exist: %v", key, err)
	}

	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > DefaultTTL {
		t.Errorf("expected TTL within (0, %s], got %s", DefaultTTL, ttl)
	}
}

func TestStore_CorruptRecordReportsAbsent(t *testing.T) {
	t.Parallel()

	client := setupRedis(t)
	ctx := context.Background()

	userID := uuid.New()
	store := New(client, "buildings", userID)

	key := fmt.Sprintf("draft:buildings:%s", userID)
	if err := client.Set(ctx, key, "{not json", time.Minute).Err(); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	_, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("corrupt draft must report absent, not block the form")
	}
}

func TestFactory_AppliesTTL(t *testing.T) {
	t.Parallel()

	client := setupRedis(t)
	ctx := context.Background()

	factory := NewFactory(client, time.Hour)
	userID := uuid.New()
	store := factory.For("hotels", userID)

	if err := store.Save(ctx, formflow.DraftRecord{
		Document: formflow.Document{"name": "F"},
		SavedAt:  time.Now().UTC(),
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	key := fmt.Sprintf("draft:hotels:%s", userID)
	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("expected TTL within (0, 1h], got %s", ttl)
	}
}
