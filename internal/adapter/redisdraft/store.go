// Package redisdraft implements the form draft store on Redis. One key per
// (collection, user), JSON-encoded records, expired after TTL so abandoned
// drafts clean themselves up.
package redisdraft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// DefaultTTL is how long an untouched draft survives. Every save renews it.
const DefaultTTL = 14 * 24 * time.Hour

// Store addresses the draft of a single (collection, user) pair. It satisfies
// formflow.DraftStore, which is key-agnostic: the engine drives one store per
// session, the key is fixed at construction.
type Store struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ formflow.DraftStore = (*Store)(nil)

// New creates a draft store bound to one collection and user.
func New(client *redis.Client, collection string, userID uuid.UUID) *Store {
	return &Store{
		client: client,
		key:    draftKey(collection, userID),
		ttl:    DefaultTTL,
	}
}

// WithTTL overrides the draft expiry.
func (s *Store) WithTTL(ttl time.Duration) *Store {
	s.ttl = ttl
	return s
}

func (s *Store) Save(ctx context.Context, rec formflow.DraftRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, s.key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the stored draft. A missing key or an unparseable record both
// report absent: a corrupt draft must never block opening the form.
func (s *Store) Load(ctx context.Context) (formflow.DraftRecord, bool, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return formflow.DraftRecord{}, false, nil
	}
	if err != nil {
		return formflow.DraftRecord{}, false, fmt.Errorf("load draft: %w", err)
	}

	var rec formflow.DraftRecord
	if err := json.Unmarshal([]byte(v), &rec); err != nil {
		return formflow.DraftRecord{}, false, nil
	}
	return rec, true, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

func draftKey(collection string, userID uuid.UUID) string {
	return fmt.Sprintf("draft:%s:%s", collection, userID)
}

// Factory builds per-session stores over one shared client.
type Factory struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFactory creates a store factory. A non-positive ttl means DefaultTTL.
func NewFactory(client *redis.Client, ttl time.Duration) *Factory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Factory{client: client, ttl: ttl}
}

// For returns the draft store for one (collection, user) pair.
func (f *Factory) For(collection string, userID uuid.UUID) formflow.DraftStore {
	return New(f.client, collection, userID).WithTTL(f.ttl)
}
