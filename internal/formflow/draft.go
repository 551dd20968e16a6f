package formflow

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DraftRecord is one persisted in-progress form document.
type DraftRecord struct {
	Document Document  `json:"document"`
	SavedAt  time.Time `json:"savedAt"`
}

// DraftStore persists at most one draft per namespaced key. Implementations
// must treat a missing or corrupt record as absent, not as an error, and
// Clear must be idempotent.
type DraftStore interface {
	Save(ctx context.Context, rec DraftRecord) error
	Load(ctx context.Context) (DraftRecord, bool, error)
	Clear(ctx context.Context) error
}

// MeaningfulField is one field consulted by the meaningful-content predicate.
// A string value satisfies the field when its trimmed length exceeds
// MinLength; any other non-empty value satisfies it regardless.
type MeaningfulField struct {
	Path      string
	MinLength int
}

// MeaningfulPolicy distinguishes a real in-progress draft from an
// effectively-empty one. Each entity schema declares its own field list and
// thresholds explicitly; there is no shared cross-entity rule.
type MeaningfulPolicy struct {
	Fields []MeaningfulField
}

// Meaningful reports whether any declared field is populated past its
// threshold.
func (p MeaningfulPolicy) Meaningful(doc Document) bool {
	for _, f := range p.Fields {
		value, ok := doc.Get(f.Path)
		if !ok || isEmptyValue(value) {
			continue
		}
		if s, isStr := value.(string); isStr {
			if len(strings.TrimSpace(s)) > f.MinLength {
				return true
			}
			continue
		}
		return true
	}
	return false
}

// Drafts wraps a DraftStore with the meaningful-content gate and best-effort
// error handling: losing a draft is non-fatal, so storage failures are
// logged and swallowed rather than surfaced to the editing session.
type Drafts struct {
	store  DraftStore
	policy MeaningfulPolicy
	log    *slog.Logger
	now    func() time.Time
}

// NewDrafts creates a draft manager over the given store.
func NewDrafts(store DraftStore, policy MeaningfulPolicy, log *slog.Logger) *Drafts {
	return &Drafts{store: store, policy: policy, log: log, now: time.Now}
}

// Save persists the document with the current timestamp. Documents failing
// the meaningful-content gate are not persisted; an empty draft must never
// trigger a restore prompt later.
func (d *Drafts) Save(ctx context.Context, doc Document) {
	if !d.policy.Meaningful(doc) {
		return
	}
	rec := DraftRecord{Document: doc.Clone(), SavedAt: d.now().UTC()}
	if err := d.store.Save(ctx, rec); err != nil {
		d.log.WarnContext(ctx, "draft save failed", slog.String("error", err.Error()))
	}
}

// Load returns the persisted draft if present and parseable.
func (d *Drafts) Load(ctx context.Context) (DraftRecord, bool) {
	rec, ok, err := d.store.Load(ctx)
	if err != nil {
		d.log.WarnContext(ctx, "draft load failed", slog.String("error", err.Error()))
		return DraftRecord{}, false
	}
	return rec, ok
}

// Clear removes any persisted draft. Absent-if-already-absent is not an
// error.
func (d *Drafts) Clear(ctx context.Context) {
	if err := d.store.Clear(ctx); err != nil {
		d.log.WarnContext(ctx, "draft clear failed", slog.String("error", err.Error()))
	}
}

// HasMeaningfulDraft reports whether a draft exists and passes the
// meaningful-content gate.
func (d *Drafts) HasMeaningfulDraft(ctx context.Context) bool {
	rec, ok := d.Load(ctx)
	return ok && d.policy.Meaningful(rec.Document)
}

// Timestamp returns the savedAt of the current draft for display.
func (d *Drafts) Timestamp(ctx context.Context) (time.Time, bool) {
	rec, ok := d.Load(ctx)
	if !ok {
		return time.Time{}, false
	}
	return rec.SavedAt, true
}

// MemoryDraftStore is an in-process DraftStore holding one record per
// instance. Used in tests and single-node deployments.
type MemoryDraftStore struct {
	mu  sync.Mutex
	rec DraftRecord
	set bool
}

// NewMemoryDraftStore creates an empty in-memory store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{}
}

func (m *MemoryDraftStore) Save(_ context.Context, rec DraftRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = DraftRecord{Document: rec.Document.Clone(), SavedAt: rec.SavedAt}
	m.set = true
	return nil
}

func (m *MemoryDraftStore) Load(_ context.Context) (DraftRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return DraftRecord{}, false, nil
	}
	return DraftRecord{Document: m.rec.Document.Clone(), SavedAt: m.rec.SavedAt}, true, nil
}

func (m *MemoryDraftStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = DraftRecord{}
	m.set = false
	return nil
}
