package formflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// Mode distinguishes creating a new entity from editing a persisted one.
// Draft persistence applies only in add mode: editing an existing entity
// never draft-saves, so a stale draft can never clobber the live record.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Session state errors.
var (
	ErrSessionClosed        = errors.New("form session is closed")
	ErrSubmitInFlight       = errors.New("submit already in progress")
	ErrInvalidCloseDecision = errors.New("close decision not applicable")
)

// Submitter is the external persistence boundary. A rejection may be a
// *domain.ValidationError carrying field-scoped server errors (slug
// collisions and the like) which the session merges into its own error map.
type Submitter interface {
	Submit(ctx context.Context, doc Document) error
}

// Notifier receives user-facing success/error/info messages. The session
// never renders UI.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}
func (noopNotifier) Info(string)    {}

// DefaultAutoSaveDelay is the quiet period for debounced draft saves.
const DefaultAutoSaveDelay = 1500 * time.Millisecond

// SessionConfig wires a Session's collaborators. Drafts and Submit are
// required; Notify and OnClose may be nil. OnClose is the explicit
// close-callback injection point; there is no process-wide registry of
// close handlers.
type SessionConfig struct {
	Schema        Schema
	Mode          Mode
	Existing      Document // persisted entity, edit mode only
	Drafts        *Drafts
	Submit        Submitter
	Notify        Notifier
	Log           *slog.Logger
	AutoSaveDelay time.Duration
	OnClose       func()
}

// Session is the orchestrating state machine of one open entry form: it owns
// the working document, current step, error map and submit flag, and
// coordinates the draft store, debounced saver and step evaluator.
//
// All methods are safe for concurrent use. The lock is released while the
// external submit call is in flight, so edits made during a submit remain
// visible in the working document; they are not part of the in-flight
// payload, which is snapshotted at submit-call time.
type Session struct {
	schema    Schema
	validator *Validator
	evaluator *Evaluator
	drafts    *Drafts
	submitter Submitter
	notify    Notifier
	log       *slog.Logger
	onClose   func()

	mu             sync.Mutex
	mode           Mode
	doc            Document
	baseline       Document
	step           int
	errors         Errors
	submitting     bool
	closed         bool
	restorePending bool

	debounce *Debouncer
}

// NewSession initializes a form session.
//
// Edit mode seeds the working document and baseline from the existing entity
// merged over the template, so every optional nested branch is defaulted.
// Add mode checks for a meaningful stored draft: if one exists the
// restore-or-discard decision is surfaced (RestorePending) and real seeding
// is deferred until RestoreDraft or DiscardDraft resolves it.
func NewSession(ctx context.Context, cfg SessionConfig) (*Session, error) {
	if cfg.Drafts == nil {
		return nil, fmt.Errorf("formflow: session requires a draft manager")
	}
	if cfg.Submit == nil {
		return nil, fmt.Errorf("formflow: session requires a submitter")
	}
	if cfg.Notify == nil {
		cfg.Notify = noopNotifier{}
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.AutoSaveDelay <= 0 {
		cfg.AutoSaveDelay = DefaultAutoSaveDelay
	}

	s := &Session{
		schema:    cfg.Schema,
		validator: cfg.Schema.Validator(),
		evaluator: cfg.Schema.Evaluator(),
		drafts:    cfg.Drafts,
		submitter: cfg.Submit,
		notify:    cfg.Notify,
		log:       cfg.Log.With(slog.String("form", cfg.Schema.Name), slog.String("mode", string(cfg.Mode))),
		onClose:   cfg.OnClose,
		mode:      cfg.Mode,
		errors:    make(Errors),
	}
	s.debounce = NewDebouncer(cfg.AutoSaveDelay, func(doc Document) {
		s.drafts.Save(context.Background(), doc)
	})

	switch cfg.Mode {
	case ModeEdit:
		s.doc = Merge(cfg.Schema.Template, cfg.Existing)
		s.baseline = s.doc.Clone()
	case ModeAdd:
		s.doc = cfg.Schema.Template.Clone()
		s.baseline = s.doc.Clone()
		if s.drafts.HasMeaningfulDraft(ctx) {
			s.restorePending = true
		}
	default:
		return nil, fmt.Errorf("formflow: unknown mode %q", cfg.Mode)
	}

	return s, nil
}

// RestorePending reports whether the restore-or-discard decision from a
// previous draft is still unresolved.
func (s *Session) RestorePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restorePending
}

// RestoreDraft resolves the pending restore decision by seeding the working
// document from the stored draft. The baseline also becomes the restored
// document, so a restored-but-untouched form counts as unchanged.
func (s *Session) RestoreDraft(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if !s.restorePending {
		return nil
	}
	rec, ok := s.drafts.Load(ctx)
	if ok {
		s.doc = Merge(s.schema.Template, rec.Document)
		s.baseline = s.doc.Clone()
		s.notify.Info("Draft restored")
	}
	s.restorePending = false
	return nil
}

// DiscardDraft resolves the pending restore decision by deleting the stored
// draft and keeping the empty-defaults seed.
func (s *Session) DiscardDraft(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.drafts.Clear(ctx)
	s.restorePending = false
	return nil
}

// SetField replaces the value at path, creating intermediate containers as
// needed. The path's error entry is updated in the same synchronous step, not
// on the next validation pass: a stale message is cleared and the new value is
// checked against the field's own rule. Derived price display fields are
// recomputed when the path feeds one.
func (s *Session) SetField(ctx context.Context, path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.doc.Set(path, value)
	delete(s.errors, path)
	if msg := s.validator.CheckPath(s.doc, path); msg != "" {
		s.errors[path] = msg
	}

	for _, p := range s.schema.Prices {
		if path == p.NumericPath || path == p.CurrencyPath {
			p.apply(s.doc)
			delete(s.errors, p.DisplayPath)
		}
	}

	s.maybeAutoSave()
	return nil
}

// maybeAutoSave schedules a debounced draft save after a document change.
// Only in add mode, only once the restore prompt is resolved, only when
// there is unsaved work, and only past the schema's minimal-content bar.
// Callers hold s.mu.
func (s *Session) maybeAutoSave() {
	if s.mode != ModeAdd || s.restorePending {
		return
	}
	if !s.hasUnsavedChanges() {
		return
	}
	if !s.schema.AutoSave.Meaningful(s.doc) {
		return
	}
	s.debounce.Call(s.doc.Clone())
}

// HasUnsavedChanges reports whether the working document differs from the
// baseline. In add mode a populated meaningful field also counts, so an
// unexpected baseline mismatch still flags unsaved work.
func (s *Session) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasUnsavedChanges()
}

func (s *Session) hasUnsavedChanges() bool {
	if !s.doc.Equal(s.baseline) {
		return true
	}
	if s.mode == ModeAdd && s.schema.Meaningful.Meaningful(s.doc) {
		return true
	}
	return false
}

// Document returns a copy of the working document.
func (s *Session) Document() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Errors returns a copy of the current error map.
func (s *Session) Errors() Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Clone()
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Steps returns the schema's step definitions.
func (s *Session) Steps() []Step { return s.schema.Steps }

// CurrentStep returns the current wizard step index.
func (s *Session) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// StepStatuses evaluates every step against the working document.
func (s *Session) StepStatuses() []StepStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluator.Statuses(s.doc)
}

// NextStep advances the wizard. Forward navigation is never gated on
// validity; only submit is.
func (s *Session) NextStep() { s.GoToStep(s.CurrentStep() + 1) }

// PrevStep moves one step back.
func (s *Session) PrevStep() { s.GoToStep(s.CurrentStep() - 1) }

// GoToStep jumps to step i, clamped to the valid range.
func (s *Session) GoToStep(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 {
		i = 0
	}
	if max := len(s.schema.Steps) - 1; i > max {
		i = max
	}
	if i < 0 {
		i = 0
	}
	s.step = i
}

// Submitting reports whether an external submit call is in flight.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Submit validates the whole document and, if it passes, invokes the
// external persistence boundary with a snapshot taken at call time.
//
// A failed validation populates the error map and never reaches the
// submitter. A second Submit while one is in flight returns
// ErrSubmitInFlight; exactly one external invocation occurs. On submitter
// success the draft is cleared (add mode only); on failure the draft is kept
// and any field-scoped server errors are merged into the error map so the
// user can correct and retry without losing data.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}

	errs := s.validator.Validate(s.doc)
	if len(errs) > 0 || !s.evaluator.SubmitEligible(s.doc) {
		s.errors = errs
		s.mu.Unlock()
		s.notify.Error("Please fix the highlighted fields")
		return domain.ValidationErrorFromMap(errs)
	}
	s.errors = make(Errors)

	payload := s.doc.Clone()
	s.submitting = true
	s.mu.Unlock()

	err := s.submitter.Submit(ctx, payload)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for field, msg := range ve.FieldErrors() {
				s.errors[field] = msg
			}
		}
		s.mu.Unlock()
		s.log.WarnContext(ctx, "submit failed", slog.String("error", err.Error()))
		s.notify.Error("Saving failed: " + err.Error())
		return err
	}

	if s.mode == ModeAdd {
		s.debounce.Stop()
		s.drafts.Clear(ctx)
	}
	s.baseline = payload
	s.mu.Unlock()
	s.notify.Success("Saved")
	return nil
}

// Reset restores the form to template defaults: document, baseline, errors,
// step index, and (add mode) the stored draft.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.reset(ctx)
	return nil
}

// reset is Reset without the lock; callers hold s.mu.
func (s *Session) reset(ctx context.Context) {
	s.doc = s.schema.Template.Clone()
	s.baseline = s.doc.Clone()
	s.errors = make(Errors)
	s.step = 0
	s.restorePending = false
	if s.mode == ModeAdd {
		s.debounce.Stop()
		s.drafts.Clear(ctx)
	}
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// abandon closes the session without firing the close callback. Used when a
// replacement session takes over the same registry slot: the pending debounced
// save must not fire into the store the replacement now owns, and the callback
// must not tear down the replacement's registry entry.
func (s *Session) abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.debounce.Stop()
}

// close finalizes the session and fires the injected close callback.
// Callers hold s.mu.
func (s *Session) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.debounce.Stop()
	if s.onClose != nil {
		s.onClose()
	}
}
