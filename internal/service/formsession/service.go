// Package formsession exposes the multi-step form engine as a use-case
// service: one live session per (user, collection), draft persistence in
// Redis, submits routed to the catalog service.
package formsession

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow/schema"
	"github.com/noor-saray-dubai/admin-panel-sub002/pkg/ctxutil"
)

// documentGetter loads the persisted entity when a form opens in edit mode.
type documentGetter interface {
	Get(ctx context.Context, collection domain.Collection, id uuid.UUID) (*domain.CatalogDocument, error)
}

// submitterFactory builds the submit boundary for one session.
type submitterFactory interface {
	SubmitterFor(collection domain.Collection, existingID *uuid.UUID) formflow.Submitter
}

// draftStoreFactory builds the per-(collection, user) draft store.
type draftStoreFactory interface {
	For(collection string, userID uuid.UUID) formflow.DraftStore
}

// Service manages form sessions across users and collections.
type Service struct {
	log        *slog.Logger
	registry   *formflow.Registry
	docs       documentGetter
	submitters submitterFactory
	drafts     draftStoreFactory
}

// NewService creates a form session service.
func NewService(logger *slog.Logger, docs documentGetter, submitters submitterFactory, drafts draftStoreFactory) *Service {
	return &Service{
		log:        logger.With("service", "formsession"),
		registry:   formflow.NewRegistry(),
		docs:       docs,
		submitters: submitters,
		drafts:     drafts,
	}
}

func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// Open starts a new session for the user and collection, replacing any
// previous one. documentID selects edit mode; nil means a blank add form.
func (s *Service) Open(ctx context.Context, collection domain.Collection, documentID *uuid.UUID) (*SessionView, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sch, err := schema.ForCollection(collection)
	if err != nil {
		return nil, fmt.Errorf("formsession: %w: %v", domain.ErrNotFound, err)
	}

	cfg := formflow.SessionConfig{
		Schema: sch,
		Drafts: formflow.NewDrafts(s.drafts.For(collection.String(), userID), sch.Meaningful, s.log),
		Submit: s.submitters.SubmitterFor(collection, documentID),
		Log:    s.log,
		OnClose: func() {
			s.registry.Remove(userID, sch.Name)
		},
	}

	if documentID != nil {
		doc, err := s.docs.Get(ctx, collection, *documentID)
		if err != nil {
			return nil, err
		}
		cfg.Mode = formflow.ModeEdit
		cfg.Existing = formflow.Document(doc.Data)
	} else {
		cfg.Mode = formflow.ModeAdd
	}

	session, err := formflow.NewSession(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("formsession.Open: %w", err)
	}
	s.registry.Put(userID, sch.Name, session)

	s.log.InfoContext(ctx, "form session opened",
		slog.String("collection", collection.String()),
		slog.String("user_id", userID.String()),
		slog.String("mode", string(cfg.Mode)))

	return s.view(session), nil
}

// with runs fn against the user's live session for the collection.
func (s *Service) with(ctx context.Context, collection domain.Collection, fn func(*formflow.Session) error) (*SessionView, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var view *SessionView
	err = s.registry.With(userID, collection.String(), func(session *formflow.Session) error {
		if err := fn(session); err != nil {
			return err
		}
		view = s.view(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SetField writes one field of the working document.
func (s *Service) SetField(ctx context.Context, collection domain.Collection, path string, value any) (*SessionView, error) {
	return s.with(ctx, collection, func(session *formflow.Session) error {
		return session.SetField(ctx, path, value)
	})
}

// Navigate moves the current step: "next", "prev", or a specific step index.
func (s *Service) Navigate(ctx context.Context, collection domain.Collection, input NavigateInput) (*SessionView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.with(ctx, collection, func(session *formflow.Session) error {
		switch input.Action {
		case NavigateNext:
			session.NextStep()
		case NavigatePrev:
			session.PrevStep()
		case NavigateGoTo:
			session.GoToStep(input.Step)
		}
		return nil
	})
}

// Submit validates and persists the working document.
// A validation rejection still returns the session view so the caller gets
// the refreshed error map alongside the error.
func (s *Service) Submit(ctx context.Context, collection domain.Collection) (*SessionView, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.registry.Get(userID, collection.String())
	if err != nil {
		return nil, err
	}

	if err := session.Submit(ctx); err != nil {
		return s.view(session), err
	}
	return s.view(session), nil
}

// RestoreDraft resolves a pending draft prompt by restoring the stored draft.
func (s *Service) RestoreDraft(ctx context.Context, collection domain.Collection) (*SessionView, error) {
	return s.with(ctx, collection, func(session *formflow.Session) error {
		return session.RestoreDraft(ctx)
	})
}

// DiscardDraft resolves a pending draft prompt by discarding the stored draft.
func (s *Service) DiscardDraft(ctx context.Context, collection domain.Collection) (*SessionView, error) {
	return s.with(ctx, collection, func(session *formflow.Session) error {
		return session.DiscardDraft(ctx)
	})
}

// RequestClose asks the session what closing now would mean.
func (s *Service) RequestClose(ctx context.Context, collection domain.Collection) (formflow.ClosePrompt, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return formflow.ClosePrompt{}, err
	}
	session, err := s.registry.Get(userID, collection.String())
	if err != nil {
		return formflow.ClosePrompt{}, err
	}
	return session.RequestClose(ctx)
}

// ResolveClose applies the user's close decision. A closing decision removes
// the session from the registry via the injected close callback.
func (s *Service) ResolveClose(ctx context.Context, collection domain.Collection, decision formflow.CloseDecision) error {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}
	session, err := s.registry.Get(userID, collection.String())
	if err != nil {
		return err
	}
	return session.ResolveClose(ctx, decision)
}

// Get returns the current session view without mutating anything.
func (s *Service) Get(ctx context.Context, collection domain.Collection) (*SessionView, error) {
	return s.with(ctx, collection, func(*formflow.Session) error { return nil })
}
