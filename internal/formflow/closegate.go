package formflow

import (
	"context"
	"time"
)

// CloseDecision is one resolution of the close confirmation prompt.
//
// An add-mode form with unsaved work offers continue / save_draft / discard.
// A pristine add-mode form offers only continue / confirm: with nothing worth
// keeping, a save-or-discard choice would be noise, so the draft-handling
// decisions collapse into a plain confirm that still clears any stale draft.
type CloseDecision string

const (
	// CloseContinue keeps the session open (cancel).
	CloseContinue CloseDecision = "continue"
	// CloseSaveDraft saves the draft explicitly, then closes. Add mode with
	// unsaved changes only.
	CloseSaveDraft CloseDecision = "save_draft"
	// CloseDiscard clears the draft, resets the form, then closes. Add mode
	// with unsaved changes only.
	CloseDiscard CloseDecision = "discard"
	// CloseConfirm closes without draft handling: edit mode's only closing
	// option, and the closing option of a pristine add-mode form.
	CloseConfirm CloseDecision = "confirm"
)

// ClosePrompt describes the confirmation raised by RequestClose: what the
// user is about to lose and which resolutions apply in the current mode.
type ClosePrompt struct {
	UnsavedChanges bool            `json:"unsavedChanges"`
	DraftSavedAt   *time.Time      `json:"draftSavedAt,omitempty"`
	Options        []CloseDecision `json:"options"`
}

// RequestClose intercepts a close attempt. While a submit is in flight
// closing is blocked and ErrSubmitInFlight is returned. Otherwise a prompt
// is always raised, even with no unsaved changes, so every close is an
// explicit acknowledgement.
func (s *Session) RequestClose(ctx context.Context) (ClosePrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ClosePrompt{}, ErrSessionClosed
	}
	if s.submitting {
		return ClosePrompt{}, ErrSubmitInFlight
	}

	prompt := ClosePrompt{UnsavedChanges: s.hasUnsavedChanges()}
	switch {
	case s.mode == ModeAdd && prompt.UnsavedChanges:
		prompt.Options = []CloseDecision{CloseContinue, CloseSaveDraft, CloseDiscard}
	default:
		prompt.Options = []CloseDecision{CloseContinue, CloseConfirm}
	}
	if s.mode == ModeAdd {
		if ts, ok := s.drafts.Timestamp(ctx); ok {
			prompt.DraftSavedAt = &ts
		}
	}
	return prompt, nil
}

// ResolveClose applies a close decision.
//
// Add mode accepts continue / save_draft / discard; edit mode accepts
// continue / confirm. Any closing resolution with no unsaved changes still
// clears the stored draft, so a cleanly abandoned form never leaves an
// orphaned draft for a future session to find.
func (s *Session) ResolveClose(ctx context.Context, decision CloseDecision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.submitting {
		return ErrSubmitInFlight
	}

	switch decision {
	case CloseContinue:
		return nil

	case CloseSaveDraft:
		if s.mode != ModeAdd || !s.hasUnsavedChanges() {
			return ErrInvalidCloseDecision
		}
		s.debounce.Stop()
		s.drafts.Save(ctx, s.doc)
		s.close()
		return nil

	case CloseDiscard:
		if s.mode != ModeAdd || !s.hasUnsavedChanges() {
			return ErrInvalidCloseDecision
		}
		s.reset(ctx)
		s.close()
		return nil

	case CloseConfirm:
		if s.mode == ModeAdd {
			// Clean close still clears any stale draft.
			if s.hasUnsavedChanges() {
				return ErrInvalidCloseDecision
			}
			s.debounce.Stop()
			s.drafts.Clear(ctx)
			s.close()
			return nil
		}
		s.close()
		return nil
	}
	return ErrInvalidCloseDecision
}
