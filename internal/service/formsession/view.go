package formsession

import (
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// StepView is one wizard step with its current status.
type StepView struct {
	Title  string              `json:"title"`
	Status formflow.StepStatus `json:"status"`
	Review bool                `json:"review,omitempty"`
}

// SessionView is the transport-facing snapshot of a session.
type SessionView struct {
	Mode           formflow.Mode     `json:"mode"`
	Step           int               `json:"step"`
	Steps          []StepView        `json:"steps"`
	Document       formflow.Document `json:"document"`
	Errors         formflow.Errors   `json:"errors"`
	UnsavedChanges bool              `json:"unsavedChanges"`
	RestorePending bool              `json:"restorePending"`
	Submitting     bool              `json:"submitting"`
}

func (s *Service) view(session *formflow.Session) *SessionView {
	statuses := session.StepStatuses()
	steps := session.Steps()

	views := make([]StepView, len(steps))
	for i, step := range steps {
		views[i] = StepView{Title: step.Title, Review: step.Review}
		if i < len(statuses) {
			views[i].Status = statuses[i]
		}
	}

	return &SessionView{
		Mode:           session.Mode(),
		Step:           session.CurrentStep(),
		Steps:          views,
		Document:       session.Document(),
		Errors:         session.Errors(),
		UnsavedChanges: session.HasUnsavedChanges(),
		RestorePending: session.RestorePending(),
		Submitting:     session.Submitting(),
	}
}

// NavigateAction selects how Navigate moves the current step.
type NavigateAction string

const (
	NavigateNext NavigateAction = "next"
	NavigatePrev NavigateAction = "prev"
	NavigateGoTo NavigateAction = "goto"
)

// NavigateInput holds parameters for step navigation.
type NavigateInput struct {
	Action NavigateAction
	Step   int // goto only
}

// Validate validates the navigation input.
func (i NavigateInput) Validate() error {
	switch i.Action {
	case NavigateNext, NavigatePrev:
		return nil
	case NavigateGoTo:
		if i.Step < 0 {
			return domain.NewValidationError("step", "must not be negative")
		}
		return nil
	default:
		return domain.NewValidationError("action", "must be next, prev or goto")
	}
}
