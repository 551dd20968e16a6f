package formflow

import "strings"

// Step is one page of the entry wizard. Fields lists the paths the step owns
// for completion purposes; the union across steps need not cover the whole
// document (cross-cutting fields like isActive belong to no step). A step
// owning a path also owns every sub-path beneath it, so array-element
// violations roll up to the step that owns the array.
type Step struct {
	Title  string
	Fields []string

	// Review marks the terminal review step, whose status aggregates every
	// other step instead of checking fields of its own.
	Review bool
}

// StepStatus is the tri-state completion status of a wizard step.
type StepStatus string

const (
	StepIncomplete StepStatus = "incomplete"
	StepInvalid    StepStatus = "invalid"
	StepValid      StepStatus = "valid"
)

// Evaluator computes step statuses from the same rules the whole-document
// validator runs, restricted per step to its owned fields.
type Evaluator struct {
	Validator *Validator
	Steps     []Step
}

// StatusOf returns the status of the step at index i for the given document.
//
//	incomplete: a required owned field is missing, nothing violated
//	invalid:    any owned declared constraint violated
//	valid:      required owned fields present, nothing violated
//
// The review step is valid iff every other step is valid. Out-of-range
// indexes report incomplete.
func (e *Evaluator) StatusOf(i int, doc Document) StepStatus {
	if i < 0 || i >= len(e.Steps) {
		return StepIncomplete
	}
	step := e.Steps[i]

	if step.Review {
		for j := range e.Steps {
			if j == i {
				continue
			}
			if e.StatusOf(j, doc) != StepValid {
				return StepIncomplete
			}
		}
		return StepValid
	}

	requiredPresent := true
	violated := false
	for path, rule := range e.Validator.Rules {
		if !step.owns(path) {
			continue
		}
		value, _ := doc.Get(path)
		if rule.Required && isEmptyValue(value) {
			requiredPresent = false
			continue
		}
		if msg := CheckField(value, rule); msg != "" {
			violated = true
		}
	}
	for _, rule := range e.Validator.Structural {
		for _, issue := range rule(doc) {
			if step.owns(issue.Path) {
				violated = true
			}
		}
	}

	switch {
	case violated:
		return StepInvalid
	case !requiredPresent:
		return StepIncomplete
	default:
		return StepValid
	}
}

// Statuses evaluates every step in order.
func (e *Evaluator) Statuses(doc Document) []StepStatus {
	out := make([]StepStatus, len(e.Steps))
	for i := range e.Steps {
		out[i] = e.StatusOf(i, doc)
	}
	return out
}

// SubmitEligible reports whether the document may be submitted: the
// whole-document validator passes and every non-review step is valid.
func (e *Evaluator) SubmitEligible(doc Document) bool {
	if len(e.Validator.Validate(doc)) != 0 {
		return false
	}
	for i, step := range e.Steps {
		if step.Review {
			continue
		}
		if e.StatusOf(i, doc) != StepValid {
			return false
		}
	}
	return true
}

func (s Step) owns(path string) bool {
	for _, owned := range s.Fields {
		if path == owned || strings.HasPrefix(path, owned+".") {
			return true
		}
	}
	return false
}
