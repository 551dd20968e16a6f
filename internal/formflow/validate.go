package formflow

// Errors maps a field path to a single human-readable message. A path is
// present if and only if its current value violates its declared constraint.
type Errors map[string]string

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Issue is one structural-rule finding, addressed to a field path so it can
// live in the same error map as per-field violations.
type Issue struct {
	Path    string
	Message string
}

// StructuralRule checks a constraint spanning multiple fields, such as "at
// least one room type" or "every amenity category is named", and reports
// zero or more issues. Rules must be pure functions of the document.
type StructuralRule func(Document) []Issue

// Validator composes per-path rules and structural rules into a
// whole-document validation pass.
type Validator struct {
	Rules      map[string]Rule
	Structural []StructuralRule
}

// Validate runs every declared rule and produces the full error map in one
// pass. Per-field rules run first; structural findings never overwrite a
// per-field message already present for the same path.
func (v *Validator) Validate(doc Document) Errors {
	errs := make(Errors)
	for path, rule := range v.Rules {
		value, _ := doc.Get(path)
		if msg := CheckField(value, rule); msg != "" {
			errs[path] = msg
		}
	}
	for _, rule := range v.Structural {
		for _, issue := range rule(doc) {
			if _, taken := errs[issue.Path]; !taken {
				errs[issue.Path] = issue.Message
			}
		}
	}
	return errs
}

// CheckPath validates the single field at path. Empty string means valid or
// undeclared.
func (v *Validator) CheckPath(doc Document, path string) string {
	rule, ok := v.Rules[path]
	if !ok {
		return ""
	}
	value, _ := doc.Get(path)
	return CheckField(value, rule)
}
