package formflow

// Schema is the caller-supplied shape of one entity form: the empty-defaults
// template, the declared field rules, structural rules, wizard steps, the
// per-entity meaningful-content policies, and the derived price fields. The
// engine hardcodes no entity field names; the generic price-display
// derivation is the only field-aware special case, and even that is
// addressed through paths declared here.
type Schema struct {
	// Name namespaces the entity type ("hotels", "properties", ...). It is
	// also the draft key namespace, so hotel drafts never collide with
	// property drafts in storage.
	Name string

	Template   Document
	Rules      map[string]Rule
	Structural []StructuralRule
	Steps      []Step

	// Meaningful gates the restore prompt: a stored draft below this bar is
	// never offered back to the user.
	Meaningful MeaningfulPolicy

	// AutoSave gates debounced draft saving while typing. Tuned separately
	// from Meaningful; each entity documents its own thresholds.
	AutoSave MeaningfulPolicy

	Prices []DerivedPrice
}

// Validator builds the whole-document validator for this schema.
func (s Schema) Validator() *Validator {
	return &Validator{Rules: s.Rules, Structural: s.Structural}
}

// Evaluator builds the step status evaluator for this schema.
func (s Schema) Evaluator() *Evaluator {
	return &Evaluator{Validator: s.Validator(), Steps: s.Steps}
}
