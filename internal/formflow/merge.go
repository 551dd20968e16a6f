package formflow

// Merge defaults a partially-shaped persisted entity into a schema template.
//
// Policy:
//   - the entity value wins at every leaf it provides,
//   - branches the entity is missing fall back to the template,
//   - arrays replace wholesale (entity arrays are never concatenated with or
//     element-merged into template arrays),
//   - an explicit nil in the entity keeps the template value, so documents
//     loaded from storage never leave the UI dereferencing an absent branch.
//
// Neither input is mutated; the result is a fresh deep copy.
func Merge(template, entity Document) Document {
	if entity == nil {
		return template.Clone()
	}
	if template == nil {
		return entity.Clone()
	}
	return Document(mergeMaps(map[string]any(template), map[string]any(entity)))
}

func mergeMaps(template, entity map[string]any) map[string]any {
	out := make(map[string]any, len(template)+len(entity))
	for k, tv := range template {
		out[k] = cloneValue(tv)
	}
	for k, ev := range entity {
		if ev == nil {
			continue
		}
		tm, tok := asMap(out[k])
		em, eok := asMap(ev)
		if tok && eok {
			out[k] = mergeMaps(tm, em)
			continue
		}
		out[k] = cloneValue(ev)
	}
	return out
}
