// Package schema declares the form schemas of the catalog entities: template
// documents, field rules, structural rules, wizard steps, draft policies and
// derived price fields. The engine in package formflow is entity-agnostic;
// everything entity-specific lives here.
package schema

import (
	"fmt"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// ForCollection returns the form schema of a catalog collection.
func ForCollection(c domain.Collection) (formflow.Schema, error) {
	switch c {
	case domain.CollectionHotels:
		return Hotel(), nil
	case domain.CollectionProperties:
		return Property(), nil
	case domain.CollectionDevelopers:
		return Developer(), nil
	case domain.CollectionBuildings:
		return Building(), nil
	case domain.CollectionProjects:
		return Project(), nil
	default:
		return formflow.Schema{}, fmt.Errorf("no form schema for collection %q", c)
	}
}

// All returns every declared schema, keyed by collection name.
func All() map[string]formflow.Schema {
	out := make(map[string]formflow.Schema)
	for _, c := range domain.Collections() {
		s, err := ForCollection(c)
		if err != nil {
			continue
		}
		out[s.Name] = s
	}
	return out
}
