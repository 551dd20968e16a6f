package schema

import (
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// Hotel is the largest form: seven steps covering identity, pricing,
// dimensions, rooms and dining, wellness and meetings, media, and review.
func Hotel() formflow.Schema {
	return formflow.Schema{
		Name: "hotels",
		Template: formflow.Document{
			"name":        "",
			"subtitle":    "",
			"location":    "",
			"subLocation": "",
			"description": "",
			"rating":      nil,
			"yearBuilt":   nil,
			"yearOpened":  nil,
			"price": map[string]any{
				"total":        "",
				"totalNumeric": nil,
				"currency":     "AED",
			},
			"dimensions": map[string]any{
				"floors":    nil,
				"height":    nil,
				"totalArea": nil,
			},
			"rooms":  []any{},
			"dining": []any{},
			"wellness": map[string]any{
				"spa":        false,
				"facilities": []any{},
			},
			"meetings": map[string]any{
				"rooms":       nil,
				"maxCapacity": nil,
			},
			"gallery":   []any{},
			"amenities": []any{},
		},
		Rules: map[string]formflow.Rule{
			"name":        {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(120)},
			"subtitle":    {Type: formflow.FieldText, MaxLength: formflow.Int(200)},
			"location":    {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"subLocation": {Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"description": {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(20), MaxLength: formflow.Int(5000)},
			"rating":      {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(1), Max: formflow.Float(7)},
			"yearBuilt":   {Type: formflow.FieldNumber, Min: formflow.Float(1950), Max: formflow.Float(2050)},
			"yearOpened":  {Type: formflow.FieldNumber, Min: formflow.Float(1950), Max: formflow.Float(2050)},

			"price.totalNumeric": {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"price.currency":     {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(3)},

			"dimensions.floors":    {Type: formflow.FieldNumber, Min: formflow.Float(1), Max: formflow.Float(200)},
			"dimensions.height":    {Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"dimensions.totalArea": {Type: formflow.FieldNumber, Min: formflow.Float(0)},

			"meetings.rooms":       {Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"meetings.maxCapacity": {Type: formflow.FieldNumber, Min: formflow.Float(0)},
		},
		Structural: []formflow.StructuralRule{
			requireNonEmptyList("rooms", "at least one room type is required"),
			namedCategories("amenities"),
			imageGallery("gallery"),
		},
		Steps: []formflow.Step{
			{Title: "General", Fields: []string{"name", "subtitle", "description", "rating", "yearBuilt", "yearOpened"}},
			{Title: "Location", Fields: []string{"location", "subLocation"}},
			{Title: "Pricing", Fields: []string{"price.totalNumeric", "price.currency"}},
			{Title: "Dimensions", Fields: []string{"dimensions.floors", "dimensions.height", "dimensions.totalArea"}},
			{Title: "Rooms & Dining", Fields: []string{"rooms", "dining"}},
			{Title: "Facilities", Fields: []string{"wellness.spa", "wellness.facilities", "meetings.rooms", "meetings.maxCapacity", "amenities"}},
			{Title: "Media", Fields: []string{"gallery"}},
			{Title: "Review", Review: true},
		},
		Meaningful: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 3},
			{Path: "location"},
			{Path: "description", MinLength: 10},
			{Path: "price.totalNumeric"},
		}},
		AutoSave: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 3},
			{Path: "location"},
		}},
		Prices: []formflow.DerivedPrice{{
			NumericPath:     "price.totalNumeric",
			DisplayPath:     "price.total",
			CurrencyPath:    "price.currency",
			DefaultCurrency: "AED",
		}},
	}
}
