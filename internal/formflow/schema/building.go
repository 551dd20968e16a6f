package schema

import (
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// Building is a commercial or residential tower.
func Building() formflow.Schema {
	return formflow.Schema{
		Name: "buildings",
		Template: formflow.Document{
			"name":        "",
			"location":    "",
			"description": "",
			"category":    "",
			"yearBuilt":   nil,
			"dimensions": map[string]any{
				"floors":    nil,
				"height":    nil,
				"totalArea": nil,
			},
			"units": nil,
			"price": map[string]any{
				"total":        "",
				"totalNumeric": nil,
				"currency":     "AED",
			},
			"amenities": []any{},
			"gallery":   []any{},
		},
		Rules: map[string]formflow.Rule{
			"name":        {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(120)},
			"location":    {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"description": {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(20), MaxLength: formflow.Int(5000)},
			"category":    {Required: true, Type: formflow.FieldText},
			"yearBuilt":   {Type: formflow.FieldNumber, Min: formflow.Float(1950), Max: formflow.Float(2050)},

			"dimensions.floors":    {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(1), Max: formflow.Float(200)},
			"dimensions.height":    {Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"dimensions.totalArea": {Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"units":                {Type: formflow.FieldNumber, Min: formflow.Float(0)},

			"price.totalNumeric": {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"price.currency":     {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(3)},
		},
		Structural: []formflow.StructuralRule{
			namedCategories("amenities"),
			imageGallery("gallery"),
		},
		Steps: []formflow.Step{
			{Title: "General", Fields: []string{"name", "description", "category", "yearBuilt"}},
			{Title: "Location", Fields: []string{"location"}},
			{Title: "Dimensions", Fields: []string{"dimensions.floors", "dimensions.height", "dimensions.totalArea", "units"}},
			{Title: "Pricing", Fields: []string{"price.totalNumeric", "price.currency"}},
			{Title: "Media", Fields: []string{"amenities", "gallery"}},
			{Title: "Review", Review: true},
		},
		Meaningful: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 3},
			{Path: "location"},
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
