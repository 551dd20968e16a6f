package schema

import (
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// Property is a single sellable unit: apartment, villa or townhouse.
func Property() formflow.Schema {
	return formflow.Schema{
		Name: "properties",
		Template: formflow.Document{
			"name":         "",
			"location":     "",
			"community":    "",
			"description":  "",
			"propertyType": "",
			"bedrooms":     nil,
			"bathrooms":    nil,
			"area":         nil,
			"furnished":    false,
			"price": map[string]any{
				"total":        "",
				"totalNumeric": nil,
				"currency":     "AED",
			},
			"amenities": []any{},
			"gallery":   []any{},
		},
		Rules: map[string]formflow.Rule{
			"name":         {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(120)},
			"location":     {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"community":    {Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"description":  {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(20), MaxLength: formflow.Int(5000)},
			"propertyType": {Required: true, Type: formflow.FieldText},
			"bedrooms":     {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(0), Max: formflow.Float(20)},
			"bathrooms":    {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(0), Max: formflow.Float(20)},
			"area":         {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(1)},

			"price.totalNumeric": {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"price.currency":     {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(3)},
		},
		Structural: []formflow.StructuralRule{
			imageGallery("gallery"),
		},
		Steps: []formflow.Step{
			{Title: "General", Fields: []string{"name", "description", "propertyType", "furnished"}},
			{Title: "Location", Fields: []string{"location", "community"}},
			{Title: "Layout", Fields: []string{"bedrooms", "bathrooms", "area"}},
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
