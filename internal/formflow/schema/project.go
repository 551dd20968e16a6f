package schema

import (
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// Project is an off-plan or completed development by a developer.
func Project() formflow.Schema {
	return formflow.Schema{
		Name: "projects",
		Template: formflow.Document{
			"name":        "",
			"developer":   "",
			"location":    "",
			"description": "",
			"status":      "",
			"launchYear":  nil,
			"handover":    "",
			"totalUnits":  nil,
			"price": map[string]any{
				"total":        "",
				"totalNumeric": nil,
				"currency":     "AED",
			},
			"unitTypes": []any{},
			"gallery":   []any{},
		},
		Rules: map[string]formflow.Rule{
			"name":        {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(120)},
			"developer":   {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"location":    {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"description": {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(20), MaxLength: formflow.Int(5000)},
			"status":      {Required: true, Type: formflow.FieldText},
			"launchYear":  {Type: formflow.FieldNumber, Min: formflow.Float(2000), Max: formflow.Float(2050)},
			"handover":    {Type: formflow.FieldText, MaxLength: formflow.Int(40)},
			"totalUnits":  {Type: formflow.FieldNumber, Min: formflow.Float(1)},

			"price.totalNumeric": {Required: true, Type: formflow.FieldNumber, Min: formflow.Float(0)},
			"price.currency":     {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(3), MaxLength: formflow.Int(3)},
		},
		Structural: []formflow.StructuralRule{
			requireNonEmptyList("unitTypes", "at least one unit type is required"),
			imageGallery("gallery"),
		},
		Steps: []formflow.Step{
			{Title: "General", Fields: []string{"name", "developer", "description", "status"}},
			{Title: "Location", Fields: []string{"location"}},
			{Title: "Timeline", Fields: []string{"launchYear", "handover", "totalUnits"}},
			{Title: "Pricing", Fields: []string{"price.totalNumeric", "price.currency"}},
			{Title: "Units & Media", Fields: []string{"unitTypes", "gallery"}},
			{Title: "Review", Review: true},
		},
		Meaningful: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 3},
			{Path: "developer"},
			{Path: "location"},
		}},
		AutoSave: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 3},
			{Path: "developer"},
		}},
		Prices: []formflow.DerivedPrice{{
			NumericPath:     "price.totalNumeric",
			DisplayPath:     "price.total",
			CurrencyPath:    "price.currency",
			DefaultCurrency: "AED",
		}},
	}
}
