package schema

import (
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// Developer is a real-estate developer profile. The smallest form: no
// pricing, no derived fields.
func Developer() formflow.Schema {
	return formflow.Schema{
		Name: "developers",
		Template: formflow.Document{
			"name":        "",
			"description": "",
			"established": nil,
			"headquarters": map[string]any{
				"city":    "",
				"country": "",
			},
			"website": "",
			"email":   "",
			"logo":    "",
			"gallery": []any{},
		},
		Rules: map[string]formflow.Rule{
			"name":                 {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(2), MaxLength: formflow.Int(120)},
			"description":          {Required: true, Type: formflow.FieldText, MinLength: formflow.Int(20), MaxLength: formflow.Int(5000)},
			"established":          {Type: formflow.FieldNumber, Min: formflow.Float(1900), Max: formflow.Float(2050)},
			"headquarters.city":    {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"headquarters.country": {Required: true, Type: formflow.FieldText, MaxLength: formflow.Int(120)},
			"website":              {Type: formflow.FieldURL},
			"email":                {Type: formflow.FieldEmail},
			"logo":                 {Type: formflow.FieldURL},
		},
		Structural: []formflow.StructuralRule{
			imageGallery("gallery"),
		},
		Steps: []formflow.Step{
			{Title: "General", Fields: []string{"name", "description", "established"}},
			{Title: "Contact", Fields: []string{"headquarters.city", "headquarters.country", "website", "email"}},
			{Title: "Media", Fields: []string{"logo", "gallery"}},
			{Title: "Review", Review: true},
		},
		Meaningful: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 2},
			{Path: "description", MinLength: 10},
		}},
		AutoSave: formflow.MeaningfulPolicy{Fields: []formflow.MeaningfulField{
			{Path: "name", MinLength: 2},
		}},
	}
}
