package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

var imageURLPattern = regexp.MustCompile(`(?i)^https?://\S+\.(jpe?g|png|webp|avif)(\?\S*)?$`)

// requireNonEmptyList reports an issue at path when the array there is
// missing or empty.
func requireNonEmptyList(path, message string) formflow.StructuralRule {
	return func(doc formflow.Document) []formflow.Issue {
		value, ok := doc.Get(path)
		if !ok {
			return []formflow.Issue{{Path: path, Message: message}}
		}
		list, isList := value.([]any)
		if !isList || len(list) == 0 {
			return []formflow.Issue{{Path: path, Message: message}}
		}
		return nil
	}
}

// imageGallery checks every entry of the array at path against the allowed
// image URL pattern. Empty slots and non-strings are reported too.
func imageGallery(path string) formflow.StructuralRule {
	return func(doc formflow.Document) []formflow.Issue {
		value, ok := doc.Get(path)
		if !ok {
			return nil
		}
		list, isList := value.([]any)
		if !isList {
			return nil
		}
		var issues []formflow.Issue
		for i, entry := range list {
			s, isStr := entry.(string)
			if !isStr || !imageURLPattern.MatchString(strings.TrimSpace(s)) {
				issues = append(issues, formflow.Issue{
					Path:    fmt.Sprintf("%s.%d", path, i),
					Message: "must be an image URL (jpg, jpeg, png, webp or avif)",
				})
			}
		}
		return issues
	}
}

// namedCategories checks that every category record in the array at path has
// a non-empty name and at least one item.
func namedCategories(path string) formflow.StructuralRule {
	return func(doc formflow.Document) []formflow.Issue {
		value, ok := doc.Get(path)
		if !ok {
			return nil
		}
		list, isList := value.([]any)
		if !isList {
			return nil
		}
		var issues []formflow.Issue
		for i, entry := range list {
			cat, isMap := entry.(map[string]any)
			if !isMap {
				issues = append(issues, formflow.Issue{
					Path:    fmt.Sprintf("%s.%d", path, i),
					Message: "must be a category with a name and items",
				})
				continue
			}
			if name, _ := cat["name"].(string); strings.TrimSpace(name) == "" {
				issues = append(issues, formflow.Issue{
					Path:    fmt.Sprintf("%s.%d.name", path, i),
					Message: "category name is required",
				})
			}
			items, _ := cat["items"].([]any)
			if len(items) == 0 {
				issues = append(issues, formflow.Issue{
					Path:    fmt.Sprintf("%s.%d.items", path, i),
					Message: "category needs at least one item",
				})
			}
		}
		return issues
	}
}
