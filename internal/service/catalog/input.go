package catalog

import (
	"regexp"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CreateInput holds parameters for creating a catalog document.
type CreateInput struct {
	Collection domain.Collection
	Slug       string
	Title      string
	Status     domain.DocumentStatus
	Data       map[string]any
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Collection.IsValid() {
		errs = append(errs, domain.FieldError{Field: "collection", Message: "unknown collection"})
	}
	errs = append(errs, validateSlug(i.Slug)...)
	errs = append(errs, validateTitle(i.Title)...)
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds parameters for updating a catalog document.
type UpdateInput struct {
	Collection domain.Collection
	ID         string
	Slug       string
	Title      string
	Status     domain.DocumentStatus
	Data       map[string]any
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Collection.IsValid() {
		errs = append(errs, domain.FieldError{Field: "collection", Message: "unknown collection"})
	}
	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateSlug(i.Slug)...)
	errs = append(errs, validateTitle(i.Title)...)
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds parameters for listing catalog documents.
type ListInput struct {
	Collection domain.Collection
	Search     string
	Status     domain.DocumentStatus
	Limit      int
	Offset     int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.Collection.IsValid() {
		errs = append(errs, domain.FieldError{Field: "collection", Message: "unknown collection"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateSlug(slug string) []domain.FieldError {
	if slug == "" {
		return []domain.FieldError{{Field: "slug", Message: "required"}}
	}
	if len(slug) > 160 {
		return []domain.FieldError{{Field: "slug", Message: "too long"}}
	}
	if !slugPattern.MatchString(slug) {
		return []domain.FieldError{{Field: "slug", Message: "must contain only lowercase letters, digits and hyphens"}}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(title) > 200 {
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}
