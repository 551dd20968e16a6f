package catalog

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/formflow"
)

// Submitter adapts the catalog service to the form engine's submit boundary.
// One submitter serves one session: it creates a new document in add mode and
// updates the bound document in edit mode.
type Submitter struct {
	svc        *Service
	collection domain.Collection
	existingID *uuid.UUID
}

// NewSubmitter returns a submitter that creates documents in the collection.
func (s *Service) NewSubmitter(collection domain.Collection) *Submitter {
	return &Submitter{svc: s, collection: collection}
}

// NewUpdateSubmitter returns a submitter that updates the given document.
func (s *Service) NewUpdateSubmitter(collection domain.Collection, id uuid.UUID) *Submitter {
	return &Submitter{svc: s, collection: collection, existingID: &id}
}

// SubmitterFor returns the submitter boundary for one session: create mode
// when existingID is nil, update mode otherwise.
func (s *Service) SubmitterFor(collection domain.Collection, existingID *uuid.UUID) formflow.Submitter {
	if existingID != nil {
		return s.NewUpdateSubmitter(collection, *existingID)
	}
	return s.NewSubmitter(collection)
}

var _ formflow.Submitter = (*Submitter)(nil)

// Submit persists the form document. The document's name becomes the title
// and, for new documents, the slug. Validation failures come back as
// *domain.ValidationError so the session can merge them into field errors.
func (sub *Submitter) Submit(ctx context.Context, doc formflow.Document) error {
	name, _ := doc.Get("name")
	title, _ := name.(string)

	data := map[string]any(doc)

	if sub.existingID != nil {
		existing, err := sub.svc.Get(ctx, sub.collection, *sub.existingID)
		if err != nil {
			return err
		}
		_, err = sub.svc.Update(ctx, UpdateInput{
			Collection: sub.collection,
			ID:         existing.ID.String(),
			Slug:       existing.Slug,
			Title:      title,
			Status:     existing.Status,
			Data:       data,
		})
		return err
	}

	_, err := sub.svc.Create(ctx, CreateInput{
		Collection: sub.collection,
		Slug:       Slugify(title),
		Title:      title,
		Data:       data,
	})
	return err
}

// Slugify converts a display name into a URL slug: lowercase, hyphens
// between word runs, everything else dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
