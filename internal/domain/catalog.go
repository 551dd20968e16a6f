package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection identifies one catalog entity type. Each collection is stored
// in its own table as denormalized JSONB documents.
type Collection string

const (
	CollectionHotels     Collection = "hotels"
	CollectionProperties Collection = "properties"
	CollectionDevelopers Collection = "developers"
	CollectionProjects   Collection = "projects"
	CollectionBuildings  Collection = "buildings"
)

func (c Collection) String() string { return string(c) }

func (c Collection) IsValid() bool {
	switch c {
	case CollectionHotels, CollectionProperties, CollectionDevelopers,
		CollectionProjects, CollectionBuildings:
		return true
	}
	return false
}

// Collections lists every known collection in display order.
func Collections() []Collection {
	return []Collection{
		CollectionHotels,
		CollectionProperties,
		CollectionDevelopers,
		CollectionProjects,
		CollectionBuildings,
	}
}

// DocumentStatus is the publication state of a catalog document.
type DocumentStatus string

const (
	StatusActive   DocumentStatus = "ACTIVE"
	StatusInactive DocumentStatus = "INACTIVE"
	StatusArchived DocumentStatus = "ARCHIVED"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return true
	}
	return false
}

// CatalogDocument is one persisted entity (hotel, property, developer,
// project or building). Data holds the full denormalized form document as
// submitted; top-level columns exist only for listing, filtering and
// uniqueness.
type CatalogDocument struct {
	ID         uuid.UUID
	Collection Collection
	Slug       string
	Title      string
	Status     DocumentStatus
	Data       map[string]any
	CreatedBy  uuid.UUID
	UpdatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
