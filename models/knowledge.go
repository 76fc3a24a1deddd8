package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Knowledge base entities (read-only storefront content)
// ═══════════════════════════════════════════════════════════

// Strain is a knowledge-base entry for a named cultivar.
type Strain struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"not null;index"`
	Type        string         `json:"type" gorm:"not null;check:type IN ('Indica','Sativa','Hybrid','Indica leaning','Sativa leaning')"`
	Description string         `json:"description" gorm:"not null"`
	Effects     pq.StringArray `json:"effects" gorm:"type:text[];not null;default:'{}'"`
	Terpenes    pq.StringArray `json:"terpenes" gorm:"type:text[];not null;default:'{}'"`
	THCRange    string         `json:"thc_range"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Strain) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Strain) TableName() string {
	return "strains"
}

// Terpene is a knowledge-base entry for an aroma compound.
type Terpene struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"not null"`
	Aroma       string         `json:"aroma"`
	Description string         `json:"description" gorm:"not null"`
	AlsoFoundIn pq.StringArray `json:"also_found_in" gorm:"type:text[];not null;default:'{}'"`
	Effects     pq.StringArray `json:"effects" gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (t *Terpene) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Terpene) TableName() string {
	return "terpenes"
}

// Article is a long-form resource piece.
type Article struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Excerpt     string         `json:"excerpt" gorm:"not null"`
	Body        string         `json:"body" gorm:"not null"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[];not null;default:'{}';index:,type:gin"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Article) TableName() string {
	return "articles"
}

// ArticleSummary is the list-view projection (no body).
type ArticleSummary struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at"`
}
