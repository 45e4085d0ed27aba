package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a coaching client whose record feeds the planning engine. The
// record is ordinary data entry and may be partial; the engine normalizes
// it per invocation.
type Client struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExternalID string `gorm:"size:36;uniqueIndex" json:"external_id"`
	Name       string `gorm:"size:255" json:"name"`

	Gender         string     `gorm:"size:10" json:"gender"` // male or female
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	HeightCM       *float64   `json:"height_cm,omitempty"`
	WeightKG       *float64   `json:"weight_kg,omitempty"`
	TargetWeightKG *float64   `json:"target_weight_kg,omitempty"`
	ActivityLevel  string     `gorm:"size:20" json:"activity_level"`

	// Free-text tags, comma separated. Matched by substring in the rule
	// engine, so spelling variants are tolerated.
	Conditions   string `gorm:"type:text" json:"conditions"`
	Restrictions string `gorm:"type:text" json:"restrictions"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
