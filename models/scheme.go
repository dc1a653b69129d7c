package models

import "time"

// Scheme is a government welfare program. The engine treats the catalog as a
// read-only input; rows are only ever written by seeding or the admin endpoint.
type Scheme struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SchemeName       string `gorm:"size:255;index;not null"`
	Ministry         string `gorm:"size:255"`
	Description      string `gorm:"type:text"`
	EligibilityRules string `gorm:"type:text"`
	Benefits         string `gorm:"type:text"`

	// Declared hard bounds; nil means "no constraint".
	MinAge         *int     `json:"min_age"`
	MaxAge         *int     `json:"max_age"`
	MaxIncome      *float64 `json:"max_income"`
	RequiredGender *string  `gorm:"size:50" json:"required_gender"`

	ApplyURL string `gorm:"size:500"`
	Category string `gorm:"size:100"`
}
