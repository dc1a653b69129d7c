package models

import "time"

// Recommendation links a profile to a scheme it should consider, with a
// confidence and a short human-readable reason. At most one row exists per
// (profile, scheme); the whole set for a profile is replaced atomically on
// every profile update.
type Recommendation struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ProfileID  uint    `gorm:"index;not null;uniqueIndex:idx_profile_scheme"`
	SchemeID   uint    `gorm:"not null;uniqueIndex:idx_profile_scheme"`
	Scheme     Scheme  `gorm:"foreignKey:SchemeID;references:ID"`
	Confidence float64 `gorm:"not null"`
	Reason     string  `gorm:"type:text"`
}
