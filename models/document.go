package models

import "time"

// Document is a supporting certificate uploaded for a profile. For income
// certificates the OCR pipeline stores the extracted annual income so the
// declared figure can be cross-checked.
type Document struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ProfileID   uint           `gorm:"index;not null;uniqueIndex:idx_profile_doc_kind"`
	Profile     CitizenProfile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Kind        string         `gorm:"size:64;not null;uniqueIndex:idx_profile_doc_kind"` // aadhar_card, income_cert, ...
	FileName    string         `gorm:"size:255;not null"`
	StorePath   string         `gorm:"column:store_path;size:512"`
	ContentType string         `gorm:"size:128"`
	// Annual income read off an income certificate; nil when OCR found nothing.
	ExtractedIncome *int64
}
