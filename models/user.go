package models

import (
	"time"
)

// User is a citizen (or admin/policymaker) account identified by email.
type User struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`
	FullName       string          `gorm:"size:255;not null"`
	Email          string          `gorm:"size:255;not null;uniqueIndex"`
	Phone          string          `gorm:"size:20"`
	HashedPassword []byte          `gorm:"not null"`
	RoleID         *uint           `gorm:"index"`
	Role           Role            `gorm:"foreignKey:RoleID;references:ID"`
	Profile        *CitizenProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
