package models

import "time"

// CitizenProfile holds a citizen's self-reported socio-economic attributes
// (one-to-one with User). The two risk scores are derived: they are recomputed
// on every profile write and must never be edited directly.
type CitizenProfile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	UserID    uint       `gorm:"uniqueIndex;not null"` // one-to-one relation
	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Age              int     `gorm:"not null"`
	Gender           string  `gorm:"size:50;not null"` // Male / Female / Other
	Income           float64 `gorm:"not null"`         // annual, rupees
	Education        string  `gorm:"size:100"`
	Occupation       string  `gorm:"size:100"`
	EmploymentStatus string  `gorm:"size:100;default:Unemployed"`
	MaritalStatus    string  `gorm:"size:50"`
	LocationState    string  `gorm:"size:100"`
	LocationDistrict string  `gorm:"size:100"`
	AreaOfResidence  string  `gorm:"size:50;default:Urban"` // Rural / Urban

	SocialCategory    string `gorm:"size:100"` // General / OBC / SC / ST (optional)
	MinorityStatus    bool   `gorm:"default:false"`
	DisabilityStatus  bool   `gorm:"default:false"`
	FamilySize        int    `gorm:"default:1"`
	IsStudent         bool   `gorm:"default:false"`
	SingleParentChild bool   `gorm:"default:false"`

	// Supporting document file names (uploaded via /citizen/documents).
	MarriageCert  string `gorm:"size:255"`
	DivorceCert   string `gorm:"size:255"`
	WidowCert     string `gorm:"size:255"`
	CommunityCert string `gorm:"size:255"`
	AadharCard    string `gorm:"size:255"`
	IncomeCert    string `gorm:"size:255"`

	// Derived need scores in [0.05, 0.99], written by the engine.
	RiskScoreHealth    float64 `gorm:"default:0"`
	RiskScoreFinancial float64 `gorm:"default:0"`

	Documents []Document `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
