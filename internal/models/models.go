package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a global user account
type User struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	IsGlobalAdmin bool   `gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relationships
	OwnedGardens []Garden     `gorm:"foreignKey:OwnerID"`
	GardenUsers  []GardenUser `gorm:"foreignKey:UserID"`
}

// Garden represents one hosted garden site
type Garden struct {
	ID           uint    `gorm:"primaryKey"`
	Subdomain    string  `gorm:"uniqueIndex"`
	CustomDomain *string `gorm:"uniqueIndex"`
	OwnerID      uint    `gorm:"not null"`
	Title        string
	Tagline      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	// Relationships
	Owner       User         `gorm:"foreignKey:OwnerID"`
	GardenUsers []GardenUser `gorm:"foreignKey:GardenID"`
	Themes      []Theme      `gorm:"foreignKey:GardenID"`
}

// GardenUser represents the many-to-many relationship between users and gardens
type GardenUser struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null"`
	GardenID  uint   `gorm:"not null"`
	Role      string `gorm:"not null"` // "owner", "admin", "editor"
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID"`
	Garden Garden `gorm:"foreignKey:GardenID"`
}

// Theme represents a saved theme for a garden. Document holds the
// mode-split color document as JSON; metadata lives on the record.
type Theme struct {
	ID          uint   `gorm:"primaryKey"`
	GardenID    uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Type        string `gorm:"default:garden"`
	Kind        string `gorm:"default:custom"`
	ActiveMode  string `gorm:"default:light"` // "light" or "dark"
	Document    string `gorm:"type:text"`
	Active      bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relationships
	Garden Garden `gorm:"foreignKey:GardenID"`
}

// TableName overrides for consistent naming
func (User) TableName() string {
	return "users"
}

func (Garden) TableName() string {
	return "gardens"
}

func (GardenUser) TableName() string {
	return "garden_users"
}

func (Theme) TableName() string {
	return "themes"
}
