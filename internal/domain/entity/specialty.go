package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialty represents a medical specialty assigned to doctors
type Specialty struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:SpecialtyID;constraint:OnDelete:CASCADE" json:"doctors,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}
