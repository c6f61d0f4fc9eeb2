package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a clinic doctor tied to one specialty
type Doctor struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name"`
	LastName    string       `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender      string       `gorm:"type:char(1);not null;default:'M'" json:"gender"`
	Telephone   string       `gorm:"type:varchar(10)" json:"telephone,omitempty"`
	Email       string       `gorm:"type:varchar(255);not null" json:"email"`
	SpecialtyID uuid.UUID    `gorm:"type:uuid;not null;index" json:"specialty_id"`
	Status      RecordStatus `gorm:"type:varchar(8);not null;default:'ACTIVE';index" json:"status"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty    Specialty     `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsActive checks if the doctor record is active
func (d *Doctor) IsActive() bool {
	return d.Status == RecordStatusActive
}
