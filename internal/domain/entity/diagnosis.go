package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis represents a diagnosis note recorded during an appointment
type Diagnosis struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"appointment,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
