package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalProcedure represents a procedure performed during an appointment
type MedicalProcedure struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"appointment,omitempty"`
}

func (MedicalProcedure) TableName() string {
	return "medical_procedures"
}
