package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription represents a recipe issued during an appointment.
// PrescriptionDate is assigned once at creation and never updated.
type Prescription struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PrescriptionDate time.Time `gorm:"type:date;not null" json:"prescription_date"`
	AppointmentID    uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment   Appointment    `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"appointment,omitempty"`
	RecipeDetails []RecipeDetail `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE" json:"recipe_details,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
