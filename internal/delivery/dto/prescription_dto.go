package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
}

type UpdatePrescriptionRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID               uuid.UUID              `json:"id"`
	PrescriptionDate string                 `json:"prescription_date"`
	AppointmentID    uuid.UUID              `json:"appointment_id"`
	Appointment      *AppointmentResponse   `json:"appointment,omitempty"`
	RecipeDetails    []RecipeDetailResponse `json:"recipe_details"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}
