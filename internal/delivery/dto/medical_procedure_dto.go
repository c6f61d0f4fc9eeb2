package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalProcedureRequest struct {
	Description   string    `json:"description" validate:"required"`
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
}

type UpdateMedicalProcedureRequest struct {
	Description   string    `json:"description" validate:"required"`
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
}

// Response DTOs

type MedicalProcedureResponse struct {
	ID            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
