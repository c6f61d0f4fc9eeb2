package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDiagnosisRequest struct {
	Description   string    `json:"description" validate:"required"`
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
}

type UpdateDiagnosisRequest struct {
	Description   string    `json:"description" validate:"required"`
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
