package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: RFC3339
	Reason          string    `json:"reason" validate:"required,max=200"`
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=PENDING ATTENDED CANCELLED RESCHEDULED NO_SHOW"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: RFC3339
	Reason          string    `json:"reason" validate:"required,max=200"`
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=PENDING ATTENDED CANCELLED RESCHEDULED NO_SHOW"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	AppointmentDate time.Time        `json:"appointment_date"`
	Reason          string           `json:"reason"`
	PatientID       uuid.UUID        `json:"patient_id"`
	DoctorID        uuid.UUID        `json:"doctor_id"`
	Status          string           `json:"status"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	Doctor          *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
