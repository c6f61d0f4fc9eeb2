package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	Gender      string    `json:"gender" validate:"required,oneof=M F O"`
	Telephone   string    `json:"telephone" validate:"omitempty,max=10"`
	Email       string    `json:"email" validate:"required,email"`
	SpecialtyID uuid.UUID `json:"specialty_id" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateDoctorRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	Gender      string    `json:"gender" validate:"required,oneof=M F O"`
	Telephone   string    `json:"telephone" validate:"omitempty,max=10"`
	Email       string    `json:"email" validate:"required,email"`
	SpecialtyID uuid.UUID `json:"specialty_id" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	LastName    string             `json:"last_name"`
	Gender      string             `json:"gender"`
	Telephone   string             `json:"telephone,omitempty"`
	Email       string             `json:"email"`
	SpecialtyID uuid.UUID          `json:"specialty_id"`
	Specialty   *SpecialtyResponse `json:"specialty,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
