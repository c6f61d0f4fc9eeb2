package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Gender         string `json:"gender" validate:"required,oneof=M F O"`
	DocumentType   string `json:"document_type" validate:"required,oneof=R.C T.I C.C C.E PAS"`
	DocumentNumber string `json:"document_number" validate:"required"`
	BirthDate      string `json:"birth_date" validate:"required"` // Format: YYYY-MM-DD
	Address        string `json:"address" validate:"omitempty,max=100"`
	Telephone      string `json:"telephone" validate:"omitempty,max=10"`
	Status         string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdatePatientRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Gender         string `json:"gender" validate:"required,oneof=M F O"`
	DocumentType   string `json:"document_type" validate:"required,oneof=R.C T.I C.C C.E PAS"`
	DocumentNumber string `json:"document_number" validate:"required"`
	BirthDate      string `json:"birth_date" validate:"required"` // Format: YYYY-MM-DD
	Address        string `json:"address" validate:"omitempty,max=100"`
	Telephone      string `json:"telephone" validate:"omitempty,max=10"`
	Status         string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	LastName       string    `json:"last_name"`
	Gender         string    `json:"gender"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	BirthDate      string    `json:"birth_date"`
	Address        string    `json:"address,omitempty"`
	Telephone      string    `json:"telephone,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
