package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Presentation string `json:"presentation" validate:"required,max=100"`
	Dose         string `json:"dose" validate:"required,max=50"`
}

type UpdateMedicineRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Presentation string `json:"presentation" validate:"required,max=100"`
	Dose         string `json:"dose" validate:"required,max=50"`
}

// Response DTOs

type MedicineResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Presentation string    `json:"presentation"`
	Dose         string    `json:"dose"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
