package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRecipeDetailRequest struct {
	Amount         int       `json:"amount" validate:"required,min=1"`
	Indications    string    `json:"indications" validate:"required"`
	PrescriptionID uuid.UUID `json:"prescription_id" validate:"required"`
	MedicineID     uuid.UUID `json:"medicine_id" validate:"required"`
}

type UpdateRecipeDetailRequest struct {
	Amount         int       `json:"amount" validate:"required,min=1"`
	Indications    string    `json:"indications" validate:"required"`
	PrescriptionID uuid.UUID `json:"prescription_id" validate:"required"`
	MedicineID     uuid.UUID `json:"medicine_id" validate:"required"`
}

// Response DTOs

type RecipeDetailResponse struct {
	ID             uuid.UUID         `json:"id"`
	Amount         int               `json:"amount"`
	Indications    string            `json:"indications"`
	PrescriptionID uuid.UUID         `json:"prescription_id"`
	MedicineID     uuid.UUID         `json:"medicine_id"`
	Medicine       *MedicineResponse `json:"medicine,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
