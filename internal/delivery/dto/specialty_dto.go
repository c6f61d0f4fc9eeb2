package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
