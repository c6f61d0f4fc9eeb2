package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type RecipeDetailRepository interface {
	Create(ctx context.Context, detail *entity.RecipeDetail) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.RecipeDetail, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipeDetail, error)
	Update(ctx context.Context, detail *entity.RecipeDetail) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Duplicate-line lookup; excludeID skips the detail's own row on updates.
	ExistsForPrescriptionAndMedicine(ctx context.Context, prescriptionID, medicineID, excludeID uuid.UUID) (bool, error)
}
