package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type SpecialtyRepository interface {
	Create(ctx context.Context, specialty *entity.Specialty) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Specialty, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialty, error)
	Update(ctx context.Context, specialty *entity.Specialty) error
	Delete(ctx context.Context, id uuid.UUID) error
}
