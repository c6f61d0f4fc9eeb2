package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, diagnosis *entity.Diagnosis) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Diagnosis, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Diagnosis, error)
	Update(ctx context.Context, diagnosis *entity.Diagnosis) error
	Delete(ctx context.Context, id uuid.UUID) error
}
