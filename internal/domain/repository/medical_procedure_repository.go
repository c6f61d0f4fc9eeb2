package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicalProcedureRepository interface {
	Create(ctx context.Context, procedure *entity.MedicalProcedure) error
	// FindAll optionally filters by appointment; pass nil for no filter.
	FindAll(ctx context.Context, appointmentID *uuid.UUID, limit, offset int) ([]entity.MedicalProcedure, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalProcedure, error)
	Update(ctx context.Context, procedure *entity.MedicalProcedure) error
	Delete(ctx context.Context, id uuid.UUID) error
}
