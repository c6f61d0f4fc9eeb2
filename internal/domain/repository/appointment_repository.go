package repository

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Appointment, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Conflict lookups for the double-booking check. excludeID skips the
	// candidate's own row on updates; pass uuid.Nil on creates.
	ExistsForPatientAt(ctx context.Context, patientID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error)
	ExistsForDoctorAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error)
}
