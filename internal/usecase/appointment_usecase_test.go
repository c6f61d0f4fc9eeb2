package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func newAppointmentFixture() (uuid.UUID, uuid.UUID, *MockPatientRepository, *MockDoctorRepository) {
	patientID := uuid.New()
	doctorID := uuid.New()

	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id}, nil
		},
	}
	doctorRepo := &MockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{ID: id}, nil
		},
	}

	return patientID, doctorID, patientRepo, doctorRepo
}

func newAppointmentUsecaseForTest(appointmentRepo *MockAppointmentRepository, patientRepo *MockPatientRepository, doctorRepo *MockDoctorRepository) AppointmentUsecase {
	auditService := service.NewAuditService(newTestLogger(), &MockAuditLogRepository{})
	return NewAppointmentUsecase(newTestLogger(), appointmentRepo, patientRepo, doctorRepo, auditService)
}

func TestAppointmentUsecase_Create_Success(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	created := &entity.Appointment{}
	appointmentRepo := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
			appointment.ID = uuid.New()
			*created = *appointment
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return created, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, patientID, resp.PatientID)
	assert.Equal(t, doctorID, resp.DoctorID)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
}

func TestAppointmentUsecase_Create_InvalidDate(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	uc := newAppointmentUsecaseForTest(&MockAppointmentRepository{}, patientRepo, doctorRepo)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		AppointmentDate: "01/09/2026 10:30",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	})

	assert.ErrorIs(t, err, ErrInvalidAppointmentDate)
	assert.Nil(t, resp)
}

func TestAppointmentUsecase_Create_PatientDoubleBooked(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	doctorChecked := false
	appointmentRepo := &MockAppointmentRepository{
		ExistsForPatientAtFunc: func(ctx context.Context, pid uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			assert.Equal(t, patientID, pid)
			assert.Equal(t, uuid.Nil, excludeID)
			return true, nil
		},
		ExistsForDoctorAtFunc: func(ctx context.Context, did uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			doctorChecked = true
			return false, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	})

	assert.ErrorIs(t, err, ErrPatientDoubleBooked)
	assert.Nil(t, resp)
	assert.False(t, doctorChecked, "doctor check must not run once the patient conflict fires")
}

func TestAppointmentUsecase_Create_DoctorDoubleBooked(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	appointmentRepo := &MockAppointmentRepository{
		ExistsForDoctorAtFunc: func(ctx context.Context, did uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			assert.Equal(t, doctorID, did)
			return true, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	})

	assert.ErrorIs(t, err, ErrDoctorDoubleBooked)
	assert.Nil(t, resp)
}

func TestAppointmentUsecase_Create_BothConflicts_PatientWins(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	appointmentRepo := &MockAppointmentRepository{
		ExistsForPatientAtFunc: func(ctx context.Context, pid uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			return true, nil
		},
		ExistsForDoctorAtFunc: func(ctx context.Context, did uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	})

	assert.ErrorIs(t, err, ErrPatientDoubleBooked)
}

func TestAppointmentUsecase_Create_TranslatesUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"patient constraint", "uq_appointments_patient_time", ErrPatientDoubleBooked},
		{"doctor constraint", "uq_appointments_doctor_time", ErrDoctorDoubleBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

			appointmentRepo := &MockAppointmentRepository{
				CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
					return &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}
				},
			}

			uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

			_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
				AppointmentDate: "2026-09-01T10:30:00Z",
				Reason:          "Routine check",
				PatientID:       patientID,
				DoctorID:        doctorID,
			})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAppointmentUsecase_Update_ExcludesOwnRow(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()
	appointmentID := uuid.New()

	existing := &entity.Appointment{
		ID:              appointmentID,
		AppointmentDate: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
		Status:          entity.AppointmentStatusPending,
	}

	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return existing, nil
		},
		ExistsForPatientAtFunc: func(ctx context.Context, pid uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			assert.Equal(t, appointmentID, excludeID)
			return false, nil
		},
		ExistsForDoctorAtFunc: func(ctx context.Context, did uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
			assert.Equal(t, appointmentID, excludeID)
			return false, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	resp, err := uc.Update(context.Background(), appointmentID, &dto.UpdateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Updated reason",
		PatientID:       patientID,
		DoctorID:        doctorID,
		Status:          string(entity.AppointmentStatusAttended),
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Updated reason", resp.Reason)
	assert.Equal(t, string(entity.AppointmentStatusAttended), resp.Status)
}

func TestAppointmentUsecase_Update_NotFound(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return nil, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	_, err := uc.Update(context.Background(), uuid.New(), &dto.UpdateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentUsecase_Create_PatientNotFound(t *testing.T) {
	_, doctorID, _, doctorRepo := newAppointmentFixture()

	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return nil, nil
		},
	}

	uc := newAppointmentUsecaseForTest(&MockAppointmentRepository{}, patientRepo, doctorRepo)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       uuid.New(),
		DoctorID:        doctorID,
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

// Two requests race past the pre-check for the same patient slot. The mock
// behaves like the unique index: the first insert wins, the second gets a
// 23505 on the patient constraint. Exactly one request must succeed and the
// loser must see the same conflict error the pre-check would have produced.
func TestAppointmentUsecase_Create_RaceLoserGetsConflict(t *testing.T) {
	patientID, doctorID, patientRepo, doctorRepo := newAppointmentFixture()

	var mu sync.Mutex
	inserted := false
	appointmentRepo := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
			mu.Lock()
			defer mu.Unlock()
			if inserted {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_patient_time"}
			}
			inserted = true
			appointment.ID = uuid.New()
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, PatientID: patientID, DoctorID: doctorID}, nil
		},
	}

	uc := newAppointmentUsecaseForTest(appointmentRepo, patientRepo, doctorRepo)

	req := &dto.CreateAppointmentRequest{
		AppointmentDate: "2026-09-01T10:30:00Z",
		Reason:          "Routine check",
		PatientID:       patientID,
		DoctorID:        doctorID,
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Create(context.Background(), req)
		}(i)
	}
	wg.Wait()

	successes := 0
	conflicts := 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case err == ErrPatientDoubleBooked:
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one writer must win the race")
	assert.Equal(t, 1, conflicts, "the loser must see the patient conflict error")
}
