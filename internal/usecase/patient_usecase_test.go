package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDocumentNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain digits", "1234567890", "1234567890", false},
		{"dots and comma", "123.456.789,0", "1234567890", false},
		{"surrounding whitespace", "  1234567890  ", "1234567890", false},
		{"internal spaces", "123 456 7890", "1234567890", false},
		{"too short", "12345", "", true},
		{"too long", "12345678901", "", true},
		{"letters", "12345abcde", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeDocumentNumber(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocumentNumber)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func validCreatePatientRequest() *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		Name:           "Maria",
		LastName:       "Lopez",
		Gender:         entity.GenderFemale,
		DocumentType:   string(entity.DocumentTypeCitizenID),
		DocumentNumber: "123.456.789,0",
		BirthDate:      "1990-05-20",
	}
}

func TestPatientUsecase_Create_NormalizesDocumentNumber(t *testing.T) {
	var saved *entity.Patient
	patientRepo := &MockPatientRepository{
		CreateFunc: func(ctx context.Context, patient *entity.Patient) error {
			patient.ID = uuid.New()
			saved = patient
			return nil
		},
	}

	uc := NewPatientUsecase(newTestLogger(), patientRepo)

	resp, err := uc.Create(context.Background(), validCreatePatientRequest())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotNil(t, saved)
	assert.Equal(t, "1234567890", saved.DocumentNumber)
	assert.Equal(t, "1234567890", resp.DocumentNumber)
	assert.Equal(t, string(entity.RecordStatusActive), resp.Status)
}

func TestPatientUsecase_Create_RejectsInvalidDocumentNumber(t *testing.T) {
	uc := NewPatientUsecase(newTestLogger(), &MockPatientRepository{})

	req := validCreatePatientRequest()
	req.DocumentNumber = "12-34"

	resp, err := uc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDocumentNumber)
	assert.Nil(t, resp)
}

func TestPatientUsecase_Create_RejectsInvalidBirthDate(t *testing.T) {
	uc := NewPatientUsecase(newTestLogger(), &MockPatientRepository{})

	req := validCreatePatientRequest()
	req.BirthDate = "20/05/1990"

	resp, err := uc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidBirthDateFormat)
	assert.Nil(t, resp)
}

func TestPatientUsecase_Create_DuplicateDocumentNumber(t *testing.T) {
	patientRepo := &MockPatientRepository{
		CreateFunc: func(ctx context.Context, patient *entity.Patient) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_patients_document_number"}
		},
	}

	uc := NewPatientUsecase(newTestLogger(), patientRepo)

	resp, err := uc.Create(context.Background(), validCreatePatientRequest())

	assert.ErrorIs(t, err, ErrDocumentNumberExists)
	assert.Nil(t, resp)
}

func TestPatientUsecase_GetByID_NotFound(t *testing.T) {
	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return nil, nil
		},
	}

	uc := NewPatientUsecase(newTestLogger(), patientRepo)

	resp, err := uc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Nil(t, resp)
}

func TestPatientUsecase_Update_NormalizesDocumentNumber(t *testing.T) {
	patientID := uuid.New()

	var saved *entity.Patient
	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, DocumentNumber: "9999999999", Status: entity.RecordStatusActive}, nil
		},
		UpdateFunc: func(ctx context.Context, patient *entity.Patient) error {
			saved = patient
			return nil
		},
	}

	uc := NewPatientUsecase(newTestLogger(), patientRepo)

	resp, err := uc.Update(context.Background(), patientID, &dto.UpdatePatientRequest{
		Name:           "Maria",
		LastName:       "Lopez",
		Gender:         entity.GenderFemale,
		DocumentType:   string(entity.DocumentTypeCitizenID),
		DocumentNumber: "123 456 78 90",
		BirthDate:      "1990-05-20",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "1234567890", saved.DocumentNumber)
}
