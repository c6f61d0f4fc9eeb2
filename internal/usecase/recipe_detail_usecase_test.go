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

func newRecipeDetailFixture() (uuid.UUID, uuid.UUID, *MockPrescriptionRepository, *MockMedicineRepository) {
	prescriptionID := uuid.New()
	medicineID := uuid.New()

	prescriptionRepo := &MockPrescriptionRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
			return &entity.Prescription{ID: id}, nil
		},
	}
	medicineRepo := &MockMedicineRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
			return &entity.Medicine{ID: id, Name: "Amoxicillin"}, nil
		},
	}

	return prescriptionID, medicineID, prescriptionRepo, medicineRepo
}

func TestRecipeDetailUsecase_Create_Success(t *testing.T) {
	prescriptionID, medicineID, prescriptionRepo, medicineRepo := newRecipeDetailFixture()

	recipeDetailRepo := &MockRecipeDetailRepository{
		CreateFunc: func(ctx context.Context, detail *entity.RecipeDetail) error {
			detail.ID = uuid.New()
			return nil
		},
	}

	uc := NewRecipeDetailUsecase(newTestLogger(), recipeDetailRepo, prescriptionRepo, medicineRepo)

	resp, err := uc.Create(context.Background(), &dto.CreateRecipeDetailRequest{
		Amount:         3,
		Indications:    "One capsule every 8 hours",
		PrescriptionID: prescriptionID,
		MedicineID:     medicineID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, medicineID, resp.MedicineID)
	assert.NotNil(t, resp.Medicine)
	assert.Equal(t, "Amoxicillin", resp.Medicine.Name)
}

func TestRecipeDetailUsecase_Create_DuplicateLine(t *testing.T) {
	prescriptionID, medicineID, prescriptionRepo, medicineRepo := newRecipeDetailFixture()

	recipeDetailRepo := &MockRecipeDetailRepository{
		ExistsForPrescriptionAndMedicineFunc: func(ctx context.Context, pid, mid, excludeID uuid.UUID) (bool, error) {
			assert.Equal(t, prescriptionID, pid)
			assert.Equal(t, medicineID, mid)
			assert.Equal(t, uuid.Nil, excludeID)
			return true, nil
		},
	}

	uc := NewRecipeDetailUsecase(newTestLogger(), recipeDetailRepo, prescriptionRepo, medicineRepo)

	resp, err := uc.Create(context.Background(), &dto.CreateRecipeDetailRequest{
		Amount:         3,
		Indications:    "One capsule every 8 hours",
		PrescriptionID: prescriptionID,
		MedicineID:     medicineID,
	})

	assert.ErrorIs(t, err, ErrDuplicateRecipeLine)
	assert.Nil(t, resp)
}

func TestRecipeDetailUsecase_Create_TranslatesUniqueViolation(t *testing.T) {
	prescriptionID, medicineID, prescriptionRepo, medicineRepo := newRecipeDetailFixture()

	recipeDetailRepo := &MockRecipeDetailRepository{
		CreateFunc: func(ctx context.Context, detail *entity.RecipeDetail) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_recipe_details_prescription_medicine"}
		},
	}

	uc := NewRecipeDetailUsecase(newTestLogger(), recipeDetailRepo, prescriptionRepo, medicineRepo)

	_, err := uc.Create(context.Background(), &dto.CreateRecipeDetailRequest{
		Amount:         3,
		Indications:    "One capsule every 8 hours",
		PrescriptionID: prescriptionID,
		MedicineID:     medicineID,
	})

	assert.ErrorIs(t, err, ErrDuplicateRecipeLine)
}

func TestRecipeDetailUsecase_Update_ExcludesOwnRow(t *testing.T) {
	prescriptionID, medicineID, prescriptionRepo, medicineRepo := newRecipeDetailFixture()
	detailID := uuid.New()

	recipeDetailRepo := &MockRecipeDetailRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.RecipeDetail, error) {
			return &entity.RecipeDetail{ID: id, PrescriptionID: prescriptionID, MedicineID: medicineID}, nil
		},
		ExistsForPrescriptionAndMedicineFunc: func(ctx context.Context, pid, mid, excludeID uuid.UUID) (bool, error) {
			assert.Equal(t, detailID, excludeID)
			return false, nil
		},
	}

	uc := NewRecipeDetailUsecase(newTestLogger(), recipeDetailRepo, prescriptionRepo, medicineRepo)

	resp, err := uc.Update(context.Background(), detailID, &dto.UpdateRecipeDetailRequest{
		Amount:         5,
		Indications:    "One capsule every 12 hours",
		PrescriptionID: prescriptionID,
		MedicineID:     medicineID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 5, resp.Amount)
}

func TestRecipeDetailUsecase_Create_PrescriptionNotFound(t *testing.T) {
	_, medicineID, _, medicineRepo := newRecipeDetailFixture()

	prescriptionRepo := &MockPrescriptionRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
			return nil, nil
		},
	}

	uc := NewRecipeDetailUsecase(newTestLogger(), &MockRecipeDetailRepository{}, prescriptionRepo, medicineRepo)

	_, err := uc.Create(context.Background(), &dto.CreateRecipeDetailRequest{
		Amount:         3,
		Indications:    "One capsule every 8 hours",
		PrescriptionID: uuid.New(),
		MedicineID:     medicineID,
	})

	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}
