package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRecipeDetailNotFound = errors.New("recipe detail not found")
	ErrDuplicateRecipeLine  = errors.New("medicine already added to this prescription")
)

type RecipeDetailUsecase interface {
	Create(ctx context.Context, req *dto.CreateRecipeDetailRequest) (*dto.RecipeDetailResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.RecipeDetailResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RecipeDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRecipeDetailRequest) (*dto.RecipeDetailResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeDetailUsecase struct {
	log              *logrus.Logger
	recipeDetailRepo repository.RecipeDetailRepository
	prescriptionRepo repository.PrescriptionRepository
	medicineRepo     repository.MedicineRepository
}

func NewRecipeDetailUsecase(
	log *logrus.Logger,
	recipeDetailRepo repository.RecipeDetailRepository,
	prescriptionRepo repository.PrescriptionRepository,
	medicineRepo repository.MedicineRepository,
) RecipeDetailUsecase {
	return &recipeDetailUsecase{
		log:              log,
		recipeDetailRepo: recipeDetailRepo,
		prescriptionRepo: prescriptionRepo,
		medicineRepo:     medicineRepo,
	}
}

// checkDuplicateLine rejects a second line for the same (prescription,
// medicine) pair. The unique index backs this check for racing writers.
func (u *recipeDetailUsecase) checkDuplicateLine(ctx context.Context, prescriptionID, medicineID, excludeID uuid.UUID) error {
	exists, err := u.recipeDetailRepo.ExistsForPrescriptionAndMedicine(ctx, prescriptionID, medicineID, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check duplicate recipe line: %+v", err)
		return err
	}
	if exists {
		return ErrDuplicateRecipeLine
	}
	return nil
}

func (u *recipeDetailUsecase) Create(ctx context.Context, req *dto.CreateRecipeDetailRequest) (*dto.RecipeDetailResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, req.PrescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", req.PrescriptionID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	medicine, err := u.medicineRepo.FindByID(ctx, req.MedicineID)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", req.MedicineID, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if err := u.checkDuplicateLine(ctx, req.PrescriptionID, req.MedicineID, uuid.Nil); err != nil {
		return nil, err
	}

	detail := &entity.RecipeDetail{
		Amount:         req.Amount,
		Indications:    req.Indications,
		PrescriptionID: req.PrescriptionID,
		MedicineID:     req.MedicineID,
	}

	if err := u.recipeDetailRepo.Create(ctx, detail); err != nil {
		if isDuplicateKeyError(err, "uq_recipe_details_prescription_medicine") {
			return nil, ErrDuplicateRecipeLine
		}
		u.log.Warnf("Failed to create recipe detail: %+v", err)
		return nil, err
	}

	detail.Medicine = *medicine
	return converter.RecipeDetailToResponse(detail), nil
}

func (u *recipeDetailUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.RecipeDetailResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	details, total, err := u.recipeDetailRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find recipe details: %+v", err)
		return nil, 0, err
	}

	return converter.RecipeDetailsToResponses(details), total, nil
}

func (u *recipeDetailUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.RecipeDetailResponse, error) {
	detail, err := u.recipeDetailRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find recipe detail %s: %+v", id, err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrRecipeDetailNotFound
	}

	return converter.RecipeDetailToResponse(detail), nil
}

func (u *recipeDetailUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRecipeDetailRequest) (*dto.RecipeDetailResponse, error) {
	detail, err := u.recipeDetailRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find recipe detail %s: %+v", id, err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrRecipeDetailNotFound
	}

	prescription, err := u.prescriptionRepo.FindByID(ctx, req.PrescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", req.PrescriptionID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	medicine, err := u.medicineRepo.FindByID(ctx, req.MedicineID)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", req.MedicineID, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if err := u.checkDuplicateLine(ctx, req.PrescriptionID, req.MedicineID, id); err != nil {
		return nil, err
	}

	detail.Amount = req.Amount
	detail.Indications = req.Indications
	detail.PrescriptionID = req.PrescriptionID
	detail.MedicineID = req.MedicineID

	if err := u.recipeDetailRepo.Update(ctx, detail); err != nil {
		if isDuplicateKeyError(err, "uq_recipe_details_prescription_medicine") {
			return nil, ErrDuplicateRecipeLine
		}
		u.log.Warnf("Failed to update recipe detail %s: %+v", id, err)
		return nil, err
	}

	detail.Medicine = *medicine
	return converter.RecipeDetailToResponse(detail), nil
}

func (u *recipeDetailUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	detail, err := u.recipeDetailRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find recipe detail %s: %+v", id, err)
		return err
	}
	if detail == nil {
		return ErrRecipeDetailNotFound
	}

	if err := u.recipeDetailRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete recipe detail %s: %+v", id, err)
		return err
	}

	return nil
}
