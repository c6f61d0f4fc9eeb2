package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrMedicineNotFound = errors.New("medicine not found")

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.MedicineResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// cachedMedicinePage is the Redis representation of one listing page
type cachedMedicinePage struct {
	Items []dto.MedicineResponse `json:"items"`
	Total int64                  `json:"total"`
}

type medicineUsecase struct {
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	catalogCache *service.CatalogCacheService
}

func NewMedicineUsecase(log *logrus.Logger, medicineRepo repository.MedicineRepository, catalogCache *service.CatalogCacheService) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		medicineRepo: medicineRepo,
		catalogCache: catalogCache,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{
		Name:         req.Name,
		Presentation: req.Presentation,
		Dose:         req.Dose,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx, service.CacheKeyMedicines)
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.MedicineResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%s%d:%d", service.CacheKeyMedicines, page, limit)

	var cached cachedMedicinePage
	if u.catalogCache.Get(ctx, cacheKey, &cached) {
		return cached.Items, cached.Total, nil
	}

	offset := (page - 1) * limit

	medicines, total, err := u.medicineRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, 0, err
	}

	responses := converter.MedicinesToResponses(medicines)
	u.catalogCache.Set(ctx, cacheKey, cachedMedicinePage{Items: responses, Total: total})

	return responses, total, nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	medicine.Name = req.Name
	medicine.Presentation = req.Presentation
	medicine.Dose = req.Dose

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine %s: %+v", id, err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx, service.CacheKeyMedicines)
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	if err := u.medicineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medicine %s: %+v", id, err)
		return err
	}

	u.catalogCache.Invalidate(ctx, service.CacheKeyMedicines)
	return nil
}
