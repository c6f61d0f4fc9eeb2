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

var ErrSpecialtyNotFound = errors.New("specialty not found")

type SpecialtyUsecase interface {
	Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.SpecialtyResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// cachedSpecialtyPage is the Redis representation of one listing page
type cachedSpecialtyPage struct {
	Items []dto.SpecialtyResponse `json:"items"`
	Total int64                   `json:"total"`
}

type specialtyUsecase struct {
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	catalogCache  *service.CatalogCacheService
}

func NewSpecialtyUsecase(log *logrus.Logger, specialtyRepo repository.SpecialtyRepository, catalogCache *service.CatalogCacheService) SpecialtyUsecase {
	return &specialtyUsecase{
		log:           log,
		specialtyRepo: specialtyRepo,
		catalogCache:  catalogCache,
	}
}

func (u *specialtyUsecase) Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty := &entity.Specialty{
		Name: req.Name,
	}

	if err := u.specialtyRepo.Create(ctx, specialty); err != nil {
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx, service.CacheKeySpecialties)
	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.SpecialtyResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%s%d:%d", service.CacheKeySpecialties, page, limit)

	var cached cachedSpecialtyPage
	if u.catalogCache.Get(ctx, cacheKey, &cached) {
		return cached.Items, cached.Total, nil
	}

	offset := (page - 1) * limit

	specialties, total, err := u.specialtyRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, 0, err
	}

	responses := converter.SpecialtiesToResponses(specialties)
	u.catalogCache.Set(ctx, cacheKey, cachedSpecialtyPage{Items: responses, Total: total})

	return responses, total, nil
}

func (u *specialtyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", id, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", id, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialty.Name = req.Name

	if err := u.specialtyRepo.Update(ctx, specialty); err != nil {
		u.log.Warnf("Failed to update specialty %s: %+v", id, err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx, service.CacheKeySpecialties)
	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	specialty, err := u.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", id, err)
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	if err := u.specialtyRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete specialty %s: %+v", id, err)
		return err
	}

	u.catalogCache.Invalidate(ctx, service.CacheKeySpecialties)
	return nil
}
