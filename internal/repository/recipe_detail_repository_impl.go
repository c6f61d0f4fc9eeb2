package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recipeDetailRepository struct {
	db *gorm.DB
}

func NewRecipeDetailRepository(db *gorm.DB) domainRepo.RecipeDetailRepository {
	return &recipeDetailRepository{db: db}
}

func (r *recipeDetailRepository) Create(ctx context.Context, detail *entity.RecipeDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *recipeDetailRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.RecipeDetail, int64, error) {
	var details []entity.RecipeDetail
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.RecipeDetail{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Medicine").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&details).Error
	if err != nil {
		return nil, 0, err
	}

	return details, total, nil
}

func (r *recipeDetailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipeDetail, error) {
	var detail entity.RecipeDetail
	err := r.db.WithContext(ctx).Preload("Medicine").Where("id = ?", id).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *recipeDetailRepository) Update(ctx context.Context, detail *entity.RecipeDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *recipeDetailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.RecipeDetail{}).Error
}

func (r *recipeDetailRepository) ExistsForPrescriptionAndMedicine(ctx context.Context, prescriptionID, medicineID, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.RecipeDetail{}).
		Where("prescription_id = ? AND medicine_id = ?", prescriptionID, medicineID)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
