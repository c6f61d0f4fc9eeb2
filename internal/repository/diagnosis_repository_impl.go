package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisRepository struct {
	db *gorm.DB
}

func NewDiagnosisRepository(db *gorm.DB) domainRepo.DiagnosisRepository {
	return &diagnosisRepository{db: db}
}

func (r *diagnosisRepository) Create(ctx context.Context, diagnosis *entity.Diagnosis) error {
	return r.db.WithContext(ctx).Create(diagnosis).Error
}

func (r *diagnosisRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Diagnosis, int64, error) {
	var diagnoses []entity.Diagnosis
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Diagnosis{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("created_at DESC").Find(&diagnoses).Error; err != nil {
		return nil, 0, err
	}

	return diagnoses, total, nil
}

func (r *diagnosisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) Update(ctx context.Context, diagnosis *entity.Diagnosis) error {
	return r.db.WithContext(ctx).Save(diagnosis).Error
}

func (r *diagnosisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Diagnosis{}).Error
}
