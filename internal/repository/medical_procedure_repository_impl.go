package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalProcedureRepository struct {
	db *gorm.DB
}

func NewMedicalProcedureRepository(db *gorm.DB) domainRepo.MedicalProcedureRepository {
	return &medicalProcedureRepository{db: db}
}

func (r *medicalProcedureRepository) Create(ctx context.Context, procedure *entity.MedicalProcedure) error {
	return r.db.WithContext(ctx).Create(procedure).Error
}

func (r *medicalProcedureRepository) FindAll(ctx context.Context, appointmentID *uuid.UUID, limit, offset int) ([]entity.MedicalProcedure, int64, error) {
	var procedures []entity.MedicalProcedure
	var total int64

	countQuery := r.db.WithContext(ctx).Model(&entity.MedicalProcedure{})
	listQuery := r.db.WithContext(ctx).Model(&entity.MedicalProcedure{})
	if appointmentID != nil {
		countQuery = countQuery.Where("appointment_id = ?", *appointmentID)
		listQuery = listQuery.Where("appointment_id = ?", *appointmentID)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := listQuery.Limit(limit).Offset(offset).Order("created_at DESC").Find(&procedures).Error; err != nil {
		return nil, 0, err
	}

	return procedures, total, nil
}

func (r *medicalProcedureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalProcedure, error) {
	var procedure entity.MedicalProcedure
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&procedure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *medicalProcedureRepository) Update(ctx context.Context, procedure *entity.MedicalProcedure) error {
	return r.db.WithContext(ctx).Save(procedure).Error
}

func (r *medicalProcedureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicalProcedure{}).Error
}
