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

var ErrDiagnosisNotFound = errors.New("diagnosis not found")

type DiagnosisUsecase interface {
	Create(ctx context.Context, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.DiagnosisResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DiagnosisResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type diagnosisUsecase struct {
	log             *logrus.Logger
	diagnosisRepo   repository.DiagnosisRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDiagnosisUsecase(log *logrus.Logger, diagnosisRepo repository.DiagnosisRepository, appointmentRepo repository.AppointmentRepository) DiagnosisUsecase {
	return &diagnosisUsecase{
		log:             log,
		diagnosisRepo:   diagnosisRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *diagnosisUsecase) Create(ctx context.Context, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	diagnosis := &entity.Diagnosis{
		Description:   req.Description,
		AppointmentID: req.AppointmentID,
	}

	if err := u.diagnosisRepo.Create(ctx, diagnosis); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.DiagnosisResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	diagnoses, total, err := u.diagnosisRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find diagnoses: %+v", err)
		return nil, 0, err
	}

	return converter.DiagnosesToResponses(diagnoses), total, nil
}

func (u *diagnosisUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DiagnosisResponse, error) {
	diagnosis, err := u.diagnosisRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis %s: %+v", id, err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	diagnosis, err := u.diagnosisRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis %s: %+v", id, err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	diagnosis.Description = req.Description
	diagnosis.AppointmentID = req.AppointmentID

	if err := u.diagnosisRepo.Update(ctx, diagnosis); err != nil {
		u.log.Warnf("Failed to update diagnosis %s: %+v", id, err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	diagnosis, err := u.diagnosisRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis %s: %+v", id, err)
		return err
	}
	if diagnosis == nil {
		return ErrDiagnosisNotFound
	}

	if err := u.diagnosisRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete diagnosis %s: %+v", id, err)
		return err
	}

	return nil
}
