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

var ErrMedicalProcedureNotFound = errors.New("medical procedure not found")

type MedicalProcedureUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalProcedureRequest) (*dto.MedicalProcedureResponse, error)
	// GetAll optionally filters by appointment; pass nil for no filter.
	GetAll(ctx context.Context, appointmentID *uuid.UUID, page, limit int) ([]dto.MedicalProcedureResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicalProcedureResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalProcedureRequest) (*dto.MedicalProcedureResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicalProcedureUsecase struct {
	log             *logrus.Logger
	procedureRepo   repository.MedicalProcedureRepository
	appointmentRepo repository.AppointmentRepository
}

func NewMedicalProcedureUsecase(log *logrus.Logger, procedureRepo repository.MedicalProcedureRepository, appointmentRepo repository.AppointmentRepository) MedicalProcedureUsecase {
	return &medicalProcedureUsecase{
		log:             log,
		procedureRepo:   procedureRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *medicalProcedureUsecase) Create(ctx context.Context, req *dto.CreateMedicalProcedureRequest) (*dto.MedicalProcedureResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	procedure := &entity.MedicalProcedure{
		Description:   req.Description,
		AppointmentID: req.AppointmentID,
	}

	if err := u.procedureRepo.Create(ctx, procedure); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create medical procedure: %+v", err)
		return nil, err
	}

	return converter.MedicalProcedureToResponse(procedure), nil
}

func (u *medicalProcedureUsecase) GetAll(ctx context.Context, appointmentID *uuid.UUID, page, limit int) ([]dto.MedicalProcedureResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	procedures, total, err := u.procedureRepo.FindAll(ctx, appointmentID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find medical procedures: %+v", err)
		return nil, 0, err
	}

	return converter.MedicalProceduresToResponses(procedures), total, nil
}

func (u *medicalProcedureUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicalProcedureResponse, error) {
	procedure, err := u.procedureRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical procedure %s: %+v", id, err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrMedicalProcedureNotFound
	}

	return converter.MedicalProcedureToResponse(procedure), nil
}

func (u *medicalProcedureUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalProcedureRequest) (*dto.MedicalProcedureResponse, error) {
	procedure, err := u.procedureRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical procedure %s: %+v", id, err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrMedicalProcedureNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	procedure.Description = req.Description
	procedure.AppointmentID = req.AppointmentID

	if err := u.procedureRepo.Update(ctx, procedure); err != nil {
		u.log.Warnf("Failed to update medical procedure %s: %+v", id, err)
		return nil, err
	}

	return converter.MedicalProcedureToResponse(procedure), nil
}

func (u *medicalProcedureUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	procedure, err := u.procedureRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical procedure %s: %+v", id, err)
		return err
	}
	if procedure == nil {
		return ErrMedicalProcedureNotFound
	}

	if err := u.procedureRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medical procedure %s: %+v", id, err)
		return err
	}

	return nil
}
