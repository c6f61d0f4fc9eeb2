package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.PrescriptionResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewPrescriptionUsecase(log *logrus.Logger, prescriptionRepo repository.PrescriptionRepository, appointmentRepo repository.AppointmentRepository) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// The prescription date is assigned at creation and never changes
	prescription := &entity.Prescription{
		PrescriptionDate: time.Now().UTC().Truncate(24 * time.Hour),
		AppointmentID:    req.AppointmentID,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	full, err := u.prescriptionRepo.FindByID(ctx, prescription.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload prescription %s: %+v", prescription.ID, err)
		return converter.PrescriptionToResponse(prescription), nil
	}

	return converter.PrescriptionToResponse(full), nil
}

func (u *prescriptionUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.PrescriptionResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	prescriptions, total, err := u.prescriptionRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, 0, err
	}

	return converter.PrescriptionsToResponses(prescriptions), total, nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// PrescriptionDate stays untouched: it is immutable after creation
	prescription.AppointmentID = req.AppointmentID

	if err := u.prescriptionRepo.Update(ctx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription %s: %+v", id, err)
		return nil, err
	}

	full, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload prescription %s: %+v", id, err)
		return converter.PrescriptionToResponse(prescription), nil
	}

	return converter.PrescriptionToResponse(full), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	if err := u.prescriptionRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}

	return nil
}
