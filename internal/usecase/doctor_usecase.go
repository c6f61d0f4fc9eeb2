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

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.DoctorResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, specialtyRepo repository.SpecialtyRepository) DoctorUsecase {
	return &doctorUsecase{
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(ctx, req.SpecialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", req.SpecialtyID, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	status := entity.RecordStatus(req.Status)
	if req.Status == "" {
		status = entity.RecordStatusActive
	}

	doctor := &entity.Doctor{
		Name:        req.Name,
		LastName:    req.LastName,
		Gender:      req.Gender,
		Telephone:   req.Telephone,
		Email:       req.Email,
		SpecialtyID: req.SpecialtyID,
		Status:      status,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if isForeignKeyError(err, "specialty") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	doctor.Specialty = *specialty
	u.log.Infof("Doctor created: id=%s, specialty=%s", doctor.ID, specialty.Name)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.DoctorResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	doctors, total, err := u.doctorRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialty, err := u.specialtyRepo.FindByID(ctx, req.SpecialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", req.SpecialtyID, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	doctor.Name = req.Name
	doctor.LastName = req.LastName
	doctor.Gender = req.Gender
	doctor.Telephone = req.Telephone
	doctor.Email = req.Email
	doctor.SpecialtyID = req.SpecialtyID
	if req.Status != "" {
		doctor.Status = entity.RecordStatus(req.Status)
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		if isForeignKeyError(err, "specialty") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	doctor.Specialty = *specialty
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}

	return nil
}
