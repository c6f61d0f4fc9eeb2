package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrDocumentNumberExists   = errors.New("document number already registered")
	ErrInvalidDocumentNumber  = errors.New("document number must be exactly 10 digits")
	ErrInvalidBirthDateFormat = errors.New("invalid birth date format, use YYYY-MM-DD")
)

var documentNumberPattern = regexp.MustCompile(`^\d{10}$`)

// documentNumberReplacer strips the separators users commonly type into
// document numbers before storage.
var documentNumberReplacer = strings.NewReplacer(".", "", ",", "", " ", "", "\t", "")

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

// normalizeDocumentNumber strips dots, commas and whitespace, then verifies
// the result is exactly 10 digits.
func normalizeDocumentNumber(raw string) (string, error) {
	normalized := documentNumberReplacer.Replace(strings.TrimSpace(raw))
	if !documentNumberPattern.MatchString(normalized) {
		return "", ErrInvalidDocumentNumber
	}
	return normalized, nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	documentNumber, err := normalizeDocumentNumber(req.DocumentNumber)
	if err != nil {
		return nil, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDateFormat
	}

	status := entity.RecordStatus(req.Status)
	if req.Status == "" {
		status = entity.RecordStatusActive
	}

	patient := &entity.Patient{
		Name:           req.Name,
		LastName:       req.LastName,
		Gender:         req.Gender,
		DocumentType:   entity.DocumentType(req.DocumentType),
		DocumentNumber: documentNumber,
		BirthDate:      birthDate,
		Address:        req.Address,
		Telephone:      req.Telephone,
		Status:         status,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "uq_patients_document_number") {
			return nil, ErrDocumentNumberExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%s, document=%s", patient.ID, documentNumber)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	patients, total, err := u.patientRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	documentNumber, err := normalizeDocumentNumber(req.DocumentNumber)
	if err != nil {
		return nil, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDateFormat
	}

	patient.Name = req.Name
	patient.LastName = req.LastName
	patient.Gender = req.Gender
	patient.DocumentType = entity.DocumentType(req.DocumentType)
	patient.DocumentNumber = documentNumber
	patient.BirthDate = birthDate
	patient.Address = req.Address
	patient.Telephone = req.Telephone
	if req.Status != "" {
		patient.Status = entity.RecordStatus(req.Status)
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "uq_patients_document_number") {
			return nil, ErrDocumentNumberExists
		}
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	return nil
}
