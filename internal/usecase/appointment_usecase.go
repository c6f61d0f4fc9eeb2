package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrPatientDoubleBooked    = errors.New("patient already has an appointment at this date and time")
	ErrDoctorDoubleBooked     = errors.New("doctor already has an appointment at this date and time")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use RFC3339")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.AppointmentResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// checkConflicts runs the double-booking checks in a fixed order: the patient
// check always runs before the doctor check, so when both would conflict only
// the patient conflict is reported. Incomplete candidates (missing patient,
// doctor, or date-time) are skipped; field validation reports those instead.
// excludeID skips the candidate's own row on updates.
func (u *appointmentUsecase) checkConflicts(ctx context.Context, patientID, doctorID uuid.UUID, at time.Time, excludeID uuid.UUID) error {
	if patientID == uuid.Nil || doctorID == uuid.Nil || at.IsZero() {
		return nil
	}

	exists, err := u.appointmentRepo.ExistsForPatientAt(ctx, patientID, at, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check patient conflict: %+v", err)
		return err
	}
	if exists {
		return ErrPatientDoubleBooked
	}

	exists, err = u.appointmentRepo.ExistsForDoctorAt(ctx, doctorID, at, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check doctor conflict: %+v", err)
		return err
	}
	if exists {
		return ErrDoctorDoubleBooked
	}

	return nil
}

// translateConflictError re-surfaces a storage-level unique violation on the
// appointment exclusivity constraints as the matching conflict error, so a
// writer that loses the check-then-act race sees the same error contract as
// one caught by the pre-check.
func translateConflictError(err error) error {
	if isDuplicateKeyError(err, "uq_appointments_patient_time") {
		return ErrPatientDoubleBooked
	}
	if isDuplicateKeyError(err, "uq_appointments_doctor_time") {
		return ErrDoctorDoubleBooked
	}
	return nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	// Validate referenced records exist
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := u.checkConflicts(ctx, req.PatientID, req.DoctorID, appointmentDate, uuid.Nil); err != nil {
		return nil, err
	}

	status := entity.AppointmentStatus(req.Status)
	if req.Status == "" {
		status = entity.AppointmentStatusPending
	}

	appointment := &entity.Appointment{
		AppointmentDate: appointmentDate,
		Reason:          req.Reason,
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		Status:          status,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if conflictErr := translateConflictError(err); conflictErr != nil {
			return nil, conflictErr
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment)

	// Reload with patient and doctor expanded for the response
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s, date=%s",
		appointment.ID, req.PatientID, req.DoctorID, appointmentDate.Format(time.RFC3339))
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	appointments, total, err := u.appointmentRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Rescheduling re-triggers both exclusivity checks; the appointment's own
	// row is excluded so unrelated field updates never conflict with itself.
	if err := u.checkConflicts(ctx, req.PatientID, req.DoctorID, appointmentDate, id); err != nil {
		return nil, err
	}

	oldValue := *appointment

	appointment.AppointmentDate = appointmentDate
	appointment.Reason = req.Reason
	appointment.PatientID = req.PatientID
	appointment.DoctorID = req.DoctorID
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		if conflictErr := translateConflictError(err); conflictErr != nil {
			return nil, conflictErr
		}
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentUpdate, "appointment", id.String(), &oldValue, appointment)

	full, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionAppointmentDelete, "appointment", id.String(), appointment)

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}
