package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc             func(ctx context.Context, appointment *entity.Appointment) error
	FindAllFunc            func(ctx context.Context, limit, offset int) ([]entity.Appointment, int64, error)
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	UpdateFunc             func(ctx context.Context, appointment *entity.Appointment) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	ExistsForPatientAtFunc func(ctx context.Context, patientID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error)
	ExistsForDoctorAtFunc  func(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Appointment, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAppointmentRepository) ExistsForPatientAt(ctx context.Context, patientID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
	if m.ExistsForPatientAtFunc != nil {
		return m.ExistsForPatientAtFunc(ctx, patientID, at, excludeID)
	}
	return false, nil
}

func (m *MockAppointmentRepository) ExistsForDoctorAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error) {
	if m.ExistsForDoctorAtFunc != nil {
		return m.ExistsForDoctorAtFunc(ctx, doctorID, at, excludeID)
	}
	return false, nil
}

// --- MockPatientRepository ---

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc   func(ctx context.Context, patient *entity.Patient) error
	FindAllFunc  func(ctx context.Context, limit, offset int) ([]entity.Patient, int64, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	UpdateFunc   func(ctx context.Context, patient *entity.Patient) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Patient, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- MockDoctorRepository ---

var _ repository.DoctorRepository = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	CreateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	FindAllFunc  func(ctx context.Context, limit, offset int) ([]entity.Doctor, int64, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	UpdateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Doctor, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- MockPrescriptionRepository ---

var _ repository.PrescriptionRepository = (*MockPrescriptionRepository)(nil)

type MockPrescriptionRepository struct {
	CreateFunc   func(ctx context.Context, prescription *entity.Prescription) error
	FindAllFunc  func(ctx context.Context, limit, offset int) ([]entity.Prescription, int64, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	UpdateFunc   func(ctx context.Context, prescription *entity.Prescription) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPrescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, prescription)
	}
	return nil
}

func (m *MockPrescriptionRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Prescription, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockPrescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPrescriptionRepository) Update(ctx context.Context, prescription *entity.Prescription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, prescription)
	}
	return nil
}

func (m *MockPrescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- MockMedicineRepository ---

var _ repository.MedicineRepository = (*MockMedicineRepository)(nil)

type MockMedicineRepository struct {
	CreateFunc   func(ctx context.Context, medicine *entity.Medicine) error
	FindAllFunc  func(ctx context.Context, limit, offset int) ([]entity.Medicine, int64, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	UpdateFunc   func(ctx context.Context, medicine *entity.Medicine) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMedicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Medicine, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockMedicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- MockRecipeDetailRepository ---

var _ repository.RecipeDetailRepository = (*MockRecipeDetailRepository)(nil)

type MockRecipeDetailRepository struct {
	CreateFunc                           func(ctx context.Context, detail *entity.RecipeDetail) error
	FindAllFunc                          func(ctx context.Context, limit, offset int) ([]entity.RecipeDetail, int64, error)
	FindByIDFunc                         func(ctx context.Context, id uuid.UUID) (*entity.RecipeDetail, error)
	UpdateFunc                           func(ctx context.Context, detail *entity.RecipeDetail) error
	DeleteFunc                           func(ctx context.Context, id uuid.UUID) error
	ExistsForPrescriptionAndMedicineFunc func(ctx context.Context, prescriptionID, medicineID, excludeID uuid.UUID) (bool, error)
}

func (m *MockRecipeDetailRepository) Create(ctx context.Context, detail *entity.RecipeDetail) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, detail)
	}
	return nil
}

func (m *MockRecipeDetailRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.RecipeDetail, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockRecipeDetailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipeDetail, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockRecipeDetailRepository) Update(ctx context.Context, detail *entity.RecipeDetail) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, detail)
	}
	return nil
}

func (m *MockRecipeDetailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockRecipeDetailRepository) ExistsForPrescriptionAndMedicine(ctx context.Context, prescriptionID, medicineID, excludeID uuid.UUID) (bool, error) {
	if m.ExistsForPrescriptionAndMedicineFunc != nil {
		return m.ExistsForPrescriptionAndMedicineFunc(ctx, prescriptionID, medicineID, excludeID)
	}
	return false, nil
}

// --- MockAuditLogRepository ---

var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

type MockAuditLogRepository struct {
	CreateFunc  func(ctx context.Context, log *entity.AuditLog) error
	FindAllFunc func(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error)
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}
