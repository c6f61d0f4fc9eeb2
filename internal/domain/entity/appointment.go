package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment.
// No state machine is enforced: any status may follow any other.
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "PENDING"
	AppointmentStatusAttended    AppointmentStatus = "ATTENDED"
	AppointmentStatusCancelled   AppointmentStatus = "CANCELLED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
	AppointmentStatusNoShow      AppointmentStatus = "NO_SHOW"
)

// Appointment represents a scheduled meeting between one patient and one
// doctor at a specific date-time.
//
// The composite unique indexes on (patient_id, appointment_date) and
// (doctor_id, appointment_date) back the application-level conflict check:
// if two requests race past the pre-check, the loser hits the constraint.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentDate time.Time         `gorm:"type:timestamptz;not null;uniqueIndex:uq_appointments_patient_time,priority:2;uniqueIndex:uq_appointments_doctor_time,priority:2" json:"appointment_date"`
	Reason          string            `gorm:"type:varchar(200);not null" json:"reason"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_appointments_patient_time,priority:1" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_appointments_doctor_time,priority:1" json:"doctor_id"`
	Status          AppointmentStatus `gorm:"type:varchar(13);not null;default:'PENDING';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment has not been attended yet
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
