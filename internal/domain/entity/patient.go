package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender constants shared by Patient and Doctor
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// DocumentType represents the identity document category of a patient
type DocumentType string

const (
	DocumentTypeCivilRegistry DocumentType = "R.C"
	DocumentTypeIdentityCard  DocumentType = "T.I"
	DocumentTypeCitizenID     DocumentType = "C.C"
	DocumentTypeForeignerID   DocumentType = "C.E"
	DocumentTypePassport      DocumentType = "PAS"
)

// RecordStatus marks a patient or doctor record as active or inactive
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "ACTIVE"
	RecordStatusInactive RecordStatus = "INACTIVE"
)

// Patient represents a clinic patient
type Patient struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string       `gorm:"type:varchar(100);not null" json:"name"`
	LastName       string       `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender         string       `gorm:"type:char(1);not null;default:'M'" json:"gender"`
	DocumentType   DocumentType `gorm:"type:varchar(3);not null;default:'R.C'" json:"document_type"`
	DocumentNumber string       `gorm:"type:char(10);uniqueIndex:uq_patients_document_number;not null" json:"document_number"`
	BirthDate      time.Time    `gorm:"type:date;not null" json:"birth_date"`
	Address        string       `gorm:"type:varchar(100)" json:"address,omitempty"`
	Telephone      string       `gorm:"type:varchar(10)" json:"telephone,omitempty"`
	Status         RecordStatus `gorm:"type:varchar(8);not null;default:'ACTIVE';index" json:"status"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsActive checks if the patient record is active
func (p *Patient) IsActive() bool {
	return p.Status == RecordStatusActive
}
