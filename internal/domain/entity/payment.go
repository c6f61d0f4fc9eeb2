package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an appointment was paid
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusReceived  PaymentStatus = "RECEIVED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment represents a payment tied to an appointment.
// PaymentDate is assigned once at creation and never updated.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(25);not null;default:'CASH'" json:"payment_method"`
	PaymentDate   time.Time       `gorm:"type:date;not null" json:"payment_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(12);not null;default:'PENDING';index" json:"payment_status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsReceived checks if the payment has been received
func (p *Payment) IsReceived() bool {
	return p.PaymentStatus == PaymentStatusReceived
}
