package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=CASH CARD BANK_TRANSFER"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=PENDING RECEIVED CANCELLED REFUNDED"`
}

type UpdatePaymentRequest struct {
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=CASH CARD BANK_TRANSFER"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=PENDING RECEIVED CANCELLED REFUNDED"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   string          `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	AppointmentID uuid.UUID       `json:"appointment_id"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
