package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		PaymentMethod: string(payment.PaymentMethod),
		PaymentDate:   payment.PaymentDate.Format("2006-01-02"),
		Amount:        payment.Amount,
		AppointmentID: payment.AppointmentID,
		PaymentStatus: string(payment.PaymentStatus),
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to response DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = *PaymentToResponse(&payment)
	}
	return responses
}
