package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse
// DTO, expanding recipe detail lines and the linked appointment when preloaded.
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:               prescription.ID,
		PrescriptionDate: prescription.PrescriptionDate.Format("2006-01-02"),
		AppointmentID:    prescription.AppointmentID,
		RecipeDetails:    RecipeDetailsToResponses(prescription.RecipeDetails),
		CreatedAt:        prescription.CreatedAt,
		UpdatedAt:        prescription.UpdatedAt,
	}

	if prescription.Appointment.ID != uuid.Nil {
		response.Appointment = AppointmentToResponse(&prescription.Appointment)
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to response DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}
