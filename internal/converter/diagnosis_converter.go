package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// DiagnosisToResponse converts a Diagnosis entity to DiagnosisResponse DTO
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		Description:   diagnosis.Description,
		AppointmentID: diagnosis.AppointmentID,
		CreatedAt:     diagnosis.CreatedAt,
		UpdatedAt:     diagnosis.UpdatedAt,
	}
}

// DiagnosesToResponses converts a slice of Diagnosis entities to response DTOs
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i, diagnosis := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnosis)
	}
	return responses
}
