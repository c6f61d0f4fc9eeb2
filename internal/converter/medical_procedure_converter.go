package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// MedicalProcedureToResponse converts a MedicalProcedure entity to response DTO
func MedicalProcedureToResponse(procedure *entity.MedicalProcedure) *dto.MedicalProcedureResponse {
	if procedure == nil {
		return nil
	}

	return &dto.MedicalProcedureResponse{
		ID:            procedure.ID,
		Description:   procedure.Description,
		AppointmentID: procedure.AppointmentID,
		CreatedAt:     procedure.CreatedAt,
		UpdatedAt:     procedure.UpdatedAt,
	}
}

// MedicalProceduresToResponses converts a slice of MedicalProcedure entities to response DTOs
func MedicalProceduresToResponses(procedures []entity.MedicalProcedure) []dto.MedicalProcedureResponse {
	responses := make([]dto.MedicalProcedureResponse, len(procedures))
	for i, procedure := range procedures {
		responses[i] = *MedicalProcedureToResponse(&procedure)
	}
	return responses
}
