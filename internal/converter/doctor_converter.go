package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		LastName:    doctor.LastName,
		Gender:      doctor.Gender,
		Telephone:   doctor.Telephone,
		Email:       doctor.Email,
		SpecialtyID: doctor.SpecialtyID,
		Status:      string(doctor.Status),
		CreatedAt:   doctor.CreatedAt,
		UpdatedAt:   doctor.UpdatedAt,
	}

	// Include specialty info if preloaded
	if doctor.Specialty.ID != uuid.Nil {
		response.Specialty = SpecialtyToResponse(&doctor.Specialty)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
