package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeDetailToResponse converts a RecipeDetail entity to RecipeDetailResponse DTO
func RecipeDetailToResponse(detail *entity.RecipeDetail) *dto.RecipeDetailResponse {
	if detail == nil {
		return nil
	}

	response := &dto.RecipeDetailResponse{
		ID:             detail.ID,
		Amount:         detail.Amount,
		Indications:    detail.Indications,
		PrescriptionID: detail.PrescriptionID,
		MedicineID:     detail.MedicineID,
		CreatedAt:      detail.CreatedAt,
		UpdatedAt:      detail.UpdatedAt,
	}

	if detail.Medicine.ID != uuid.Nil {
		response.Medicine = MedicineToResponse(&detail.Medicine)
	}

	return response
}

// RecipeDetailsToResponses converts a slice of RecipeDetail entities to response DTOs
func RecipeDetailsToResponses(details []entity.RecipeDetail) []dto.RecipeDetailResponse {
	responses := make([]dto.RecipeDetailResponse, len(details))
	for i, detail := range details {
		responses[i] = *RecipeDetailToResponse(&detail)
	}
	return responses
}
