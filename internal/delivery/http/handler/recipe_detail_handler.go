package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RecipeDetailHandler struct {
	recipeDetailUsecase usecase.RecipeDetailUsecase
	validator           *validator.CustomValidator
}

func NewRecipeDetailHandler(recipeDetailUsecase usecase.RecipeDetailUsecase, validator *validator.CustomValidator) *RecipeDetailHandler {
	return &RecipeDetailHandler{
		recipeDetailUsecase: recipeDetailUsecase,
		validator:           validator,
	}
}

func (h *RecipeDetailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecipeDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	detail, err := h.recipeDetailUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.Error(w, http.StatusBadRequest, "Prescription not found", nil)
		case usecase.ErrMedicineNotFound:
			response.Error(w, http.StatusBadRequest, "Medicine not found", nil)
		case usecase.ErrDuplicateRecipeLine:
			response.Error(w, http.StatusConflict, "Medicine already added to this prescription", nil)
		default:
			response.InternalServerError(w, "Failed to create recipe detail")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Recipe detail created successfully", detail)
}

func (h *RecipeDetailHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	details, total, err := h.recipeDetailUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get recipe details")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Recipe details retrieved successfully", details, pageMeta(page, limit, total))
}

func (h *RecipeDetailHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	detailID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid recipe detail ID", nil)
		return
	}

	detail, err := h.recipeDetailUsecase.GetByID(r.Context(), detailID)
	if err != nil {
		if err == usecase.ErrRecipeDetailNotFound {
			response.NotFound(w, "Recipe detail not found")
			return
		}
		response.InternalServerError(w, "Failed to get recipe detail")
		return
	}

	response.Success(w, http.StatusOK, "Recipe detail retrieved successfully", detail)
}

func (h *RecipeDetailHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	detailID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid recipe detail ID", nil)
		return
	}

	var req dto.UpdateRecipeDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	detail, err := h.recipeDetailUsecase.Update(r.Context(), detailID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecipeDetailNotFound:
			response.NotFound(w, "Recipe detail not found")
		case usecase.ErrPrescriptionNotFound:
			response.Error(w, http.StatusBadRequest, "Prescription not found", nil)
		case usecase.ErrMedicineNotFound:
			response.Error(w, http.StatusBadRequest, "Medicine not found", nil)
		case usecase.ErrDuplicateRecipeLine:
			response.Error(w, http.StatusConflict, "Medicine already added to this prescription", nil)
		default:
			response.InternalServerError(w, "Failed to update recipe detail")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recipe detail updated successfully", detail)
}

func (h *RecipeDetailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	detailID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid recipe detail ID", nil)
		return
	}

	if err := h.recipeDetailUsecase.Delete(r.Context(), detailID); err != nil {
		if err == usecase.ErrRecipeDetailNotFound {
			response.NotFound(w, "Recipe detail not found")
			return
		}
		response.InternalServerError(w, "Failed to delete recipe detail")
		return
	}

	response.Success(w, http.StatusOK, "Recipe detail deleted successfully", nil)
}
