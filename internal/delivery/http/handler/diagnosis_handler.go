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

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
	}
}

func (h *DiagnosisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.Error(w, http.StatusBadRequest, "Appointment not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to create diagnosis")
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis created successfully", diagnosis)
}

func (h *DiagnosisHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	diagnoses, total, err := h.diagnosisUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get diagnoses")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses, pageMeta(page, limit, total))
}

func (h *DiagnosisHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	diagnosisID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	diagnosis, err := h.diagnosisUsecase.GetByID(r.Context(), diagnosisID)
	if err != nil {
		if err == usecase.ErrDiagnosisNotFound {
			response.NotFound(w, "Diagnosis not found")
			return
		}
		response.InternalServerError(w, "Failed to get diagnosis")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis retrieved successfully", diagnosis)
}

func (h *DiagnosisHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	diagnosisID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	var req dto.UpdateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.Update(r.Context(), diagnosisID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		case usecase.ErrAppointmentNotFound:
			response.Error(w, http.StatusBadRequest, "Appointment not found", nil)
		default:
			response.InternalServerError(w, "Failed to update diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis updated successfully", diagnosis)
}

func (h *DiagnosisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	diagnosisID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	if err := h.diagnosisUsecase.Delete(r.Context(), diagnosisID); err != nil {
		if err == usecase.ErrDiagnosisNotFound {
			response.NotFound(w, "Diagnosis not found")
			return
		}
		response.InternalServerError(w, "Failed to delete diagnosis")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis deleted successfully", nil)
}
