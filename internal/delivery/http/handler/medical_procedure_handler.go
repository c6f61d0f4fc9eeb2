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

type MedicalProcedureHandler struct {
	procedureUsecase usecase.MedicalProcedureUsecase
	validator        *validator.CustomValidator
}

func NewMedicalProcedureHandler(procedureUsecase usecase.MedicalProcedureUsecase, validator *validator.CustomValidator) *MedicalProcedureHandler {
	return &MedicalProcedureHandler{
		procedureUsecase: procedureUsecase,
		validator:        validator,
	}
}

func (h *MedicalProcedureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	procedure, err := h.procedureUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.Error(w, http.StatusBadRequest, "Appointment not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to create medical procedure")
		return
	}

	response.Success(w, http.StatusCreated, "Medical procedure created successfully", procedure)
}

func (h *MedicalProcedureHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	var appointmentID *uuid.UUID
	if raw := r.URL.Query().Get("appointment_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
			return
		}
		appointmentID = &id
	}

	procedures, total, err := h.procedureUsecase.GetAll(r.Context(), appointmentID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get medical procedures")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medical procedures retrieved successfully", procedures, pageMeta(page, limit, total))
}

func (h *MedicalProcedureHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	procedureID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical procedure ID", nil)
		return
	}

	procedure, err := h.procedureUsecase.GetByID(r.Context(), procedureID)
	if err != nil {
		if err == usecase.ErrMedicalProcedureNotFound {
			response.NotFound(w, "Medical procedure not found")
			return
		}
		response.InternalServerError(w, "Failed to get medical procedure")
		return
	}

	response.Success(w, http.StatusOK, "Medical procedure retrieved successfully", procedure)
}

func (h *MedicalProcedureHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	procedureID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical procedure ID", nil)
		return
	}

	var req dto.UpdateMedicalProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	procedure, err := h.procedureUsecase.Update(r.Context(), procedureID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalProcedureNotFound:
			response.NotFound(w, "Medical procedure not found")
		case usecase.ErrAppointmentNotFound:
			response.Error(w, http.StatusBadRequest, "Appointment not found", nil)
		default:
			response.InternalServerError(w, "Failed to update medical procedure")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical procedure updated successfully", procedure)
}

func (h *MedicalProcedureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	procedureID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical procedure ID", nil)
		return
	}

	if err := h.procedureUsecase.Delete(r.Context(), procedureID); err != nil {
		if err == usecase.ErrMedicalProcedureNotFound {
			response.NotFound(w, "Medical procedure not found")
			return
		}
		response.InternalServerError(w, "Failed to delete medical procedure")
		return
	}

	response.Success(w, http.StatusOK, "Medical procedure deleted successfully", nil)
}
