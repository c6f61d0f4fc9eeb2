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

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.Error(w, http.StatusBadRequest, "Appointment not found", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Amount must be greater than zero", nil)
		default:
			response.InternalServerError(w, "Failed to create payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	payments, total, err := h.paymentUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Payments retrieved successfully", payments, pageMeta(page, limit, total))
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.GetByID(r.Context(), paymentID)
	if err != nil {
		if err == usecase.ErrPaymentNotFound {
			response.NotFound(w, "Payment not found")
			return
		}
		response.InternalServerError(w, "Failed to get payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Update(r.Context(), paymentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrAppointmentNotFound:
			response.Error(w, http.StatusBadRequest, "Appointment not found", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Amount must be greater than zero", nil)
		default:
			response.InternalServerError(w, "Failed to update payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment updated successfully", payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	if err := h.paymentUsecase.Delete(r.Context(), paymentID); err != nil {
		if err == usecase.ErrPaymentNotFound {
			response.NotFound(w, "Payment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment deleted successfully", nil)
}
