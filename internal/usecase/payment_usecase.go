package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
)

type PaymentUsecase interface {
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.PaymentResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentUsecase struct {
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
}

func NewPaymentUsecase(log *logrus.Logger, paymentRepo repository.PaymentRepository, appointmentRepo repository.AppointmentRepository) PaymentUsecase {
	return &paymentUsecase{
		log:             log,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *paymentUsecase) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	status := entity.PaymentStatus(req.PaymentStatus)
	if req.PaymentStatus == "" {
		status = entity.PaymentStatusPending
	}

	// The payment date is assigned at creation and never changes
	payment := &entity.Payment{
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		PaymentDate:   time.Now().UTC().Truncate(24 * time.Hour),
		Amount:        req.Amount,
		AppointmentID: req.AppointmentID,
		PaymentStatus: status,
	}

	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	u.log.Infof("Payment created: id=%s, appointment=%s, amount=%s", payment.ID, req.AppointmentID, req.Amount)
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.PaymentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	payments, total, err := u.paymentRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, 0, err
	}

	return converter.PaymentsToResponses(payments), total, nil
}

func (u *paymentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// PaymentDate stays untouched: it is immutable after creation
	payment.PaymentMethod = entity.PaymentMethod(req.PaymentMethod)
	payment.Amount = req.Amount
	payment.AppointmentID = req.AppointmentID
	if req.PaymentStatus != "" {
		payment.PaymentStatus = entity.PaymentStatus(req.PaymentStatus)
	}

	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		u.log.Warnf("Failed to update payment %s: %+v", id, err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	payment, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", id, err)
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	if err := u.paymentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete payment %s: %+v", id, err)
		return err
	}

	return nil
}
