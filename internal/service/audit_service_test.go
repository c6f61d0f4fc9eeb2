package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type MockAuditLogRepository struct {
	CreateFunc  func(ctx context.Context, log *entity.AuditLog) error
	FindAllFunc func(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error)
}

var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditService_LogCreate_WritesActionAndMetadata(t *testing.T) {
	var saved *entity.AuditLog
	auditRepo := &MockAuditLogRepository{
		CreateFunc: func(ctx context.Context, log *entity.AuditLog) error {
			saved = log
			return nil
		},
	}

	s := NewAuditService(newTestLogger(), auditRepo)

	s.LogCreate(context.Background(), entity.AuditActionAppointmentCreate, "appointment", "abc-123", map[string]string{"reason": "Routine check"})

	assert.NotNil(t, saved)
	assert.Equal(t, entity.AuditActionAppointmentCreate, saved.Action)
	assert.Equal(t, "appointment", saved.Metadata["entity"])
	assert.Equal(t, "abc-123", saved.Metadata["entity_id"])
	assert.Nil(t, saved.Metadata["old_value"])
	assert.NotNil(t, saved.Metadata["new_value"])
}

func TestAuditService_LogUpdate_KeepsOldAndNewValue(t *testing.T) {
	var saved *entity.AuditLog
	auditRepo := &MockAuditLogRepository{
		CreateFunc: func(ctx context.Context, log *entity.AuditLog) error {
			saved = log
			return nil
		},
	}

	s := NewAuditService(newTestLogger(), auditRepo)

	s.LogUpdate(context.Background(), entity.AuditActionAppointmentUpdate, "appointment", "abc-123",
		map[string]string{"status": "PENDING"}, map[string]string{"status": "ATTENDED"})

	assert.NotNil(t, saved)
	assert.Equal(t, entity.AuditActionAppointmentUpdate, saved.Action)
	assert.NotNil(t, saved.Metadata["old_value"])
	assert.NotNil(t, saved.Metadata["new_value"])
}

// A failing audit write must never surface to the caller.
func TestAuditService_RepositoryFailureDoesNotPanic(t *testing.T) {
	auditRepo := &MockAuditLogRepository{
		CreateFunc: func(ctx context.Context, log *entity.AuditLog) error {
			return errors.New("connection refused")
		},
	}

	s := NewAuditService(newTestLogger(), auditRepo)

	assert.NotPanics(t, func() {
		s.LogDelete(context.Background(), entity.AuditActionAppointmentDelete, "appointment", "abc-123", nil)
	})
}
