package assignmentmock

import (
	"context"

	domain "prestago-backend/internal/domain/assignment"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies assignment.Repository.
// Unset lookups report gorm.ErrRecordNotFound, matching an empty table.
type Repo struct {
	CreateFn                     func(ctx context.Context, a *domain.Assignment) error
	GetByAssignmentIDFn          func(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	GetByClientIDFn              func(ctx context.Context, clientID string) (*domain.Assignment, error)
	ListByGuarantorIDForUpdateFn func(ctx context.Context, guarantorID string) ([]domain.Assignment, error)
	CountByGuarantorIDFn         func(ctx context.Context, guarantorID string) (int64, error)
	ListFn                       func(ctx context.Context) ([]domain.Assignment, error)
	DeleteFn                     func(ctx context.Context, assignmentID string) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Assignment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAssignmentID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	if m.GetByAssignmentIDFn != nil {
		return m.GetByAssignmentIDFn(ctx, assignmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Assignment, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByGuarantorIDForUpdate(ctx context.Context, guarantorID string) ([]domain.Assignment, error) {
	if m.ListByGuarantorIDForUpdateFn != nil {
		return m.ListByGuarantorIDForUpdateFn(ctx, guarantorID)
	}
	return nil, nil
}

func (m *Repo) CountByGuarantorID(ctx context.Context, guarantorID string) (int64, error) {
	if m.CountByGuarantorIDFn != nil {
		return m.CountByGuarantorIDFn(ctx, guarantorID)
	}
	return 0, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Assignment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, assignmentID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, assignmentID)
	}
	return domain.ErrNotFound
}
