package paymentmock

import (
	"context"

	domain "prestago-backend/internal/domain/payment"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, s *domain.Submission) error
	SaveFn                       func(ctx context.Context, s *domain.Submission) error
	GetBySubmissionIDFn          func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetBySubmissionIDForUpdateFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetPendingByInstallmentIDFn  func(ctx context.Context, installmentNumericID uint64) (*domain.Submission, error)
	ListByInstallmentIDsFn       func(ctx context.Context, installmentNumericIDs []uint64) ([]domain.Submission, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDForUpdateFn != nil {
		return m.GetBySubmissionIDForUpdateFn(ctx, submissionID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetPendingByInstallmentID(ctx context.Context, installmentNumericID uint64) (*domain.Submission, error) {
	if m.GetPendingByInstallmentIDFn != nil {
		return m.GetPendingByInstallmentIDFn(ctx, installmentNumericID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByInstallmentIDs(ctx context.Context, installmentNumericIDs []uint64) ([]domain.Submission, error) {
	if m.ListByInstallmentIDsFn != nil {
		return m.ListByInstallmentIDsFn(ctx, installmentNumericIDs)
	}
	return nil, nil
}
