package loanmock

import (
	"context"

	domain "prestago-backend/internal/domain/loan"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	GetByLoanIDFn                 func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByClientIDFn              func(ctx context.Context, clientID string) ([]domain.Loan, error)
	GetInstallmentByIDFn          func(ctx context.Context, installmentID string) (*domain.Installment, error)
	GetInstallmentByIDForUpdateFn func(ctx context.Context, installmentID string) (*domain.Installment, error)
	GetInstallmentForUpdateFn     func(ctx context.Context, installmentNumericID uint64) (*domain.Installment, error)
	ListInstallmentsFn            func(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error)
	ListUnsettledBeforeFn         func(ctx context.Context, loanNumericID uint64, seq int) ([]domain.Installment, error)
	SaveInstallmentFn             func(ctx context.Context, ins *domain.Installment) error
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByClientID(ctx context.Context, clientID string) ([]domain.Loan, error) {
	if m.ListByClientIDFn != nil {
		return m.ListByClientIDFn(ctx, clientID)
	}
	return nil, nil
}

func (m *Repo) GetInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetInstallmentByIDFn != nil {
		return m.GetInstallmentByIDFn(ctx, installmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetInstallmentByIDForUpdate(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetInstallmentByIDForUpdateFn != nil {
		return m.GetInstallmentByIDForUpdateFn(ctx, installmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetInstallmentForUpdate(ctx context.Context, installmentNumericID uint64) (*domain.Installment, error) {
	if m.GetInstallmentForUpdateFn != nil {
		return m.GetInstallmentForUpdateFn(ctx, installmentNumericID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListInstallments(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error) {
	if m.ListInstallmentsFn != nil {
		return m.ListInstallmentsFn(ctx, loanNumericID)
	}
	return nil, nil
}

func (m *Repo) ListUnsettledBefore(ctx context.Context, loanNumericID uint64, seq int) ([]domain.Installment, error) {
	if m.ListUnsettledBeforeFn != nil {
		return m.ListUnsettledBeforeFn(ctx, loanNumericID, seq)
	}
	return nil, nil
}

func (m *Repo) SaveInstallment(ctx context.Context, ins *domain.Installment) error {
	if m.SaveInstallmentFn != nil {
		return m.SaveInstallmentFn(ctx, ins)
	}
	return nil
}
