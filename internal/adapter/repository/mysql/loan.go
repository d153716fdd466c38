package mysql

import (
	"context"

	loanDomain "prestago-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByClientID(ctx context.Context, clientID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) GetInstallmentByID(ctx context.Context, installmentID string) (*loanDomain.Installment, error) {
	var out loanDomain.Installment
	res := r.db.WithContext(ctx).Where("installment_id = ?", installmentID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetInstallmentByIDForUpdate(ctx context.Context, installmentID string) (*loanDomain.Installment, error) {
	var out loanDomain.Installment
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("installment_id = ?", installmentID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetInstallmentForUpdate(ctx context.Context, installmentNumericID uint64) (*loanDomain.Installment, error) {
	var out loanDomain.Installment
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("id = ?", installmentNumericID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListInstallments(ctx context.Context, loanNumericID uint64) ([]loanDomain.Installment, error) {
	var out []loanDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("sequence_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListUnsettledBefore(ctx context.Context, loanNumericID uint64, seq int) ([]loanDomain.Installment, error) {
	var out []loanDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND sequence_number < ? AND status NOT IN ?",
			loanNumericID, seq, []loanDomain.Status{loanDomain.StatusPaid, loanDomain.StatusPrepaid}).
		Order("sequence_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) SaveInstallment(ctx context.Context, ins *loanDomain.Installment) error {
	return r.db.WithContext(ctx).Save(ins).Error
}
