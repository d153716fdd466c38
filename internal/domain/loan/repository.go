package loan

import "context"

type Repository interface {
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	ListByClientID(ctx context.Context, clientID string) ([]Loan, error)

	GetInstallmentByID(ctx context.Context, installmentID string) (*Installment, error)
	// GetInstallmentByIDForUpdate locks the row; used by payment submission and
	// resolution so status transitions cannot interleave.
	GetInstallmentByIDForUpdate(ctx context.Context, installmentID string) (*Installment, error)
	// GetInstallmentForUpdate is the numeric-FK variant used when resolving a
	// submission, which stores the installment's numeric id.
	GetInstallmentForUpdate(ctx context.Context, installmentNumericID uint64) (*Installment, error)
	ListInstallments(ctx context.Context, loanNumericID uint64) ([]Installment, error)
	// ListUnsettledBefore returns installments of the loan with a sequence
	// number strictly below seq that are not yet paid or prepaid.
	ListUnsettledBefore(ctx context.Context, loanNumericID uint64, seq int) ([]Installment, error)
	SaveInstallment(ctx context.Context, ins *Installment) error
}
