package payment

import "context"

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	Save(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	// GetBySubmissionIDForUpdate locks the row so approve and reject cannot
	// both resolve the same submission.
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	// GetPendingByInstallmentID returns the PENDING_REVIEW submission for the
	// installment, or gorm.ErrRecordNotFound.
	GetPendingByInstallmentID(ctx context.Context, installmentNumericID uint64) (*Submission, error)
	// ListByInstallmentIDs returns all submissions for the installments,
	// newest first. Used by proof/receipt projections.
	ListByInstallmentIDs(ctx context.Context, installmentNumericIDs []uint64) ([]Submission, error)
}
