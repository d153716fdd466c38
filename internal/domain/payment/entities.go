package payment

import (
	"errors"
	"time"
)

var (
	ErrSubmissionNotFound    = errors.New("payment submission not found")
	ErrDuplicateSubmission   = errors.New("installment already has a submission pending review")
	ErrInstallmentNotPayable = errors.New("installment is not payable yet")
	ErrAlreadyResolved       = errors.New("payment submission already resolved")
	ErrProofNotAvailable     = errors.New("proof of payment not available")
)

type Method string

const (
	MethodYape        Method = "yape"
	MethodBankDeposit Method = "bank_deposit"
)

type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

// Submission is the client's claim that one installment was paid, backed by an
// uploaded proof image. Rows are kept forever as an audit trail, including
// rejected ones.
type Submission struct {
	ID                 uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	SubmissionID       string     `gorm:"column:submission_id;type:char(32);not null;uniqueIndex:ux_submissions_submission_id"`
	InstallmentID      uint64     `gorm:"column:installment_id;not null;index:idx_submissions_installment_id"`
	Amount             float64    `gorm:"column:amount;type:decimal(18,2);not null"`
	Method             Method     `gorm:"column:method;size:16;not null"`
	OperationReference string     `gorm:"column:operation_reference;size:32;not null"`
	ProofImageURL      string     `gorm:"column:proof_image_url;type:text;not null"`
	Observations       string     `gorm:"column:observations;type:text"`
	Status             Status     `gorm:"column:status;size:16;default:'pending_review'"`
	RejectReason       string     `gorm:"column:reject_reason;type:text"`
	SubmittedAt        time.Time  `gorm:"column:submitted_at;autoCreateTime"`
	ResolvedAt         *time.Time `gorm:"column:resolved_at"`
}

func (Submission) TableName() string { return "payment_submissions" }
