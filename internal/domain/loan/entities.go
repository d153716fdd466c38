package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("loan not found")
	ErrInstallmentNotFound = errors.New("installment not found")
)

type Modality string

const (
	ModalityDaily   Modality = "daily"
	ModalityWeekly  Modality = "weekly"
	ModalityMonthly Modality = "monthly"
)

// Status is the persisted installment status. Date-driven states (due today,
// overdue) are derived on read from due_date and are never stored.
type Status string

const (
	StatusPending          Status = "pending"
	StatusPaymentSubmitted Status = "payment_submitted"
	StatusPaid             Status = "paid"
	StatusPrepaid          Status = "prepaid"
)

// Terminal reports whether the installment is settled.
func (s Status) Terminal() bool { return s == StatusPaid || s == StatusPrepaid }

// Loan is created by the origination process; this service only reads it.
type Loan struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	LoanID           string    `gorm:"column:loan_id;type:char(32);uniqueIndex:ux_loans_loan_id"`
	ClientID         string    `gorm:"column:client_id;type:char(32);index:idx_loans_client_id"`
	Principal        float64   `gorm:"column:principal;type:decimal(18,2)"`
	Modality         Modality  `gorm:"column:modality;size:16"`
	InstallmentCount int       `gorm:"column:installment_count"`
	// Frequency is the number of days between consecutive due dates (1 for
	// daily, 7 for weekly, 30 for monthly). Written by origination.
	Frequency int `gorm:"column:frequency"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Loan) TableName() string { return "loans" }

// Installment is one row of a loan's repayment schedule. SequenceNumber is
// 1-based and unique within the loan; settlement must follow sequence order.
type Installment struct {
	ID                      uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	InstallmentID           string    `gorm:"column:installment_id;type:char(32);not null;uniqueIndex:ux_installments_installment_id"`
	LoanID                  uint64    `gorm:"column:loan_id;not null;uniqueIndex:ux_installments_loan_seq,priority:1"`
	SequenceNumber          int       `gorm:"column:sequence_number;not null;uniqueIndex:ux_installments_loan_seq,priority:2"`
	DueDate                 time.Time `gorm:"column:due_date;type:date;not null"`
	BaseAmount              float64   `gorm:"column:base_amount;type:decimal(18,2);not null"`
	LateFeeReductionPercent float64   `gorm:"column:late_fee_reduction_percent;type:decimal(5,2);default:0"`
	Status                  Status    `gorm:"column:status;size:24;default:'pending'"`
	CreatedAt               time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Installment) TableName() string { return "installments" }
