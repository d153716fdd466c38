package ledger

import "time"

// Status is the effective installment status reported to callers. It extends
// the persisted statuses with the two date-derived states.
type Status string

const (
	StatusPending          Status = "pending"
	StatusDueToday         Status = "due_today"
	StatusOverdue          Status = "overdue"
	StatusPaymentSubmitted Status = "payment_submitted"
	StatusPaid             Status = "paid"
	StatusPrepaid          Status = "prepaid"
)

type InstallmentDTO struct {
	InstallmentID           string    `json:"installment_id"`
	SequenceNumber          int       `json:"sequence_number"`
	DueDate                 string    `json:"due_date"` // YYYY-MM-DD
	BaseAmount              float64   `json:"base_amount"`
	LateFeeAmount           float64   `json:"late_fee_amount"`
	LateFeeReductionPercent float64   `json:"late_fee_reduction_percent"`
	AmountDue               float64   `json:"amount_due"`
	DaysOverdue             int       `json:"days_overdue"`
	Status                  Status    `json:"status"`
	IsPayable               bool      `json:"is_payable"`
	Message                 string    `json:"message,omitempty"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// LoanGroupDTO groups a loan's non-terminal installments for presentation.
type LoanGroupDTO struct {
	LoanID           string           `json:"loan_id"`
	Principal        float64          `json:"principal"`
	Modality         string           `json:"modality"`
	InstallmentCount int              `json:"installment_count"`
	Frequency        int              `json:"frequency"`
	Installments     []InstallmentDTO `json:"installments"`
}
