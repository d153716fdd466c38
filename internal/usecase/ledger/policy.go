package ledger

// LateFeePolicy computes the accrued late fee for an overdue installment.
// The exact formula is deployment configuration, not business logic baked in
// here.
type LateFeePolicy interface {
	Fee(daysOverdue int, baseAmount float64) float64
}

// DailyRatePolicy charges a flat amount per day overdue.
type DailyRatePolicy struct{ RatePerDay float64 }

func (p DailyRatePolicy) Fee(daysOverdue int, baseAmount float64) float64 {
	if daysOverdue <= 0 {
		return 0
	}
	return float64(daysOverdue) * p.RatePerDay
}

// PrepaidCutoff decides when an approved payment still counts as prepaid.
type PrepaidCutoff string

const (
	// PrepaidUntilDueDate: settled strictly before the due date.
	PrepaidUntilDueDate PrepaidCutoff = "due_date"
	// PrepaidUntilOverdue: settled any time before the installment turns
	// overdue, the due date itself included.
	PrepaidUntilOverdue PrepaidCutoff = "overdue"
)
