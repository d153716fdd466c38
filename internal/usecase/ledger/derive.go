package ledger

import (
	"time"

	"prestago-backend/internal/domain/loan"
)

// dateOf truncates to a calendar date in UTC. Due dates are stored as DATE
// columns, so all comparisons happen at day granularity.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysOverdue returns whole days elapsed since the due date, never negative.
func DaysOverdue(now time.Time, dueDate time.Time) int {
	diff := dateOf(now).Sub(dateOf(dueDate))
	if diff <= 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}

// EffectiveStatus maps the persisted status plus the current date to the
// status reported to callers. It is pure and safe to evaluate on every read;
// nothing date-driven is ever written back.
func EffectiveStatus(ins *loan.Installment, now time.Time) Status {
	switch ins.Status {
	case loan.StatusPaid:
		return StatusPaid
	case loan.StatusPrepaid:
		return StatusPrepaid
	case loan.StatusPaymentSubmitted:
		return StatusPaymentSubmitted
	}
	today, due := dateOf(now), dateOf(ins.DueDate)
	switch {
	case today.Equal(due):
		return StatusDueToday
	case today.After(due):
		return StatusOverdue
	default:
		return StatusPending
	}
}

// LateFee returns the accrued fee after applying the negotiated reduction.
func LateFee(ins *loan.Installment, now time.Time, policy LateFeePolicy) float64 {
	fee := policy.Fee(DaysOverdue(now, ins.DueDate), ins.BaseAmount)
	if fee <= 0 {
		return 0
	}
	return fee * (1 - ins.LateFeeReductionPercent/100)
}

// AmountDue is the payable total: base amount plus the reduced late fee.
func AmountDue(ins *loan.Installment, now time.Time, policy LateFeePolicy) float64 {
	return ins.BaseAmount + LateFee(ins, now, policy)
}

// IsPayable reports whether the installment may receive a payment now: every
// lower sequence number of the same loan must be settled, and the installment
// itself must not be settled already. The slice must contain the loan's full
// schedule.
func IsPayable(all []loan.Installment, target *loan.Installment) bool {
	if target.Status.Terminal() {
		return false
	}
	for i := range all {
		if all[i].LoanID != target.LoanID {
			continue
		}
		if all[i].SequenceNumber < target.SequenceNumber && !all[i].Status.Terminal() {
			return false
		}
	}
	return true
}

// QualifiesPrepaid decides whether settling now counts as prepaid under the
// configured cutoff. Prepaid additionally requires full settlement: inside the
// cutoff window no late fee has accrued, so the balance is the base amount.
func QualifiesPrepaid(ins *loan.Installment, amountPaid float64, now time.Time, cutoff PrepaidCutoff) bool {
	if amountPaid < ins.BaseAmount {
		return false
	}
	today, due := dateOf(now), dateOf(ins.DueDate)
	if cutoff == PrepaidUntilOverdue {
		return !today.After(due)
	}
	return today.Before(due)
}
