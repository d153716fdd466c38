package ledger

import (
	"context"
	"fmt"
	"time"

	"prestago-backend/internal/domain/loan"

	"github.com/sirupsen/logrus"
)

type Usecase struct {
	loans  loan.Repository
	policy LateFeePolicy
	log    *logrus.Logger
	now    func() time.Time
}

func NewUsecase(loans loan.Repository, policy LateFeePolicy, log *logrus.Logger) *Usecase {
	return &Usecase{loans: loans, policy: policy, log: log, now: time.Now}
}

// ListPending returns the client's loans with their unsettled installments,
// each carrying the derived status, the adjusted amount due and the payability
// flag. Statuses are recomputed from dates on every call; nothing is written.
func (u *Usecase) ListPending(ctx context.Context, clientID string) ([]LoanGroupDTO, error) {
	loans, err := u.loans.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()

	out := make([]LoanGroupDTO, 0, len(loans))
	for _, l := range loans {
		schedule, err := u.loans.ListInstallments(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		group := LoanGroupDTO{
			LoanID:           l.LoanID,
			Principal:        l.Principal,
			Modality:         string(l.Modality),
			InstallmentCount: l.InstallmentCount,
			Frequency:        l.Frequency,
		}
		for i := range schedule {
			ins := &schedule[i]
			if ins.Status.Terminal() {
				continue
			}
			group.Installments = append(group.Installments, u.toDTO(ins, schedule, now))
		}
		if len(group.Installments) > 0 {
			out = append(out, group)
		}
	}
	return out, nil
}

// ListPaid returns the loan's settled installments ordered by sequence.
func (u *Usecase) ListPaid(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	schedule, err := u.loans.ListInstallments(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()

	out := make([]InstallmentDTO, 0, len(schedule))
	for i := range schedule {
		if !schedule[i].Status.Terminal() {
			continue
		}
		out = append(out, u.toDTO(&schedule[i], schedule, now))
	}
	return out, nil
}

func (u *Usecase) toDTO(ins *loan.Installment, schedule []loan.Installment, now time.Time) InstallmentDTO {
	status := EffectiveStatus(ins, now)
	days := DaysOverdue(now, ins.DueDate)
	fee := LateFee(ins, now, u.policy)
	if ins.Status.Terminal() {
		// Settled rows stop accruing; report them at face value.
		days, fee = 0, 0
	}
	dto := InstallmentDTO{
		InstallmentID:           ins.InstallmentID,
		SequenceNumber:          ins.SequenceNumber,
		DueDate:                 dateOf(ins.DueDate).Format("2006-01-02"),
		BaseAmount:              ins.BaseAmount,
		LateFeeAmount:           fee,
		LateFeeReductionPercent: ins.LateFeeReductionPercent,
		AmountDue:               ins.BaseAmount + fee,
		DaysOverdue:             days,
		Status:                  status,
		IsPayable:               IsPayable(schedule, ins),
		UpdatedAt:               ins.UpdatedAt,
	}
	switch {
	case status == StatusOverdue && ins.LateFeeReductionPercent > 0:
		dto.Message = fmt.Sprintf("%d day(s) overdue; late fee reduced by %.0f%%, total due %.2f",
			days, ins.LateFeeReductionPercent, dto.AmountDue)
	case status == StatusOverdue:
		dto.Message = fmt.Sprintf("%d day(s) overdue; total due %.2f", days, dto.AmountDue)
	case status == StatusDueToday:
		dto.Message = "due today"
	case status == StatusPaymentSubmitted:
		dto.Message = "payment under review"
	}
	return dto
}
