package payment

import (
	"context"
	"errors"
	"regexp"
	"time"

	domainLoan "prestago-backend/internal/domain/loan"
	domainPayment "prestago-backend/internal/domain/payment"
	"prestago-backend/internal/domain/uow"
	"prestago-backend/internal/usecase/ledger"
	"prestago-backend/pkg/id"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid submission input")

var reDigits = regexp.MustCompile(`^[0-9]+$`)

type Usecase struct {
	loans    domainLoan.Repository
	payments domainPayment.Repository
	uow      uow.UnitOfWork
	cutoff   ledger.PrepaidCutoff
	log      *logrus.Logger
	now      func() time.Time
}

func NewUsecase(loans domainLoan.Repository, payments domainPayment.Repository, tx uow.UnitOfWork, cutoff ledger.PrepaidCutoff, log *logrus.Logger) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx, cutoff: cutoff, log: log, now: time.Now}
}

// Submit records a payment claim for one installment and parks it for review.
// The payability re-check, the duplicate guard and the insert run under a row
// lock on the installment, so two concurrent submissions cannot both land.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmissionDTO, error) {
	if in.Amount <= 0 ||
		(domainPayment.Method(in.Method) != domainPayment.MethodYape &&
			domainPayment.Method(in.Method) != domainPayment.MethodBankDeposit) ||
		!reDigits.MatchString(in.OperationReference) ||
		in.ProofImageURL == "" {
		return nil, ErrInvalidInput
	}

	var dto *SubmissionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ins, err := r.Loans.GetInstallmentByIDForUpdate(ctx, in.InstallmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrInstallmentNotFound
			}
			return err
		}

		if ins.Status.Terminal() {
			return domainPayment.ErrInstallmentNotPayable
		}
		unsettled, err := r.Loans.ListUnsettledBefore(ctx, ins.LoanID, ins.SequenceNumber)
		if err != nil {
			return err
		}
		if len(unsettled) > 0 {
			return domainPayment.ErrInstallmentNotPayable
		}

		_, err = r.Payments.GetPendingByInstallmentID(ctx, ins.ID)
		switch {
		case err == nil:
			return domainPayment.ErrDuplicateSubmission
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		s := &domainPayment.Submission{
			SubmissionID:       id.NewID32(),
			InstallmentID:      ins.ID,
			Amount:             in.Amount,
			Method:             domainPayment.Method(in.Method),
			OperationReference: in.OperationReference,
			ProofImageURL:      in.ProofImageURL,
			Observations:       in.Observations,
			Status:             domainPayment.StatusPendingReview,
			SubmittedAt:        u.now().UTC(),
		}
		if err := r.Payments.Create(ctx, s); err != nil {
			return err
		}

		ins.Status = domainLoan.StatusPaymentSubmitted
		if err := r.Loans.SaveInstallment(ctx, ins); err != nil {
			return err
		}

		dto = toDTO(s, in.InstallmentID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"submission_id":  dto.SubmissionID,
		"installment_id": dto.InstallmentID,
		"method":         dto.Method,
	}).Info("payment submitted for review")
	return dto, nil
}

// Approve settles the installment the submission points at. The result is
// prepaid only when the submission covers the full balance inside the
// configured cutoff; otherwise it settles as paid.
func (u *Usecase) Approve(ctx context.Context, submissionID string) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, ins, err := u.lockPending(ctx, r, submissionID)
		if err != nil {
			return err
		}

		now := u.now().UTC()
		s.Status = domainPayment.StatusApproved
		s.ResolvedAt = &now
		if err := r.Payments.Save(ctx, s); err != nil {
			return err
		}

		if ledger.QualifiesPrepaid(ins, s.Amount, now, u.cutoff) {
			ins.Status = domainLoan.StatusPrepaid
		} else {
			ins.Status = domainLoan.StatusPaid
		}
		return r.Loans.SaveInstallment(ctx, ins)
	})
	if err != nil {
		return err
	}
	u.log.WithField("submission_id", submissionID).Info("payment approved")
	return nil
}

// Reject keeps the submission as an audit record and puts the installment back
// to pending; its effective status re-derives from dates on the next read.
func (u *Usecase) Reject(ctx context.Context, submissionID, reason string) error {
	if reason == "" {
		return ErrInvalidInput
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, ins, err := u.lockPending(ctx, r, submissionID)
		if err != nil {
			return err
		}

		now := u.now().UTC()
		s.Status = domainPayment.StatusRejected
		s.RejectReason = reason
		s.ResolvedAt = &now
		if err := r.Payments.Save(ctx, s); err != nil {
			return err
		}

		ins.Status = domainLoan.StatusPending
		return r.Loans.SaveInstallment(ctx, ins)
	})
	if err != nil {
		return err
	}
	u.log.WithFields(logrus.Fields{
		"submission_id": submissionID,
		"reason":        reason,
	}).Info("payment rejected")
	return nil
}

// lockPending locks the submission and its installment, in that order, and
// fails unless the submission is still awaiting review.
func (u *Usecase) lockPending(ctx context.Context, r uow.Repos, submissionID string) (*domainPayment.Submission, *domainLoan.Installment, error) {
	s, err := r.Payments.GetBySubmissionIDForUpdate(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domainPayment.ErrSubmissionNotFound
		}
		return nil, nil, err
	}
	if s.Status != domainPayment.StatusPendingReview {
		return nil, nil, domainPayment.ErrAlreadyResolved
	}
	ins, err := r.Loans.GetInstallmentForUpdate(ctx, s.InstallmentID)
	if err != nil {
		return nil, nil, err
	}
	return s, ins, nil
}

// ProofOfPayment returns the newest non-rejected proof uploaded for the
// client's loan.
func (u *Usecase) ProofOfPayment(ctx context.Context, clientID, loanID string) (*FileRefDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	if l.ClientID != clientID {
		return nil, domainPayment.ErrProofNotAvailable
	}
	schedule, err := u.loans.ListInstallments(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(schedule))
	for i := range schedule {
		ids = append(ids, schedule[i].ID)
	}
	subs, err := u.payments.ListByInstallmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].Status != domainPayment.StatusRejected {
			return &FileRefDTO{URL: subs[i].ProofImageURL}, nil
		}
	}
	return nil, domainPayment.ErrProofNotAvailable
}

// Receipt returns the proof behind the approved payment of one installment.
func (u *Usecase) Receipt(ctx context.Context, installmentID string) (*FileRefDTO, error) {
	ins, err := u.loans.GetInstallmentByID(ctx, installmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrInstallmentNotFound
		}
		return nil, err
	}
	subs, err := u.payments.ListByInstallmentIDs(ctx, []uint64{ins.ID})
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].Status == domainPayment.StatusApproved {
			return &FileRefDTO{URL: subs[i].ProofImageURL}, nil
		}
	}
	return nil, domainPayment.ErrProofNotAvailable
}

func toDTO(s *domainPayment.Submission, publicInstallmentID string) *SubmissionDTO {
	return &SubmissionDTO{
		SubmissionID:       s.SubmissionID,
		InstallmentID:      publicInstallmentID,
		Amount:             s.Amount,
		Method:             string(s.Method),
		OperationReference: s.OperationReference,
		ProofImageURL:      s.ProofImageURL,
		Observations:       s.Observations,
		Status:             string(s.Status),
		RejectReason:       s.RejectReason,
		SubmittedAt:        s.SubmittedAt,
		ResolvedAt:         s.ResolvedAt,
	}
}
