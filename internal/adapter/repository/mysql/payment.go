package mysql

import (
	"context"

	paymentDomain "prestago-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, s *paymentDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PaymentRepository) Save(ctx context.Context, s *paymentDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *PaymentRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*paymentDomain.Submission, error) {
	var out paymentDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*paymentDomain.Submission, error) {
	var out paymentDomain.Submission
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("submission_id = ?", submissionID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetPendingByInstallmentID(ctx context.Context, installmentNumericID uint64) (*paymentDomain.Submission, error) {
	var out paymentDomain.Submission
	res := r.db.WithContext(ctx).
		Where("installment_id = ? AND status = ?", installmentNumericID, paymentDomain.StatusPendingReview).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByInstallmentIDs(ctx context.Context, installmentNumericIDs []uint64) ([]paymentDomain.Submission, error) {
	if len(installmentNumericIDs) == 0 {
		return nil, nil
	}
	var out []paymentDomain.Submission
	res := r.db.WithContext(ctx).
		Where("installment_id IN ?", installmentNumericIDs).
		Order("submitted_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
