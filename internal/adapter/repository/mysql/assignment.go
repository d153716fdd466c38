package mysql

import (
	"context"
	"errors"
	"strings"

	assignmentDomain "prestago-backend/internal/domain/assignment"

	"gorm.io/gorm"
)

type AssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *assignmentDomain.Assignment) error {
	err := r.db.WithContext(ctx).Create(a).Error
	// The unique index on client_id is the backstop for two concurrent
	// creates racing on the same client.
	if err != nil && isDuplicateKey(err) {
		return assignmentDomain.ErrClientAlreadyAssigned
	}
	return err
}

func (r *AssignmentRepository) GetByAssignmentID(ctx context.Context, assignmentID string) (*assignmentDomain.Assignment, error) {
	var out assignmentDomain.Assignment
	res := r.db.WithContext(ctx).Where("assignment_id = ?", assignmentID).First(&out)
	return &out, res.Error
}

func (r *AssignmentRepository) GetByClientID(ctx context.Context, clientID string) (*assignmentDomain.Assignment, error) {
	var out assignmentDomain.Assignment
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

func (r *AssignmentRepository) ListByGuarantorIDForUpdate(ctx context.Context, guarantorID string) ([]assignmentDomain.Assignment, error) {
	var out []assignmentDomain.Assignment
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("guarantor_id = ?", guarantorID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *AssignmentRepository) CountByGuarantorID(ctx context.Context, guarantorID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&assignmentDomain.Assignment{}).
		Where("guarantor_id = ?", guarantorID).
		Count(&n)
	return n, res.Error
}

func (r *AssignmentRepository) List(ctx context.Context) ([]assignmentDomain.Assignment, error) {
	var out []assignmentDomain.Assignment
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *AssignmentRepository) Delete(ctx context.Context, assignmentID string) error {
	res := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Delete(&assignmentDomain.Assignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return assignmentDomain.ErrNotFound
	}
	return nil
}

// isDuplicateKey covers both the mysql driver error and the generic gorm
// translation, plus sqlite's message in tests.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
