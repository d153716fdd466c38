package assignment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByAssignmentID(ctx context.Context, assignmentID string) (*Assignment, error)
	GetByClientID(ctx context.Context, clientID string) (*Assignment, error)
	// ListByGuarantorIDForUpdate locks the guarantor's assignment rows so the
	// capacity check and the insert observe the same count.
	ListByGuarantorIDForUpdate(ctx context.Context, guarantorID string) ([]Assignment, error)
	CountByGuarantorID(ctx context.Context, guarantorID string) (int64, error)
	List(ctx context.Context) ([]Assignment, error)
	// Delete removes the row permanently; returns ErrNotFound when absent.
	Delete(ctx context.Context, assignmentID string) error
}
