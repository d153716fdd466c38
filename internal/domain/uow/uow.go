package uow

import (
	"context"

	"prestago-backend/internal/domain/assignment"
	"prestago-backend/internal/domain/directory"
	"prestago-backend/internal/domain/loan"
	"prestago-backend/internal/domain/payment"
)

type Repos struct {
	Directory   directory.Repository
	Assignments assignment.Repository
	Loans       loan.Repository
	Payments    payment.Repository
}

// UnitOfWork runs fn with repos bound to one database transaction. Row locks
// taken inside fn are held until the transaction ends.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
