package mysql

import (
	"context"

	"prestago-backend/internal/domain/uow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate applies a row lock where the dialect supports it. SQLite (used
// by the in-memory test databases) has no FOR UPDATE; its single-writer lock
// already serializes the transaction.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Directory:   &DirectoryRepository{db: tx},
			Assignments: &AssignmentRepository{db: tx},
			Loans:       &LoanRepository{db: tx},
			Payments:    &PaymentRepository{db: tx},
		}
		return fn(r)
	})
}
