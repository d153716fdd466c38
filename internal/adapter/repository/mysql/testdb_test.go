package mysql

import (
	"testing"
	"time"

	"prestago-backend/internal/domain/assignment"
	"prestago-backend/internal/domain/directory"
	"prestago-backend/internal/domain/loan"
	"prestago-backend/internal/domain/payment"
	"prestago-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB migrates the real models into an in-memory sqlite database. The
// schema uses no MySQL-only column types, so no sqlite-safe mirrors are
// needed.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection only: a :memory: database exists per connection, and the
	// single writer also serializes the concurrency tests.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&directory.Client{},
		&directory.Guarantor{},
		&assignment.Assignment{},
		&loan.Loan{},
		&loan.Installment{},
		&payment.Submission{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedClient(t *testing.T, db *gorm.DB, name string) *directory.Client {
	t.Helper()
	c := &directory.Client{
		ClientID:       id.NewID32(),
		FullName:       name,
		DocumentType:   directory.DocumentDNI,
		DocumentNumber: "40404040",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedGuarantor(t *testing.T, db *gorm.DB, name string) *directory.Guarantor {
	t.Helper()
	g := &directory.Guarantor{
		GuarantorID:    id.NewID32(),
		FullName:       name,
		DocumentType:   directory.DocumentDNI,
		DocumentNumber: "50505050",
	}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("seed guarantor: %v", err)
	}
	return g
}

// seedLoan creates a loan with count weekly installments starting at firstDue.
func seedLoan(t *testing.T, db *gorm.DB, clientID string, count int, firstDue time.Time) *loan.Loan {
	t.Helper()
	l := &loan.Loan{
		LoanID:           id.NewID32(),
		ClientID:         clientID,
		Principal:        float64(count) * 300,
		Modality:         loan.ModalityWeekly,
		InstallmentCount: count,
		Frequency:        7,
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	for i := 1; i <= count; i++ {
		ins := &loan.Installment{
			InstallmentID:  id.NewID32(),
			LoanID:         l.ID,
			SequenceNumber: i,
			DueDate:        firstDue.AddDate(0, 0, 7*(i-1)),
			BaseAmount:     300,
			Status:         loan.StatusPending,
		}
		if err := db.Create(ins).Error; err != nil {
			t.Fatalf("seed installment %d: %v", i, err)
		}
	}
	return l
}
