package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain "prestago-backend/internal/domain/assignment"
	ucassignment "prestago-backend/internal/usecase/assignment"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Full admission flow against a real database: usecase + repos + transactions.
func TestGuarantorCapacityLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	dirRepo := NewDirectoryRepository(db)
	asgRepo := NewAssignmentRepository(db)
	u := ucassignment.NewUsecase(dirRepo, asgRepo, NewGormUoW(db), logrus.New())

	a := seedClient(t, db, "Ana Torres")
	b := seedClient(t, db, "Bruno Paredes")
	c := seedClient(t, db, "Carla Mendoza")
	g := seedGuarantor(t, db, "Gloria Ruiz")

	// A and B fill both of G's slots.
	first, err := u.Create(ctx, ucassignment.CreateInput{ClientID: a.ClientID, GuarantorID: g.GuarantorID})
	if err != nil {
		t.Fatalf("assign A: %v", err)
	}
	if _, err := u.Create(ctx, ucassignment.CreateInput{ClientID: b.ClientID, GuarantorID: g.GuarantorID}); err != nil {
		t.Fatalf("assign B: %v", err)
	}

	// C bounces off the capacity limit.
	_, err = u.Create(ctx, ucassignment.CreateInput{ClientID: c.ClientID, GuarantorID: g.GuarantorID})
	if !errors.Is(err, domain.ErrGuarantorCapacityExceeded) {
		t.Fatalf("assign C err = %v, want ErrGuarantorCapacityExceeded", err)
	}

	// A client never gets a second guarantor either.
	g2 := seedGuarantor(t, db, "Hugo Salas")
	_, err = u.Create(ctx, ucassignment.CreateInput{ClientID: a.ClientID, GuarantorID: g2.GuarantorID})
	if !errors.Is(err, domain.ErrClientAlreadyAssigned) {
		t.Fatalf("re-assign A err = %v, want ErrClientAlreadyAssigned", err)
	}

	// Freeing A's slot lets C in.
	if err := u.Remove(ctx, first.AssignmentID); err != nil {
		t.Fatalf("remove A: %v", err)
	}
	if _, err := u.Create(ctx, ucassignment.CreateInput{ClientID: c.ClientID, GuarantorID: g.GuarantorID}); err != nil {
		t.Fatalf("assign C after free slot: %v", err)
	}

	n, err := u.CountForGuarantor(ctx, g.GuarantorID)
	if err != nil || n != 2 {
		t.Fatalf("count = %d, %v; want 2", n, err)
	}
}

// Concurrent admissions for one guarantor must never exceed two commits. With
// sqlite the writes serialize on the database lock; the assertion is on the
// final state, matching what row locks guarantee on MySQL.
func TestGuarantorCapacity_ConcurrentCreates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	dirRepo := NewDirectoryRepository(db)
	asgRepo := NewAssignmentRepository(db)
	u := ucassignment.NewUsecase(dirRepo, asgRepo, NewGormUoW(db), logrus.New())

	g := seedGuarantor(t, db, "Gloria Ruiz")
	const attempts = 6
	clients := make([]string, attempts)
	for i := range clients {
		clients[i] = seedClient(t, db, "Cliente Concurrente").ClientID
	}

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = u.Create(ctx, ucassignment.CreateInput{ClientID: clients[i], GuarantorID: g.GuarantorID})
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else if !errors.Is(err, domain.ErrGuarantorCapacityExceeded) &&
			!errors.Is(err, gorm.ErrInvalidTransaction) {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	n, err := u.CountForGuarantor(ctx, g.GuarantorID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n > domain.MaxClientsPerGuarantor {
		t.Fatalf("guarantor ended with %d assignments, cap is %d", n, domain.MaxClientsPerGuarantor)
	}
	if int64(okCount) != n {
		t.Fatalf("successes (%d) disagree with stored rows (%d)", okCount, n)
	}
}
