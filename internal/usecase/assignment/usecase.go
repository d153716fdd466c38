package assignment

import (
	"context"
	"errors"
	"strings"

	domainAssignment "prestago-backend/internal/domain/assignment"
	"prestago-backend/internal/domain/directory"
	"prestago-backend/internal/domain/uow"
	"prestago-backend/pkg/id"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	directory   directory.Repository
	assignments domainAssignment.Repository
	uow         uow.UnitOfWork
	log         *logrus.Logger
}

func NewUsecase(dir directory.Repository, assignments domainAssignment.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{directory: dir, assignments: assignments, uow: tx, log: log}
}

// Create links a client to a guarantor. The capacity check and the insert run
// in one transaction with the guarantor's assignment rows locked, so two
// concurrent requests cannot both observe a free slot and both commit.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*AssignmentDTO, error) {
	if in.ClientID == in.GuarantorID {
		return nil, domainAssignment.ErrSameParty
	}

	var dto *AssignmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Directory.GetClientByID(ctx, in.ClientID); err != nil {
			return err
		}
		if _, err := r.Directory.GetGuarantorByID(ctx, in.GuarantorID); err != nil {
			return err
		}

		// Lock before either check: the lock covers the guarantor's slot
		// count for the rest of the transaction.
		held, err := r.Assignments.ListByGuarantorIDForUpdate(ctx, in.GuarantorID)
		if err != nil {
			return err
		}

		_, err = r.Assignments.GetByClientID(ctx, in.ClientID)
		switch {
		case err == nil:
			return domainAssignment.ErrClientAlreadyAssigned
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if len(held) >= domainAssignment.MaxClientsPerGuarantor {
			return domainAssignment.ErrGuarantorCapacityExceeded
		}

		a := &domainAssignment.Assignment{
			AssignmentID: id.NewID32(),
			ClientID:     in.ClientID,
			GuarantorID:  in.GuarantorID,
		}
		if err := r.Assignments.Create(ctx, a); err != nil {
			return err
		}

		dto = &AssignmentDTO{
			AssignmentID: a.AssignmentID,
			ClientID:     a.ClientID,
			GuarantorID:  a.GuarantorID,
			CreatedAt:    a.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"assignment_id": dto.AssignmentID,
		"guarantor_id":  dto.GuarantorID,
	}).Info("assignment created")
	return dto, nil
}

// Remove hard-deletes the assignment. A repeat call reports ErrNotFound,
// which callers treat as already satisfied.
func (u *Usecase) Remove(ctx context.Context, assignmentID string) error {
	if err := u.assignments.Delete(ctx, assignmentID); err != nil {
		return err
	}
	u.log.WithField("assignment_id", assignmentID).Info("assignment removed")
	return nil
}

// List returns assignments enriched with directory names. When search is
// non-empty it keeps rows whose client or guarantor name contains it,
// case-insensitively.
func (u *Usecase) List(ctx context.Context, search string) ([]EnrichedDTO, error) {
	rows, err := u.assignments.List(ctx)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]string, 0, len(rows))
	guarantorIDs := make([]string, 0, len(rows))
	for _, a := range rows {
		clientIDs = append(clientIDs, a.ClientID)
		guarantorIDs = append(guarantorIDs, a.GuarantorID)
	}
	clients, err := u.directory.GetClientsByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	guarantors, err := u.directory.GetGuarantorsByIDs(ctx, guarantorIDs)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]EnrichedDTO, 0, len(rows))
	for _, a := range rows {
		e := EnrichedDTO{
			AssignmentID: a.AssignmentID,
			ClientID:     a.ClientID,
			GuarantorID:  a.GuarantorID,
			CreatedAt:    a.CreatedAt,
		}
		if c, ok := clients[a.ClientID]; ok {
			e.ClientName = c.FullName
			e.ClientDocument = c.DocumentNumber
		}
		if g, ok := guarantors[a.GuarantorID]; ok {
			e.GuarantorName = g.FullName
			e.GuarantorDocument = g.DocumentNumber
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.ClientName), needle) &&
			!strings.Contains(strings.ToLower(e.GuarantorName), needle) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// CountForGuarantor is an optimistic hint for presentation; the authoritative
// check happens inside Create's transaction.
func (u *Usecase) CountForGuarantor(ctx context.Context, guarantorID string) (int64, error) {
	return u.assignments.CountByGuarantorID(ctx, guarantorID)
}

func (u *Usecase) HasAssignment(ctx context.Context, clientID string) (bool, error) {
	_, err := u.assignments.GetByClientID(ctx, clientID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}
