package directorymock

import (
	"context"

	domain "prestago-backend/internal/domain/directory"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies directory.Repository.
type Repo struct {
	GetClientByIDFn      func(ctx context.Context, clientID string) (*domain.Client, error)
	GetGuarantorByIDFn   func(ctx context.Context, guarantorID string) (*domain.Guarantor, error)
	GetClientsByIDsFn    func(ctx context.Context, clientIDs []string) (map[string]*domain.Client, error)
	GetGuarantorsByIDsFn func(ctx context.Context, guarantorIDs []string) (map[string]*domain.Guarantor, error)
}

func (m *Repo) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetClientByIDFn != nil {
		return m.GetClientByIDFn(ctx, clientID)
	}
	return &domain.Client{ClientID: clientID}, nil
}

func (m *Repo) GetGuarantorByID(ctx context.Context, guarantorID string) (*domain.Guarantor, error) {
	if m.GetGuarantorByIDFn != nil {
		return m.GetGuarantorByIDFn(ctx, guarantorID)
	}
	return &domain.Guarantor{GuarantorID: guarantorID}, nil
}

func (m *Repo) GetClientsByIDs(ctx context.Context, clientIDs []string) (map[string]*domain.Client, error) {
	if m.GetClientsByIDsFn != nil {
		return m.GetClientsByIDsFn(ctx, clientIDs)
	}
	return map[string]*domain.Client{}, nil
}

func (m *Repo) GetGuarantorsByIDs(ctx context.Context, guarantorIDs []string) (map[string]*domain.Guarantor, error) {
	if m.GetGuarantorsByIDsFn != nil {
		return m.GetGuarantorsByIDsFn(ctx, guarantorIDs)
	}
	return map[string]*domain.Guarantor{}, nil
}
