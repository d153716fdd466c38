package directory

import "context"

// Repository is strictly read-only; the directory is owned elsewhere.
type Repository interface {
	GetClientByID(ctx context.Context, clientID string) (*Client, error)
	GetGuarantorByID(ctx context.Context, guarantorID string) (*Guarantor, error)
	// Batch lookups used to enrich assignment listings.
	GetClientsByIDs(ctx context.Context, clientIDs []string) (map[string]*Client, error)
	GetGuarantorsByIDs(ctx context.Context, guarantorIDs []string) (map[string]*Guarantor, error)
}
