package mysql

import (
	"context"
	"errors"

	directoryDomain "prestago-backend/internal/domain/directory"

	"gorm.io/gorm"
)

// DirectoryRepository only ever issues SELECTs; the clients and guarantors
// tables are owned by the directory service.
type DirectoryRepository struct{ db *gorm.DB }

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) GetClientByID(ctx context.Context, clientID string) (*directoryDomain.Client, error) {
	var out directoryDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, directoryDomain.ErrClientNotFound
	}
	return &out, res.Error
}

func (r *DirectoryRepository) GetGuarantorByID(ctx context.Context, guarantorID string) (*directoryDomain.Guarantor, error) {
	var out directoryDomain.Guarantor
	res := r.db.WithContext(ctx).Where("guarantor_id = ?", guarantorID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, directoryDomain.ErrGuarantorNotFound
	}
	return &out, res.Error
}

func (r *DirectoryRepository) GetClientsByIDs(ctx context.Context, clientIDs []string) (map[string]*directoryDomain.Client, error) {
	out := make(map[string]*directoryDomain.Client, len(clientIDs))
	if len(clientIDs) == 0 {
		return out, nil
	}
	var rows []directoryDomain.Client
	res := r.db.WithContext(ctx).Where("client_id IN ?", clientIDs).Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	for i := range rows {
		out[rows[i].ClientID] = &rows[i]
	}
	return out, nil
}

func (r *DirectoryRepository) GetGuarantorsByIDs(ctx context.Context, guarantorIDs []string) (map[string]*directoryDomain.Guarantor, error) {
	out := make(map[string]*directoryDomain.Guarantor, len(guarantorIDs))
	if len(guarantorIDs) == 0 {
		return out, nil
	}
	var rows []directoryDomain.Guarantor
	res := r.db.WithContext(ctx).Where("guarantor_id IN ?", guarantorIDs).Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	for i := range rows {
		out[rows[i].GuarantorID] = &rows[i]
	}
	return out, nil
}
