package assignment

import (
	"errors"
	"time"
)

// MaxClientsPerGuarantor caps how many active clients one guarantor may back.
const MaxClientsPerGuarantor = 2

var (
	ErrNotFound                  = errors.New("assignment not found")
	ErrSameParty                 = errors.New("client and guarantor must be distinct directory entries")
	ErrClientAlreadyAssigned     = errors.New("client already has a guarantor assigned")
	ErrGuarantorCapacityExceeded = errors.New("guarantor already backs the maximum number of clients")
)

// Assignment links one client to one guarantor. Rows are never updated in
// place: changing a guarantor is delete-then-create. Removal is a hard delete.
type Assignment struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	AssignmentID string    `gorm:"column:assignment_id;type:char(32);not null;uniqueIndex:ux_assignments_assignment_id"`
	ClientID     string    `gorm:"column:client_id;type:char(32);not null;uniqueIndex:ux_assignments_client_id"`
	GuarantorID  string    `gorm:"column:guarantor_id;type:char(32);not null;index:idx_assignments_guarantor_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Assignment) TableName() string { return "assignments" }
