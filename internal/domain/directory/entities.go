package directory

import (
	"errors"
	"time"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrGuarantorNotFound = errors.New("guarantor not found")
)

type DocumentType string

const (
	DocumentDNI DocumentType = "dni"
	DocumentRUC DocumentType = "ruc"
)

// Client is a read-only projection owned by the directory service.
// This service never writes to the clients table.
type Client struct {
	ID             uint64       `gorm:"primaryKey;column:id"`
	ClientID       string       `gorm:"column:client_id;type:char(32);uniqueIndex:ux_clients_client_id"`
	FullName       string       `gorm:"column:full_name;size:160"`
	DocumentType   DocumentType `gorm:"column:document_type;size:8"`
	DocumentNumber string       `gorm:"column:document_number;size:16"`
	Phone          string       `gorm:"column:phone;size:16"`
	CreatedAt      time.Time    `gorm:"column:created_at;autoCreateTime"`
}

func (Client) TableName() string { return "clients" }

// Guarantor has the same shape as Client but is a distinct projection: the
// admission rules never evaluate one person as both sides of a link.
type Guarantor struct {
	ID             uint64       `gorm:"primaryKey;column:id"`
	GuarantorID    string       `gorm:"column:guarantor_id;type:char(32);uniqueIndex:ux_guarantors_guarantor_id"`
	FullName       string       `gorm:"column:full_name;size:160"`
	DocumentType   DocumentType `gorm:"column:document_type;size:8"`
	DocumentNumber string       `gorm:"column:document_number;size:16"`
	Phone          string       `gorm:"column:phone;size:16"`
	CreatedAt      time.Time    `gorm:"column:created_at;autoCreateTime"`
}

func (Guarantor) TableName() string { return "guarantors" }
