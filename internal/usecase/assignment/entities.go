package assignment

import "time"

type CreateInput struct {
	ClientID    string `json:"client_id"`
	GuarantorID string `json:"guarantor_id"`
}

type AssignmentDTO struct {
	AssignmentID string    `json:"assignment_id"`
	ClientID     string    `json:"client_id"`
	GuarantorID  string    `json:"guarantor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// EnrichedDTO carries directory display attributes for listings.
type EnrichedDTO struct {
	AssignmentID      string    `json:"assignment_id"`
	ClientID          string    `json:"client_id"`
	ClientName        string    `json:"client_name"`
	ClientDocument    string    `json:"client_document"`
	GuarantorID       string    `json:"guarantor_id"`
	GuarantorName     string    `json:"guarantor_name"`
	GuarantorDocument string    `json:"guarantor_document"`
	CreatedAt         time.Time `json:"created_at"`
}
