package payment

import "time"

type SubmitInput struct {
	InstallmentID      string  `json:"installment_id"`
	Amount             float64 `json:"amount"`
	Method             string  `json:"method"`
	OperationReference string  `json:"operation_reference"`
	ProofImageURL      string  `json:"proof_image_url"`
	Observations       string  `json:"observations"`
}

type SubmissionDTO struct {
	SubmissionID       string     `json:"submission_id"`
	InstallmentID      string     `json:"installment_id"`
	Amount             float64    `json:"amount"`
	Method             string     `json:"method"`
	OperationReference string     `json:"operation_reference"`
	ProofImageURL      string     `json:"proof_image_url"`
	Observations       string     `json:"observations,omitempty"`
	Status             string     `json:"status"`
	RejectReason       string     `json:"reject_reason,omitempty"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
}

// FileRefDTO is an opaque locator resolved by the external file store.
type FileRefDTO struct {
	URL string `json:"url"`
}
