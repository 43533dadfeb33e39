package response

import "github.com/eventpass-app/eventpass-api/internal/domain"

// ScanResult distinguishes a fresh check-in from a repeated scan.
type ScanResult struct {
	Participant    domain.Participant `json:"participant"`
	AlreadyEntered bool               `json:"already_entered"`
	Message        string             `json:"message"`
}
