package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventpass-app/eventpass-api/internal/pkg/entrycode"
)

type RegisterParticipantRequest struct {
	EventID uint   `json:"event_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	// EntryCode is optional; when empty a random code is generated.
	EntryCode string `json:"entry_code"`
}

func (req *RegisterParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.EntryCode, validation.Length(0, 20)),
	)
}

type VerifyEntryCodeRequest struct {
	EntryCode string `json:"entry_code"`
}

// Validate rejects malformed codes before any datastore lookup happens.
func (req *VerifyEntryCodeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EntryCode, validation.Required, validation.Match(entrycode.CodePattern)),
	)
}
