package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type LotteryDrawRequest struct {
	ParticipantIDs []uint `json:"participantIds"`
	WinnerCount    int    `json:"winnerCount"`
	RemoveWinners  bool   `json:"removeWinners"`
}

func (req *LotteryDrawRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantIDs, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.WinnerCount, validation.Required, validation.Min(1), validation.Max(len(req.ParticipantIDs))),
	)
}
