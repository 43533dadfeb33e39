package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/eventpass-app/eventpass-api/internal/pkg/entrycode"
)

var errInvalidQRToken = errors.New("qr_token must be 32 lowercase hex characters")

type ScanRequest struct {
	QRToken string `json:"qr_token"`
}

func (req *ScanRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.QRToken, validation.Required),
	)
	if err != nil {
		return err
	}

	if !entrycode.ValidQRToken(req.QRToken) {
		return errInvalidQRToken
	}

	return nil
}
