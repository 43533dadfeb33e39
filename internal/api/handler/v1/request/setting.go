package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PutSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (req *PutSettingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Key, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Value, validation.Length(0, 10000)),
	)
}
