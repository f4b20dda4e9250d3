package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AdjustPointsRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

func (req *AdjustPointsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

func (req *ChangeRoleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In("member", "admin", "master")),
	)
}
