package payload

import (
	"github.com/jellydator/validation"
)

type UserRequest struct {
	WalletAddress string `json:"walletAddress"`
}

func (u UserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.WalletAddress, validation.Required),
	)
}
