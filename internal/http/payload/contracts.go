package payload

import (
	"carecoin/internal/core"

	"github.com/jellydator/validation"
)

type DeployContractsRequest struct {
	NetworkID          *int64 `json:"networkId"`
	CareTokenAddress   string `json:"careTokenAddress"`
	CareReceiptAddress string `json:"careReceiptAddress"`
}

func (d DeployContractsRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.NetworkID, validation.NotNil),
		validation.Field(&d.CareTokenAddress, validation.Required),
		validation.Field(&d.CareReceiptAddress, validation.Required),
	)
}

func (d DeployContractsRequest) ToMessage() core.DeployMessage {
	return core.DeployMessage{
		NetworkID:          *d.NetworkID,
		CareTokenAddress:   d.CareTokenAddress,
		CareReceiptAddress: d.CareReceiptAddress,
	}
}

type SimulateDeployRequest struct {
	NetworkID *int64 `json:"networkId"`
}

func (s SimulateDeployRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.NetworkID, validation.NotNil),
	)
}
