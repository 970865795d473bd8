package payload

import (
	"carecoin/internal/core"

	"github.com/jellydator/validation"
)

type CareTokenRequest struct {
	TokenID         *int64  `json:"tokenId"`
	SenderAddress   string  `json:"senderAddress"`
	Message         string  `json:"message"`
	TransactionHash *string `json:"transactionHash"`
	NetworkID       *int64  `json:"networkId"`
}

func (c CareTokenRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TokenID, validation.NotNil),
		validation.Field(&c.SenderAddress, validation.Required),
		validation.Field(&c.Message, messageRules()...),
		validation.Field(&c.TransactionHash, validation.NotNil),
		validation.Field(&c.NetworkID, validation.NotNil),
	)
}

func (c CareTokenRequest) ToMessage() core.CareTokenMessage {
	return core.CareTokenMessage{
		TokenID:         *c.TokenID,
		SenderAddress:   c.SenderAddress,
		Message:         c.Message,
		TransactionHash: *c.TransactionHash,
		NetworkID:       *c.NetworkID,
	}
}

type CareReceiptRequest struct {
	TokenID               *int64  `json:"tokenId"`
	ReceiverAddress       string  `json:"receiverAddress"`
	OriginalSenderAddress string  `json:"originalSenderAddress"`
	AcknowledgmentMessage string  `json:"acknowledgmentMessage"`
	TransactionHash       *string `json:"transactionHash"`
	NetworkID             *int64  `json:"networkId"`
}

func (c CareReceiptRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TokenID, validation.NotNil),
		validation.Field(&c.ReceiverAddress, validation.Required),
		validation.Field(&c.OriginalSenderAddress, validation.Required),
		validation.Field(&c.AcknowledgmentMessage, messageRules()...),
		validation.Field(&c.TransactionHash, validation.NotNil),
		validation.Field(&c.NetworkID, validation.NotNil),
	)
}

func (c CareReceiptRequest) ToMessage() core.CareReceiptMessage {
	return core.CareReceiptMessage{
		TokenID:               *c.TokenID,
		ReceiverAddress:       c.ReceiverAddress,
		OriginalSenderAddress: c.OriginalSenderAddress,
		AcknowledgmentMessage: c.AcknowledgmentMessage,
		TransactionHash:       *c.TransactionHash,
		NetworkID:             *c.NetworkID,
	}
}
