package core

import "time"

type User struct {
	ID            int64     `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Contracts serializes missing addresses as null.
type Contracts struct {
	ID                 int64     `json:"id"`
	NetworkID          int64     `json:"networkId"`
	CareTokenAddress   *string   `json:"careTokenAddress"`
	CareReceiptAddress *string   `json:"careReceiptAddress"`
	DeployedAt         time.Time `json:"deployedAt"`
}

type CareToken struct {
	ID              int64     `json:"id"`
	TokenID         int64     `json:"tokenId"`
	SenderAddress   string    `json:"senderAddress"`
	Message         string    `json:"message"`
	TransactionHash string    `json:"transactionHash"`
	NetworkID       int64     `json:"networkId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CareReceipt struct {
	ID                    int64     `json:"id"`
	TokenID               int64     `json:"tokenId"`
	ReceiverAddress       string    `json:"receiverAddress"`
	OriginalSenderAddress string    `json:"originalSenderAddress"`
	AcknowledgmentMessage string    `json:"acknowledgmentMessage"`
	TransactionHash       string    `json:"transactionHash"`
	NetworkID             int64     `json:"networkId"`
	CreatedAt             time.Time `json:"createdAt"`
}

type Stats struct {
	TotalSent      int    `json:"totalSent"`
	TotalReceived  int    `json:"totalReceived"`
	KindnessScore  int    `json:"kindnessScore"`
	RecentActivity int    `json:"recentActivity"`
	Level          string `json:"level"`
	Badge          string `json:"badge"`
}

type DeployMessage struct {
	NetworkID          int64
	CareTokenAddress   string
	CareReceiptAddress string
}

type CareTokenMessage struct {
	TokenID         int64
	SenderAddress   string
	Message         string
	TransactionHash string
	NetworkID       int64
}

type CareReceiptMessage struct {
	TokenID               int64
	ReceiverAddress       string
	OriginalSenderAddress string
	AcknowledgmentMessage string
	TransactionHash       string
	NetworkID             int64
}
