package repository

import "time"

type User struct {
	ID            int64     `gorm:"primaryKey"`
	WalletAddress string    `gorm:"type:text;uniqueIndex;not null"` // lowercase
	CreatedAt     time.Time `gorm:"not null;autoCreateTime"`
}

// ContractAddress holds the deployed contract pair of a network. The unique
// index on NetworkID makes the first deployment win.
type ContractAddress struct {
	ID                 int64     `gorm:"primaryKey"`
	NetworkID          int64     `gorm:"uniqueIndex;not null"`
	CareTokenAddress   *string   `gorm:"type:text"`
	CareReceiptAddress *string   `gorm:"type:text"`
	DeployedAt         time.Time `gorm:"not null;autoCreateTime"`
}

type CareToken struct {
	ID              int64     `gorm:"primaryKey"`
	TokenID         int64     `gorm:"not null"`
	SenderAddress   string    `gorm:"type:text;not null;index"` // lowercase
	Message         string    `gorm:"type:text;not null"`
	TransactionHash string    `gorm:"type:text;not null"`
	NetworkID       int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime"`
}

// CareReceipt references the original sender by address only, there is no
// foreign key to care_tokens.
type CareReceipt struct {
	ID                    int64     `gorm:"primaryKey"`
	TokenID               int64     `gorm:"not null"`
	ReceiverAddress       string    `gorm:"type:text;not null;index"` // lowercase
	OriginalSenderAddress string    `gorm:"type:text;not null"`       // lowercase
	AcknowledgmentMessage string    `gorm:"type:text;not null"`
	TransactionHash       string    `gorm:"type:text;not null"`
	NetworkID             int64     `gorm:"not null"`
	CreatedAt             time.Time `gorm:"not null;autoCreateTime"`
}
