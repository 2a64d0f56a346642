// Package domain contains the persistence model for payment transactions.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusSuccess  TransactionStatus = "SUCCESS"
	StatusFailed   TransactionStatus = "FAILED"
	StatusRefunded TransactionStatus = "REFUNDED"
)

type TransactionType string

const (
	TypeTopup    TransactionType = "TOPUP"
	TypePurchase TransactionType = "PURCHASE"
	TypeRefund   TransactionType = "REFUND"
)

// Transaction is one billing record in minor currency units. The billing
// subsystem owns the table; this service only reads it.
type Transaction struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	UserID    snowflake.ID      `gorm:"not null;index" json:"user_id"`
	Amount    int64             `gorm:"not null" json:"amount"`
	Status    TransactionStatus `gorm:"type:text;not null" json:"status"`
	Type      TransactionType   `gorm:"type:text;not null" json:"type"`
	CreatedAt time.Time         `gorm:"not null;index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Transaction) TableName() string { return "transactions" }

// RevenueTypes are the transaction types counted toward revenue.
var RevenueTypes = []TransactionType{TypeTopup, TypePurchase}
