package model

import (
	"time"
)

// Transaction represents the database model for the credit audit log
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UserID      string    `gorm:"not null;size:64;uniqueIndex:idx_transactions_user_reference,priority:1;index:idx_transactions_user_created,priority:1"`
	Reference   string    `gorm:"not null;size:100;uniqueIndex:idx_transactions_user_reference,priority:2"`
	Type        string    `gorm:"not null;size:20"`
	Amount      string    `gorm:"not null;size:50"`
	AmountMinor int64     `gorm:"not null"`
	Title       string    `gorm:"size:255"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"not null;size:20"`
	EventType   string    `gorm:"size:50"`
	Metadata    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2,sort:desc"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
