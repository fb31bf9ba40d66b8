package model

import (
	"time"
)

// User represents the database model for wallet owners
type User struct {
	ID                 string    `gorm:"primaryKey;size:64"`
	Email              string    `gorm:"size:255;index"`
	Balance            int64     `gorm:"not null;default:0;check:chk_users_balance_non_negative,balance >= 0"` // Balance in kobo
	DedicatedAccountID *string   `gorm:"size:64;uniqueIndex:idx_users_dedicated_account"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
