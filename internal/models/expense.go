package models

import "time"

// TransactionType tags an expense record as income or spending.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CR"
	TransactionTypeDebit  TransactionType = "DR"
)

// Expense is a single ledger entry. The category is a plain string
// reference, not a foreign key; the date is user-supplied and distinct
// from the record's creation timestamp. Expenses are never updated in
// place, only created and deleted.
type Expense struct {
	Base
	UserID          string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Category        string          `gorm:"not null" json:"category"`
	Description     string          `json:"description"`
	Date            time.Time       `gorm:"not null" json:"date"`
	TransactionType TransactionType `gorm:"not null" json:"transaction_type"`
}
