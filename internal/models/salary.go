package models

import "time"

// Salary is an income record. Same lifecycle as Expense minus the
// category, description, and transaction type.
type Salary struct {
	Base
	UserID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount float64   `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"not null" json:"date"`
}
