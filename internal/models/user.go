package models

// User represents a registered account. Users are immutable after
// registration and are never deleted.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	Expenses   []Expense  `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Salaries   []Salary   `gorm:"foreignKey:UserID" json:"salaries,omitempty"`
	Categories []Category `gorm:"foreignKey:UserID" json:"categories,omitempty"`
}
