package models

// Category names a spending bucket. A global category has no owner and
// is visible to every user; a non-global category is visible only to
// its owner. UserID is nil exactly when IsGlobal is true.
type Category struct {
	Base
	Name     string  `gorm:"not null" json:"name"`
	IsGlobal bool    `gorm:"not null;default:false" json:"is_global"`
	UserID   *string `gorm:"type:uuid;index" json:"user_id,omitempty"`
}
