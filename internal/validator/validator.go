// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("username", validateUsername)
	}
}

// validateTransactionType accepts only the CR (credit) and DR (debit) tags.
func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "CR", "DR":
		return true
	}
	return false
}

// validateUsername requires at least three non-space characters.
func validateUsername(fl validator.FieldLevel) bool {
	return len(strings.TrimSpace(fl.Field().String())) >= 3
}
