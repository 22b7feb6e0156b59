package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneytrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique
// email and username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", n),
		Username: fmt.Sprintf("user%d", n),
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense of the given type, amount, and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:          userID,
		Amount:          amount,
		Category:        fmt.Sprintf("Test Category %d", nextID()),
		Date:            date,
		TransactionType: txType,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestSalary creates a salary record with the given amount and date.
func CreateTestSalary(t *testing.T, db *gorm.DB, userID string, amount float64, date time.Time) *models.Salary {
	t.Helper()

	salary := &models.Salary{
		UserID: userID,
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(salary).Error; err != nil {
		t.Fatalf("failed to create test salary: %v", err)
	}
	return salary
}

// CreateTestCategory creates a non-global category owned by the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		UserID: &userID,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateGlobalCategory creates a global category with no owner.
func CreateGlobalCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     fmt.Sprintf("Global Category %d", nextID()),
		IsGlobal: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create global category: %v", err)
	}
	return category
}
