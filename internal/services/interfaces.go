package services

import (
	"time"

	"moneytrack/internal/models"
	"moneytrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, username, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ExpenseInput carries the raw fields of an expense creation request.
// Amount is untyped because clients may send it as a JSON number or a
// numeric string; pointer fields distinguish absent from empty.
type ExpenseInput struct {
	Amount          interface{}
	Category        *string
	Description     string
	Date            *string
	TransactionType *string
}

// SalaryInput carries the raw fields of a salary creation request.
type SalaryInput struct {
	Amount interface{}
	Date   *string
}

// LedgerServicer defines the contract for expense and salary mutations
// and reads.
type LedgerServicer interface {
	CreateExpense(userID string, in ExpenseInput) (*models.Expense, error)
	CreateSalary(userID string, in SalaryInput) (*models.Salary, error)
	GetUserExpenses(userID string) ([]models.Expense, error)
	GetUserSalaries(userID string) ([]models.Salary, error)
	ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, expenseID string) error
	DeleteSalary(userID, salaryID string) error
}

// CategoryServicer defines the contract for category visibility and
// mutation rules.
type CategoryServicer interface {
	ListCategories(userID string) ([]models.Category, error)
	CreateCategory(userID, name string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// DashboardView is the current-month aggregation summary shown to a user.
// Expenses holds the full all-time list, newest date first.
type DashboardView struct {
	TotalCredit      float64            `json:"total_credit"`
	TotalDebit       float64            `json:"total_debit"`
	AvgDailySpend    float64            `json:"avg_daily_spend"`
	CurrentMonthName string             `json:"current_month_name"`
	CategorySpending map[string]float64 `json:"category_spending"`
	Expenses         []models.Expense   `json:"expenses"`
}

// SalarySeries holds parallel slices of month labels and summed amounts,
// chronologically ascending, one entry per month with at least one
// salary record.
type SalarySeries struct {
	Months  []string  `json:"months"`
	Amounts []float64 `json:"amounts"`
}

// VisualizationView is the salary-over-time summary plus current-month
// totals.
type VisualizationView struct {
	SalaryData       SalarySeries `json:"salary_data"`
	CurrentSalary    float64      `json:"current_salary"`
	CurrentMonthName string       `json:"current_month_name"`
	TotalCredits     float64      `json:"total_credits"`
	TotalDebits      float64      `json:"total_debits"`
}

// DashboardServicer defines the contract for the aggregation views.
// The reference time is a parameter so callers control the clock.
type DashboardServicer interface {
	ComputeDashboard(userID string, now time.Time) (*DashboardView, error)
	ComputeSalaryVisualization(userID string, now time.Time) (*VisualizationView, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
