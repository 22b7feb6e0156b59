package services

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/gorm"

	apperrors "moneytrack/internal/errors"
	"moneytrack/internal/models"
	"moneytrack/internal/pagination"
)

// dateLayouts are the accepted calendar date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ledgerService handles expense and salary mutations and reads.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// CreateExpense validates the raw input and persists a new expense.
// Every missing required field is reported in a single error rather
// than one at a time.
func (s *ledgerService) CreateExpense(userID string, in ExpenseInput) (*models.Expense, error) {
	var missing []string
	if in.Amount == nil {
		missing = append(missing, "amount")
	}
	if in.Category == nil || *in.Category == "" {
		missing = append(missing, "category")
	}
	if in.Date == nil || *in.Date == "" {
		missing = append(missing, "date")
	}
	if in.TransactionType == nil || *in.TransactionType == "" {
		missing = append(missing, "transaction_type")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrMissingFields, missing)
	}

	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	txType := models.TransactionType(*in.TransactionType)
	if txType != models.TransactionTypeCredit && txType != models.TransactionTypeDebit {
		return nil, apperrors.ErrInvalidTransactionType
	}

	date, err := parseDate(*in.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:          userID,
		Amount:          amount,
		Category:        *in.Category,
		Description:     in.Description,
		Date:            date,
		TransactionType: txType,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// CreateSalary validates the raw input and persists a new salary record.
func (s *ledgerService) CreateSalary(userID string, in SalaryInput) (*models.Salary, error) {
	var missing []string
	if in.Amount == nil {
		missing = append(missing, "amount")
	}
	if in.Date == nil || *in.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrMissingFields, missing)
	}

	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(*in.Date)
	if err != nil {
		return nil, err
	}

	salary := &models.Salary{
		UserID: userID,
		Amount: amount,
		Date:   date,
	}

	if err := s.db.Create(salary).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return salary, nil
}

// GetUserExpenses retrieves all expenses for a user, newest date first.
func (s *ledgerService) GetUserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetUserSalaries retrieves all salary records for a user, newest date first.
func (s *ledgerService) GetUserSalaries(userID string) ([]models.Salary, error) {
	var salaries []models.Salary
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&salaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return salaries, nil
}

// ListExpenses retrieves a paginated list of a user's expenses, newest
// date first.
func (s *ledgerService) ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes an expense scoped by both record and owner.
// A delete that matches nothing is a silent no-op: callers cannot
// distinguish a missing record from one owned by somebody else, and a
// repeated delete of the same record still succeeds.
func (s *ledgerService) DeleteExpense(userID, expenseID string) error {
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).
		Delete(&models.Expense{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteSalary removes a salary record with the same semantics as
// DeleteExpense.
func (s *ledgerService) DeleteSalary(userID, salaryID string) error {
	if err := s.db.Where("id = ? AND user_id = ?", salaryID, userID).
		Delete(&models.Salary{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// parseAmount coerces a JSON value into a float. Numbers and numeric
// strings are both accepted; no sign constraint is applied.
func parseAmount(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, apperrors.ErrInvalidAmount
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, apperrors.ErrInvalidAmount
		}
		return f, nil
	default:
		return 0, apperrors.ErrInvalidAmount
	}
}

// parseDate parses a calendar date in RFC3339 or YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.ErrInvalidDate
}
