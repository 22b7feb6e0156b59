package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneytrack/internal/errors"
	"moneytrack/internal/pagination"
	"moneytrack/internal/services"
)

// ExpenseHandler handles expense transaction requests
type ExpenseHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{ledgerService: ledgerService, auditService: auditService}
}

// ExpenseRequest represents the expense creation payload. Field presence
// and coercion are validated downstream so that one response can name
// every missing field.
type ExpenseRequest struct {
	Amount          interface{} `json:"amount"`
	Category        *string     `json:"category"`
	Description     string      `json:"description"`
	Date            *string     `json:"date"`
	TransactionType *string     `json:"transaction_type"`
}

// CreateExpense records a new expense transaction
// @Summary     Create an expense
// @Description Record a credit or debit transaction for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense data"
// @Success     201 {object} map[string]interface{} "Expense created"
// @Failure     400 {object} ErrorResponse "Missing or invalid fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.ledgerService.CreateExpense(userID, services.ExpenseInput{
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		Date:            req.Date,
		TransactionType: req.TransactionType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "expense", expense.ID, c.ClientIP(), map[string]interface{}{
		"amount":           expense.Amount,
		"category":         expense.Category,
		"transaction_type": expense.TransactionType,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense added successfully",
		"expense": expense,
	})
}

// ListExpenses returns a page of the user's expenses, newest date first
// @Summary     List expenses
// @Description Get a paginated list of the authenticated user's expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Success     200 {object} map[string]interface{} "Paginated expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	result, err := h.ledgerService.ListExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteExpense removes one of the user's expenses
// @Summary     Delete an expense
// @Description Delete an expense by ID; deleting a record that is not yours is a no-op
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	if err := h.ledgerService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
