package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneytrack/internal/errors"
	"moneytrack/internal/services"
)

// SalaryHandler handles salary record requests
type SalaryHandler struct {
	ledgerService    services.LedgerServicer
	dashboardService services.DashboardServicer
	auditService     services.AuditServicer
}

// NewSalaryHandler creates a new SalaryHandler
func NewSalaryHandler(ledgerService services.LedgerServicer, dashboardService services.DashboardServicer, auditService services.AuditServicer) *SalaryHandler {
	return &SalaryHandler{ledgerService: ledgerService, dashboardService: dashboardService, auditService: auditService}
}

// SalaryRequest represents the salary creation payload
type SalaryRequest struct {
	Amount interface{} `json:"amount"`
	Date   *string     `json:"date"`
}

// CreateSalary records a new salary entry
// @Summary     Create a salary record
// @Description Record a salary amount for a given date
// @Tags        salary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SalaryRequest true "Salary data"
// @Success     201 {object} map[string]interface{} "Salary created"
// @Failure     400 {object} ErrorResponse "Missing or invalid fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /salary [post]
func (h *SalaryHandler) CreateSalary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	salary, err := h.ledgerService.CreateSalary(userID, services.SalaryInput{
		Amount: req.Amount,
		Date:   req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "salary", salary.ID, c.ClientIP(), map[string]interface{}{
		"amount": salary.Amount,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Salary added successfully",
		"salary":  salary,
	})
}

// DeleteSalary removes one of the user's salary records
// @Summary     Delete a salary record
// @Description Delete a salary record by ID; deleting a record that is not yours is a no-op
// @Tags        salary
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Salary ID"
// @Success     200 {object} map[string]string "Salary deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /salary/{id} [delete]
func (h *SalaryHandler) DeleteSalary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	salaryID := c.Param("id")
	if err := h.ledgerService.DeleteSalary(userID, salaryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "salary", salaryID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Salary deleted successfully"})
}

// GetSalaryVisualization returns the salary-over-time series plus
// current-month totals
// @Summary     Salary visualization
// @Description Get monthly salary history and current-month credit and debit totals
// @Tags        salary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.VisualizationView "Salary visualization data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /salary/visualization [get]
func (h *SalaryHandler) GetSalaryVisualization(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.dashboardService.ComputeSalaryVisualization(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
