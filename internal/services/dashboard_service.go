package services

import (
	"sort"
	"time"

	"moneytrack/internal/models"
)

// dashboardService computes aggregation views over a user's ledger.
// It reads through the ledger service and performs pure computation on
// the fetched records; either a complete view is returned or the fetch
// error propagates untouched.
type dashboardService struct {
	ledger LedgerServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(ledger LedgerServicer) DashboardServicer {
	return &dashboardService{ledger: ledger}
}

// ComputeDashboard builds the current-month summary for a user.
// Month membership compares calendar month and year of the record date
// against now; time-of-day never matters. A user with no expenses gets
// zero totals, an empty category map, and an empty list.
func (s *dashboardService) ComputeDashboard(userID string, now time.Time) (*DashboardView, error) {
	expenses, err := s.ledger.GetUserExpenses(userID)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		CurrentMonthName: now.Format("January 2006"),
		CategorySpending: make(map[string]float64),
		Expenses:         expenses,
	}
	if view.Expenses == nil {
		view.Expenses = []models.Expense{}
	}

	for _, e := range expenses {
		if !sameMonth(e.Date, now) {
			continue
		}
		switch e.TransactionType {
		case models.TransactionTypeCredit:
			view.TotalCredit += e.Amount
		case models.TransactionTypeDebit:
			view.TotalDebit += e.Amount
			view.CategorySpending[e.Category] += e.Amount
		}
	}

	// Day-of-month is never zero for a valid date, but the guard stays.
	if day := now.Day(); day > 0 {
		view.AvgDailySpend = view.TotalDebit / float64(day)
	}

	return view, nil
}

// ComputeSalaryVisualization builds the salary-over-time series plus
// current-month totals. Months are keyed by (year, month) and emitted
// chronologically ascending regardless of insertion order.
func (s *dashboardService) ComputeSalaryVisualization(userID string, now time.Time) (*VisualizationView, error) {
	salaries, err := s.ledger.GetUserSalaries(userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ledger.GetUserExpenses(userID)
	if err != nil {
		return nil, err
	}

	monthly := make(map[string]float64)
	for _, sal := range salaries {
		monthly[sal.Date.Format("2006-01")] += sal.Amount
	}

	// Lexicographic order on the 2006-01 keys is chronological order.
	keys := make([]string, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := SalarySeries{
		Months:  make([]string, 0, len(keys)),
		Amounts: make([]float64, 0, len(keys)),
	}
	for _, k := range keys {
		month, _ := time.Parse("2006-01", k)
		series.Months = append(series.Months, month.Format("Jan 2006"))
		series.Amounts = append(series.Amounts, monthly[k])
	}

	view := &VisualizationView{
		SalaryData:       series,
		CurrentSalary:    monthly[now.Format("2006-01")],
		CurrentMonthName: now.Format("January 2006"),
	}

	for _, e := range expenses {
		if !sameMonth(e.Date, now) {
			continue
		}
		switch e.TransactionType {
		case models.TransactionTypeCredit:
			view.TotalCredits += e.Amount
		case models.TransactionTypeDebit:
			view.TotalDebits += e.Amount
		}
	}

	return view, nil
}

// sameMonth reports whether two times fall in the same calendar month
// of the same year.
func sameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}
