package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func currentMonthDate(t *testing.T, day int) string {
	t.Helper()
	now := time.Now()
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func TestLedgerFlow_ExpensesAndDashboard(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "ledger@test.com", "ledger", "password123")

	date := currentMonthDate(t, 1)

	// Record a credit and two debits in the current month.
	entries := []string{
		fmt.Sprintf(`{"amount":100,"category":"Salary","date":%q,"transaction_type":"CR"}`, date),
		fmt.Sprintf(`{"amount":30,"category":"Food","date":%q,"transaction_type":"DR"}`, date),
		fmt.Sprintf(`{"amount":10,"category":"Transport","date":%q,"transaction_type":"DR"}`, date),
	}
	for _, body := range entries {
		rec := app.request("POST", "/api/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	// Dashboard reflects current-month totals and the category breakdown.
	rec := app.request("GET", "/api/dashboard", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_credit"] != float64(100) {
		t.Errorf("expected total_credit 100, got %v", result["total_credit"])
	}
	if result["total_debit"] != float64(40) {
		t.Errorf("expected total_debit 40, got %v", result["total_debit"])
	}
	spending := result["category_spending"].(map[string]interface{})
	if spending["Food"] != float64(30) || spending["Transport"] != float64(10) {
		t.Errorf("unexpected category_spending %v", spending)
	}
	if _, ok := spending["Salary"]; ok {
		t.Error("credits must not appear in category_spending")
	}
	expenses := result["expenses"].([]interface{})
	if len(expenses) != 3 {
		t.Errorf("expected 3 expenses in history, got %d", len(expenses))
	}
}

func TestLedgerFlow_MissingFieldsListedTogether(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "missing@test.com", "missing", "password123")

	rec := app.request("POST", "/api/expenses", `{"description":"nothing else"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "MISSING_FIELDS" {
		t.Fatalf("expected MISSING_FIELDS, got %v", errObj["code"])
	}
	fields := errObj["fields"].([]interface{})
	if len(fields) != 4 {
		t.Errorf("expected all 4 missing fields listed, got %v", fields)
	}
}

func TestLedgerFlow_InvalidTransactionType(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "txtype@test.com", "txtype", "password123")

	rec := app.request("POST", "/api/expenses",
		fmt.Sprintf(`{"amount":10,"category":"Food","date":%q,"transaction_type":"XX"}`, currentMonthDate(t, 1)), token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_TRANSACTION_TYPE" {
		t.Errorf("expected INVALID_TRANSACTION_TYPE, got %v", errObj["code"])
	}
}

func TestLedgerFlow_DeleteScopedToOwner(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := app.registerUser(t, "owner@test.com", "owner", "password123")
	otherToken, _ := app.registerUser(t, "other@test.com", "other", "password123")

	rec := app.request("POST", "/api/expenses",
		fmt.Sprintf(`{"amount":25,"category":"Food","date":%q,"transaction_type":"DR"}`, currentMonthDate(t, 1)), ownerToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	expenseID := created["expense"].(map[string]interface{})["id"].(string)

	// Another user deleting the record succeeds as a no-op.
	rec = app.request("DELETE", "/api/expenses/"+expenseID, "", otherToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 no-op delete, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/dashboard", "", ownerToken)
	result := parseJSON(t, rec)
	if expenses := result["expenses"].([]interface{}); len(expenses) != 1 {
		t.Fatalf("expected record to survive foreign delete, got %d expenses", len(expenses))
	}

	// The owner's delete actually removes it.
	rec = app.request("DELETE", "/api/expenses/"+expenseID, "", ownerToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete failed: %d", rec.Code)
	}

	rec = app.request("GET", "/api/dashboard", "", ownerToken)
	result = parseJSON(t, rec)
	if expenses := result["expenses"].([]interface{}); len(expenses) != 0 {
		t.Fatalf("expected empty expense history, got %d", len(expenses))
	}
}

func TestLedgerFlow_PaginatedListing(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "pages@test.com", "pages", "password123")

	for i := 1; i <= 5; i++ {
		body := fmt.Sprintf(`{"amount":%d,"category":"Food","date":%q,"transaction_type":"DR"}`,
			i, currentMonthDate(t, i))
		rec := app.request("POST", "/api/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/expenses?page=2&page_size=2", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"] != float64(5) {
		t.Errorf("expected total_items 5, got %v", result["total_items"])
	}
	if result["total_pages"] != float64(3) {
		t.Errorf("expected total_pages 3, got %v", result["total_pages"])
	}
	if data := result["data"].([]interface{}); len(data) != 2 {
		t.Errorf("expected 2 items on page 2, got %d", len(data))
	}
}
