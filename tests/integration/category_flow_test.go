package integration

import (
	"net/http"
	"testing"

	"moneytrack/internal/models"
)

func seedGlobalCategory(t *testing.T, app *testApp, name string) string {
	t.Helper()
	category := &models.Category{Name: name, IsGlobal: true}
	if err := app.DB.Create(category).Error; err != nil {
		t.Fatalf("failed to seed global category: %v", err)
	}
	return category.ID
}

func TestCategoryFlow_VisibilityAndCreation(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.registerUser(t, "alice@test.com", "alice", "password123")
	bobToken, _ := app.registerUser(t, "bob@test.com", "bob", "password123")

	seedGlobalCategory(t, app, "Food")

	// Alice creates a personal category.
	rec := app.request("POST", "/api/categories", `{"name":"Climbing"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}

	// Alice sees the global one plus her own.
	rec = app.request("GET", "/api/categories", "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list categories failed: %d", rec.Code)
	}
	aliceCats := parseJSON(t, rec)["categories"].([]interface{})
	if len(aliceCats) != 2 {
		t.Errorf("expected alice to see 2 categories, got %d", len(aliceCats))
	}

	// Bob only sees the global one.
	rec = app.request("GET", "/api/categories", "", bobToken)
	bobCats := parseJSON(t, rec)["categories"].([]interface{})
	if len(bobCats) != 1 {
		t.Errorf("expected bob to see 1 category, got %d", len(bobCats))
	}
}

func TestCategoryFlow_DeleteRules(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.registerUser(t, "calice@test.com", "calice", "password123")
	bobToken, _ := app.registerUser(t, "cbob@test.com", "cbob", "password123")

	globalID := seedGlobalCategory(t, app, "Rent")

	rec := app.request("POST", "/api/categories", `{"name":"Books"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	ownedID := parseJSON(t, rec)["category"].(map[string]interface{})["id"].(string)

	// Unknown ID: not found comes before any authorization verdict.
	rec = app.request("DELETE", "/api/categories/00000000-0000-0000-0000-000000000000", "", aliceToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown category, got %d", rec.Code)
	}

	// Global categories are protected for everyone.
	rec = app.request("DELETE", "/api/categories/"+globalID, "", aliceToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for global category, got %d", rec.Code)
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "GLOBAL_CATEGORY_PROTECTED" {
		t.Errorf("expected GLOBAL_CATEGORY_PROTECTED, got %v", errObj["code"])
	}

	// Bob cannot delete Alice's category.
	rec = app.request("DELETE", "/api/categories/"+ownedID, "", bobToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign category, got %d", rec.Code)
	}
	errObj = parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "CATEGORY_NOT_OWNED" {
		t.Errorf("expected CATEGORY_NOT_OWNED, got %v", errObj["code"])
	}

	// Alice can.
	rec = app.request("DELETE", "/api/categories/"+ownedID, "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/categories", "", aliceToken)
	if cats := parseJSON(t, rec)["categories"].([]interface{}); len(cats) != 1 {
		t.Errorf("expected only the global category to remain, got %d", len(cats))
	}
}
