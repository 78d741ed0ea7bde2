package integration

import (
	"fmt"
	"net/http"
	"testing"

	"centsible/internal/models"
)

func TestTransactionFlow_CreateTagUpdate(t *testing.T) {
	app := setupApp(t)
	app.seedUser(t, "txn@test.com", "password123", models.RoleUser)
	token := app.login(t, "txn@test.com", "password123")

	// A category to tag with
	rec := app.request("POST", "/api/v1/categories", `{"name":"Groceries","matchAll":false}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("category create failed: %d %s", rec.Code, rec.Body.String())
	}
	categoryID := parseJSON(t, rec)["id"].(string)

	// Create a tagged transaction
	body := fmt.Sprintf(`{
		"date": "2024-06-01T00:00:00Z",
		"amount": -12.90,
		"name": "CARD PAYMENT SUPERMARKET",
		"type": "DEBIT",
		"publicId": "stmt-000123",
		"currency": "EUR",
		"balance": 987.65,
		"bankId": "30004",
		"accountId": "00012345678",
		"categoryIds": [%q]
	}`, categoryID)
	rec = app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("transaction create failed: %d %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	transactionID := created["id"].(string)
	if got := len(created["categories"].([]interface{})); got != 1 {
		t.Fatalf("expected 1 category on transaction, got %d", got)
	}

	// Patch the amount only; the tag stays
	rec = app.request("PATCH", "/api/v1/transactions/"+transactionID, `{"amount":-14.20}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)
	if updated["amount"].(float64) != -14.20 {
		t.Errorf("amount not updated: %v", updated["amount"])
	}
	if got := len(updated["categories"].([]interface{})); got != 1 {
		t.Errorf("category links should survive a field patch, got %d", got)
	}

	// Clear the tags with an explicit empty list
	rec = app.request("PATCH", "/api/v1/transactions/"+transactionID, `{"categoryIds":[]}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear failed: %d %s", rec.Code, rec.Body.String())
	}
	cleared := parseJSON(t, rec)
	if got := len(cleared["categories"].([]interface{})); got != 0 {
		t.Errorf("expected no categories after clearing, got %d", got)
	}
}

func TestTransactionFlow_RejectsForeignCategory(t *testing.T) {
	app := setupApp(t)
	app.seedUser(t, "carol@test.com", "password123", models.RoleUser)
	app.seedUser(t, "dave@test.com", "password123", models.RoleUser)
	carolToken := app.login(t, "carol@test.com", "password123")
	daveToken := app.login(t, "dave@test.com", "password123")

	rec := app.request("POST", "/api/v1/categories", `{"name":"Carol only","matchAll":false}`, carolToken)
	categoryID := parseJSON(t, rec)["id"].(string)

	body := fmt.Sprintf(`{
		"date": "2024-06-01T00:00:00Z",
		"amount": -5,
		"name": "x",
		"type": "DEBIT",
		"publicId": "p1",
		"currency": "EUR",
		"balance": 0,
		"bankId": "1",
		"accountId": "1",
		"categoryIds": [%q]
	}`, categoryID)
	rec = app.request("POST", "/api/v1/transactions", body, daveToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when tagging a foreign category, got %d: %s", rec.Code, rec.Body.String())
	}

	// Nothing was written
	var count int64
	app.DB.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no transactions after failed create, found %d", count)
	}
}

func TestUserFlow_AdminLifecycle(t *testing.T) {
	app := setupApp(t)
	app.seedUser(t, "boss@test.com", "password123", models.RoleAdmin)
	adminToken := app.login(t, "boss@test.com", "password123")

	// Admin creates a user
	rec := app.request("POST", "/api/v1/users",
		`{"email":"new@test.com","password":"initial-pass"}`, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("user create failed: %d %s", rec.Code, rec.Body.String())
	}
	newID := parseJSON(t, rec)["id"].(string)

	// The new user can log in and change their own password
	newToken := app.login(t, "new@test.com", "initial-pass")
	rec = app.request("PATCH", "/api/v1/users/"+newID, `{"password":"rotated-pass"}`, newToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("self update failed: %d %s", rec.Code, rec.Body.String())
	}
	app.login(t, "new@test.com", "rotated-pass")

	// But cannot grant themselves ADMIN
	rec = app.request("PATCH", "/api/v1/users/"+newID, `{"role":"ADMIN"}`, newToken)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 on self escalation, got %d", rec.Code)
	}

	// Admin removes the account and everything it owned
	rec = app.request("DELETE", "/api/v1/users/"+newID, "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("user delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/auth/login",
		`{"email":"new@test.com","password":"rotated-pass"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("deleted user should not log in, got %d", rec.Code)
	}
}
