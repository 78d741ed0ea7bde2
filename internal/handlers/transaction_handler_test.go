package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/query"
	"centsible/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	listTransactionsFn  func(p auth.Principal, opts *query.Options) ([]models.Transaction, error)
	getTransactionFn    func(p auth.Principal, transactionID string) (*models.Transaction, error)
	createTransactionFn func(p auth.Principal, input services.TransactionInput) (*models.Transaction, error)
	updateTransactionFn func(p auth.Principal, transactionID string, input services.TransactionUpdate) (*models.Transaction, error)
	deleteTransactionFn func(p auth.Principal, transactionID string) (int64, error)
}

func (m *mockTransactionService) ListTransactions(p auth.Principal, opts *query.Options) ([]models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(p, opts)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransaction(p auth.Principal, transactionID string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(p, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) CreateTransaction(p auth.Principal, input services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(p, input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(p auth.Principal, transactionID string, input services.TransactionUpdate) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(p, transactionID, input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(p auth.Principal, transactionID string) (int64, error) {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(p, transactionID)
	}
	return 1, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	authed := r.Group("", injectPrincipal(userPrincipal()))
	authed.GET("/transactions", handler.ListTransactions)
	authed.POST("/transactions", handler.CreateTransaction)
	authed.GET("/transactions/:id", handler.GetTransaction)
	authed.PATCH("/transactions/:id", handler.UpdateTransaction)
	authed.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

const validTransactionBody = `{
	"date": "2024-06-01T00:00:00Z",
	"amount": -12.90,
	"name": "CARD PAYMENT SUPERMARKET",
	"type": "DEBIT",
	"publicId": "stmt-000123",
	"currency": "EUR",
	"balance": 987.65,
	"bankId": "30004",
	"accountId": "00012345678"
}`

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("wraps results in a values envelope", func(t *testing.T) {
		txnSvc := &mockTransactionService{
			listTransactionsFn: func(_ auth.Principal, _ *query.Options) ([]models.Transaction, error) {
				return []models.Transaction{{Name: "CARD PAYMENT SUPERMARKET"}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txnSvc))

		rec := doRequest(r, "GET", "/transactions", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp TransactionListResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Values) != 1 || resp.Values[0].Name != "CARD PAYMENT SUPERMARKET" {
			t.Errorf("unexpected values: %+v", resp.Values)
		}
	})

	t.Run("returns empty values not null", func(t *testing.T) {
		txnSvc := &mockTransactionService{
			listTransactionsFn: func(_ auth.Principal, _ *query.Options) ([]models.Transaction, error) {
				return nil, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txnSvc))

		rec := doRequest(r, "GET", "/transactions", "")
		if rec.Body.String() != `{"values":[]}` {
			t.Errorf(`expected {"values":[]}, got %s`, rec.Body.String())
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var captured services.TransactionInput
		txnSvc := &mockTransactionService{
			createTransactionFn: func(_ auth.Principal, input services.TransactionInput) (*models.Transaction, error) {
				captured = input
				return &models.Transaction{Name: input.Name}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txnSvc))

		rec := doRequest(r, "POST", "/transactions", validTransactionBody)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Type != models.TrnTypeDebit || captured.Currency != "EUR" {
			t.Errorf("input not forwarded: %+v", captured)
		}
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		body := `{"date":"2024-06-01T00:00:00Z","amount":-1,"name":"x","type":"WIRE","publicId":"p","currency":"EUR","balance":0,"bankId":"1","accountId":"1"}`
		rec := doRequest(r, "POST", "/transactions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects bad currency code", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		body := `{"date":"2024-06-01T00:00:00Z","amount":-1,"name":"x","type":"DEBIT","publicId":"p","currency":"EURO","balance":0,"bankId":"1","accountId":"1"}`
		rec := doRequest(r, "POST", "/transactions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("keeps category list nil when omitted", func(t *testing.T) {
		var captured services.TransactionUpdate
		txnSvc := &mockTransactionService{
			updateTransactionFn: func(_ auth.Principal, _ string, input services.TransactionUpdate) (*models.Transaction, error) {
				captured = input
				return &models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txnSvc))

		rec := doRequest(r, "PATCH", "/transactions/99999999-9999-4999-8999-999999999999", `{"name":"RENAMED"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.CategoryIDs != nil {
			t.Error("omitted categoryIds should stay nil")
		}
		if captured.Name == nil || *captured.Name != "RENAMED" {
			t.Errorf("name not forwarded: %v", captured.Name)
		}
	})

	t.Run("propagates forbidden", func(t *testing.T) {
		txnSvc := &mockTransactionService{
			updateTransactionFn: func(_ auth.Principal, _ string, _ services.TransactionUpdate) (*models.Transaction, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txnSvc))

		rec := doRequest(r, "PATCH", "/transactions/99999999-9999-4999-8999-999999999999", `{"name":"x"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
