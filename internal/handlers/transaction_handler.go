package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/services"
)

// transactionQueryFields maps the exposed transaction list fields to
// storage columns.
var transactionQueryFields = map[string]string{
	"id":        "id",
	"date":      "date",
	"amount":    "amount",
	"name":      "name",
	"type":      "type",
	"publicId":  "public_id",
	"currency":  "currency",
	"balance":   "balance",
	"bankId":    "bank_id",
	"accountId": "account_id",
}

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount and balance are pointers so that a literal 0 is
// distinguishable from an absent field.
type CreateTransactionRequest struct {
	Date        time.Time              `json:"date" binding:"required"`
	Amount      *float64               `json:"amount" binding:"required"`
	Name        string                 `json:"name" binding:"omitempty,max=255"`
	Type        models.TransactionType `json:"type" binding:"required,trn_type"`
	PublicID    string                 `json:"publicId" binding:"omitempty,max=255"`
	Currency    string                 `json:"currency" binding:"required,iso4217"`
	Balance     *float64               `json:"balance" binding:"required"`
	BankID      string                 `json:"bankId" binding:"omitempty,max=9"`
	AccountID   string                 `json:"accountId" binding:"omitempty,max=22"`
	CategoryIDs []string               `json:"categoryIds" binding:"omitempty,dive,uuid4"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Omitted fields keep their current value; an omitted
// category list keeps the current links.
type UpdateTransactionRequest struct {
	Date        *time.Time              `json:"date"`
	Amount      *float64                `json:"amount"`
	Name        *string                 `json:"name" binding:"omitempty,max=255"`
	Type        *models.TransactionType `json:"type" binding:"omitempty,trn_type"`
	PublicID    *string                 `json:"publicId" binding:"omitempty,max=255"`
	Currency    *string                 `json:"currency" binding:"omitempty,iso4217"`
	Balance     *float64                `json:"balance"`
	BankID      *string                 `json:"bankId" binding:"omitempty,max=9"`
	AccountID   *string                 `json:"accountId" binding:"omitempty,max=22"`
	CategoryIDs []string                `json:"categoryIds" binding:"omitempty,dive,uuid4"`
}

// TransactionListResponse wraps a transaction listing.
type TransactionListResponse struct {
	Values []models.Transaction `json:"values"`
}

// ListTransactions handles the retrieval of the requester's transactions
// @Summary     List transactions
// @Description List the authenticated user's transactions with optional range, sort, and search parameters.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       range  query string false "Pagination as [from,to]"
// @Param       sort   query string false "Sort pairs as [field,direction,...]"
// @Param       search query string false "Search pairs as [field,keyword,...]"
// @Success     200 {object} TransactionListResponse "Transactions with their categories"
// @Failure     400 {object} ErrorResponse "Invalid parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	opts, err := queryOptions(c, transactionQueryFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(principal, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	c.JSON(http.StatusOK, TransactionListResponse{Values: transactions})
}

// GetTransaction handles the retrieval of a single transaction
// @Summary     Get a transaction
// @Description Get a transaction and its categories by ID.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transactionID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransaction(principal, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a transaction, optionally linked to existing categories.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(principal, services.TransactionInput{
		Date:        req.Date,
		Amount:      *req.Amount,
		Name:        req.Name,
		Type:        req.Type,
		PublicID:    req.PublicID,
		Currency:    req.Currency,
		Balance:     *req.Balance,
		BankID:      req.BankID,
		AccountID:   req.AccountID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction handles partial updates of a transaction
// @Summary     Update a transaction
// @Description Update a transaction's fields and replace its category links when a list is supplied.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transactionID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(principal, transactionID, services.TransactionUpdate{
		Date:        req.Date,
		Amount:      req.Amount,
		Name:        req.Name,
		Type:        req.Type,
		PublicID:    req.PublicID,
		Currency:    req.Currency,
		Balance:     req.Balance,
		BankID:      req.BankID,
		AccountID:   req.AccountID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction and its category links.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} DeleteResponse "Transaction deleted"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transactionID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	affected, err := h.transactionService.DeleteTransaction(principal, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: "Transaction deleted.", Affected: affected})
}
