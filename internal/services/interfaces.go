package services

import (
	"time"

	"centsible/internal/auth"
	"centsible/internal/models"
	"centsible/internal/query"
)

// KeywordInput is a keyword element of a category create/update payload.
// An element carrying an ID refers to an existing keyword of the category
// (update-in-place); an element without one requests a new keyword.
type KeywordInput struct {
	ID    *string
	Value string
}

// CategoryUpdate holds the optional fields of a category update. Nil fields
// keep their current value. A nil Keywords slice leaves the keyword set
// untouched; an empty non-nil slice deletes every keyword.
type CategoryUpdate struct {
	Name     *string
	MatchAll *bool
	Keywords []KeywordInput
}

// UserUpdate holds the optional fields of a user update.
type UserUpdate struct {
	Email    *string
	Password *string
	Role     *models.UserRole
}

// TransactionInput holds the fields of a new transaction. CategoryIDs
// reference existing categories owned by the requester.
type TransactionInput struct {
	Date        time.Time
	Amount      float64
	Name        string
	Type        models.TransactionType
	PublicID    string
	Currency    string
	Balance     float64
	BankID      string
	AccountID   string
	CategoryIDs []string
}

// TransactionUpdate holds the optional fields of a transaction update.
// A nil CategoryIDs slice keeps the current category set.
type TransactionUpdate struct {
	Date        *time.Time
	Amount      *float64
	Name        *string
	Type        *models.TransactionType
	PublicID    *string
	Currency    *string
	Balance     *float64
	BankID      *string
	AccountID   *string
	CategoryIDs []string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Authenticate(email, password string) (*models.User, error)
	ListUsers(p auth.Principal, opts *query.Options) ([]models.User, int64, error)
	GetUser(p auth.Principal, userID string) (*models.User, error)
	CreateUser(p auth.Principal, email, password string, role models.UserRole) (*models.User, error)
	UpdateUser(p auth.Principal, userID string, input UserUpdate) (*models.User, error)
	DeleteUser(p auth.Principal, userID string) (int64, error)
	EnsureDefaultAdmin(email, password string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(p auth.Principal, opts *query.Options) ([]models.Category, error)
	GetCategory(p auth.Principal, categoryID string) (*models.Category, error)
	CreateCategory(p auth.Principal, name string, matchAll bool, keywords []KeywordInput) (*models.Category, error)
	UpdateCategory(p auth.Principal, categoryID string, input CategoryUpdate) (*models.Category, error)
	DeleteCategory(p auth.Principal, categoryID string) (int64, error)
}

// KeywordServicer defines the contract for keyword-related business logic.
type KeywordServicer interface {
	ListKeywords(p auth.Principal, categoryID string, opts *query.Options) ([]models.Keyword, error)
	GetKeyword(p auth.Principal, keywordID string) (*models.Keyword, error)
	CreateKeyword(p auth.Principal, categoryID, value string) (*models.Keyword, error)
	UpdateKeyword(p auth.Principal, keywordID, value string) (*models.Keyword, error)
	DeleteKeyword(p auth.Principal, keywordID string) (int64, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(p auth.Principal, opts *query.Options) ([]models.Transaction, error)
	GetTransaction(p auth.Principal, transactionID string) (*models.Transaction, error)
	CreateTransaction(p auth.Principal, input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(p auth.Principal, transactionID string, input TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(p auth.Principal, transactionID string) (int64, error)
}
