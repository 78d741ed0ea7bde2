package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"centsible/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password all fixture users share.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a USER-role user with a hashed password and
// unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithRole(t, db, email, models.RoleUser)
}

// CreateTestAdmin creates an ADMIN-role user with a unique email.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("admin%d@test.com", nextID())
	return CreateTestUserWithRole(t, db, email, models.RoleAdmin)
}

// CreateTestUserWithRole creates a user with the given email and role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category for the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:   userID,
		Name:     fmt.Sprintf("Category %d", nextID()),
		MatchAll: false,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestKeyword creates a keyword under the given category.
func CreateTestKeyword(t *testing.T, db *gorm.DB, categoryID string) *models.Keyword {
	t.Helper()

	keyword := &models.Keyword{
		CategoryID: categoryID,
		Value:      fmt.Sprintf("keyword%d", nextID()),
	}
	if err := db.Create(keyword).Error; err != nil {
		t.Fatalf("failed to create test keyword: %v", err)
	}
	return keyword
}

// CreateTestTransaction creates a debit transaction for the given user.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:    userID,
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:    -42.50,
		Name:      fmt.Sprintf("Transaction %d", nextID()),
		Type:      models.TrnTypeDebit,
		PublicID:  fmt.Sprintf("txn-%d", nextID()),
		Currency:  "EUR",
		Balance:   1000,
		BankID:    "30004",
		AccountID: "00012345678",
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
