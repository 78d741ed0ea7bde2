package services

import (
	"testing"
	"time"

	"centsible/internal/models"
	"centsible/internal/testutil"
)

func baseTransactionInput() TransactionInput {
	return TransactionInput{
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:    -12.90,
		Name:      "CARD PAYMENT SUPERMARKET",
		Type:      models.TrnTypeDebit,
		PublicID:  "stmt-000123",
		Currency:  "EUR",
		Balance:   987.65,
		BankID:    "30004",
		AccountID: "00012345678",
	}
}

func TestCreateTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		txn, err := svc.CreateTransaction(principalFor(user), baseTransactionInput())
		testutil.AssertNoError(t, err)
		if txn.ID == "" || txn.UserID != user.ID {
			t.Errorf("unexpected transaction: %+v", txn)
		}
		if txn.Type != models.TrnTypeDebit {
			t.Errorf("expected DEBIT, got %s", txn.Type)
		}
	})

	t.Run("with_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat1 := testutil.CreateTestCategory(t, db, user.ID)
		cat2 := testutil.CreateTestCategory(t, db, user.ID)

		input := baseTransactionInput()
		input.CategoryIDs = []string{cat1.ID, cat2.ID}
		txn, err := svc.CreateTransaction(principalFor(user), input)
		testutil.AssertNoError(t, err)
		if len(txn.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(txn.Categories))
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		input := baseTransactionInput()
		input.CategoryIDs = []string{"f5f5f5f5-0000-0000-0000-000000000000"}
		_, err := svc.CreateTransaction(principalFor(user), input)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("foreign_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		foreign := testutil.CreateTestCategory(t, db, other.ID)

		input := baseTransactionInput()
		input.CategoryIDs = []string{foreign.ID}
		_, err := svc.CreateTransaction(principalFor(user), input)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		input := baseTransactionInput()
		input.Type = "WIRE"
		_, err := svc.CreateTransaction(principalFor(user), input)
		testutil.AssertValidationError(t, err, "Type")
	})

	t.Run("invalid_currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		input := baseTransactionInput()
		input.Currency = "EURO"
		_, err := svc.CreateTransaction(principalFor(user), input)
		testutil.AssertValidationError(t, err, "Currency")
	})
}

func TestGetTransaction(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetTransaction(principalFor(user), "a6a6a6a6-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("foreign", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		txn := testutil.CreateTestTransaction(t, db, owner.ID)

		_, err := svc.GetTransaction(principalFor(other), txn.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("owner_scoped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, other.ID)

		txns, err := svc.ListTransactions(principalFor(user), noOptions())
		testutil.AssertNoError(t, err)
		if len(txns) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(txns))
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("merge_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		txn := testutil.CreateTestTransaction(t, db, user.ID)

		amount := -99.99
		got, err := svc.UpdateTransaction(principalFor(user), txn.ID, TransactionUpdate{
			Amount: &amount,
			Name:   strPtr("ADJUSTED"),
		})
		testutil.AssertNoError(t, err)
		if got.Amount != amount || got.Name != "ADJUSTED" {
			t.Errorf("fields not merged: %+v", got)
		}
		if got.Currency != txn.Currency {
			t.Errorf("untouched field changed: %s", got.Currency)
		}
	})

	t.Run("replace_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		catSvc := NewCategoryService(db)
		p := principalFor(user)

		cat1, err := catSvc.CreateCategory(p, "First", false, nil)
		testutil.AssertNoError(t, err)
		cat2, err := catSvc.CreateCategory(p, "Second", false, nil)
		testutil.AssertNoError(t, err)

		input := baseTransactionInput()
		input.CategoryIDs = []string{cat1.ID}
		txn, err := svc.CreateTransaction(p, input)
		testutil.AssertNoError(t, err)

		got, err := svc.UpdateTransaction(p, txn.ID, TransactionUpdate{
			CategoryIDs: []string{cat2.ID},
		})
		testutil.AssertNoError(t, err)
		if len(got.Categories) != 1 || got.Categories[0].ID != cat2.ID {
			t.Errorf("category set not replaced: %+v", got.Categories)
		}
	})

	t.Run("empty_categories_clears_links", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		p := principalFor(user)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		input := baseTransactionInput()
		input.CategoryIDs = []string{cat.ID}
		txn, err := svc.CreateTransaction(p, input)
		testutil.AssertNoError(t, err)

		got, err := svc.UpdateTransaction(p, txn.ID, TransactionUpdate{
			CategoryIDs: []string{},
		})
		testutil.AssertNoError(t, err)
		if len(got.Categories) != 0 {
			t.Errorf("expected no categories after clearing, got %d", len(got.Categories))
		}

		var links int64
		db.Model(&transactionCategory{}).Where("transaction_id = ?", txn.ID).Count(&links)
		if links != 0 {
			t.Errorf("expected join rows removed, found %d", links)
		}
	})

	t.Run("nil_categories_keeps_links", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		p := principalFor(user)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		input := baseTransactionInput()
		input.CategoryIDs = []string{cat.ID}
		txn, err := svc.CreateTransaction(p, input)
		testutil.AssertNoError(t, err)

		got, err := svc.UpdateTransaction(p, txn.ID, TransactionUpdate{Name: strPtr("RENAMED")})
		testutil.AssertNoError(t, err)
		if len(got.Categories) != 1 {
			t.Errorf("expected category links kept, got %d", len(got.Categories))
		}
	})

	t.Run("foreign", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		txn := testutil.CreateTestTransaction(t, db, owner.ID)

		_, err := svc.UpdateTransaction(principalFor(other), txn.ID, TransactionUpdate{Name: strPtr("nope")})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes_links", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		p := principalFor(user)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		input := baseTransactionInput()
		input.CategoryIDs = []string{cat.ID}
		txn, err := svc.CreateTransaction(p, input)
		testutil.AssertNoError(t, err)

		affected, err := svc.DeleteTransaction(p, txn.ID)
		testutil.AssertNoError(t, err)
		if affected != 1 {
			t.Errorf("expected 1 row affected, got %d", affected)
		}

		var links int64
		db.Model(&transactionCategory{}).Where("transaction_id = ?", txn.ID).Count(&links)
		if links != 0 {
			t.Errorf("expected join rows removed, found %d", links)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.DeleteTransaction(principalFor(user), "b7b7b7b7-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
