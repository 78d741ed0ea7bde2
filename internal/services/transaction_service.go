package services

import (
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/query"
	"centsible/internal/validator"
)

// transactionCategory maps the transaction/category join table so cascade
// deletes can target it directly.
type transactionCategory struct {
	TransactionID string `gorm:"primaryKey;type:uuid"`
	CategoryID    string `gorm:"primaryKey;type:uuid"`
}

func (transactionCategory) TableName() string {
	return "transaction_categories"
}

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions returns the requester's transactions matching the
// query options, with their categories.
func (s *transactionService) ListTransactions(p auth.Principal, opts *query.Options) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("user_id = ?", p.ID).
		Scopes(opts.Scope()).
		Preload("Categories").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (s *transactionService) GetTransaction(p auth.Principal, transactionID string) (*models.Transaction, error) {
	transaction, err := s.lookupTransaction(transactionID, true)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != p.ID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to access this transaction.")
	}
	return transaction, nil
}

// CreateTransaction creates a transaction for the requester, linked to
// the given categories. Every referenced category must exist and belong
// to the requester.
func (s *transactionService) CreateTransaction(p auth.Principal, input TransactionInput) (*models.Transaction, error) {
	categories, err := s.checkCategories(p, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:    p.ID,
		Date:      input.Date,
		Amount:    input.Amount,
		Name:      input.Name,
		Type:      input.Type,
		PublicID:  input.PublicID,
		Currency:  input.Currency,
		Balance:   input.Balance,
		BankID:    input.BankID,
		AccountID: input.AccountID,
	}
	if err := validator.Entity(transaction); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Create(transaction).Error; err != nil {
			return err
		}
		if len(categories) > 0 {
			return tx.Model(transaction).Association("Categories").Append(categories)
		}
		return nil
	})
	if err != nil {
		return nil, appError(err)
	}
	return s.GetTransaction(p, transaction.ID)
}

// UpdateTransaction merges the provided fields over the current row and
// replaces the category set when one is supplied.
func (s *transactionService) UpdateTransaction(p auth.Principal, transactionID string, input TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.lookupTransaction(transactionID, false)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != p.ID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to update this transaction.")
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Name != nil {
		transaction.Name = *input.Name
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.PublicID != nil {
		transaction.PublicID = *input.PublicID
	}
	if input.Currency != nil {
		transaction.Currency = *input.Currency
	}
	if input.Balance != nil {
		transaction.Balance = *input.Balance
	}
	if input.BankID != nil {
		transaction.BankID = *input.BankID
	}
	if input.AccountID != nil {
		transaction.AccountID = *input.AccountID
	}
	if err := validator.Entity(transaction); err != nil {
		return nil, err
	}

	var categories []models.Category
	if input.CategoryIDs != nil {
		categories, err = s.checkCategories(p, input.CategoryIDs)
		if err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Omit("Categories").
			Session(&gorm.Session{FullSaveAssociations: false}).
			Save(transaction).Error
		if err != nil {
			return err
		}
		if input.CategoryIDs != nil {
			assoc := tx.Model(transaction).Association("Categories")
			if len(categories) == 0 {
				return assoc.Clear()
			}
			return assoc.Replace(categories)
		}
		return nil
	})
	if err != nil {
		return nil, appError(err)
	}
	return s.GetTransaction(p, transaction.ID)
}

// DeleteTransaction removes a transaction and its category links.
func (s *transactionService) DeleteTransaction(p auth.Principal, transactionID string) (int64, error) {
	transaction, err := s.lookupTransaction(transactionID, false)
	if err != nil {
		return 0, err
	}
	if transaction.UserID != p.ID {
		return 0, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to delete this transaction.")
	}

	var affected int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", transaction.ID).Delete(&transactionCategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Transaction{}, "id = ?", transaction.ID)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return affected, nil
}

// checkCategories resolves category IDs and verifies ownership, fanning
// the independent lookups out concurrently. A missing ID is 404, a
// foreign one 403.
func (s *transactionService) checkCategories(p auth.Principal, ids []string) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	categories := make([]models.Category, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			var category models.Category
			err := s.db.First(&category, "id = ?", id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if category.UserID != p.ID {
				return apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to use this category.")
			}
			categories[i] = category
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *transactionService) lookupTransaction(transactionID string, withCategories bool) (*models.Transaction, error) {
	db := s.db
	if withCategories {
		db = db.Preload("Categories")
	}
	var transaction models.Transaction
	if err := db.First(&transaction, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}
