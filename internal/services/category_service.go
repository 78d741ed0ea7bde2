package services

import (
	"errors"

	"gorm.io/gorm"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/query"
	"centsible/internal/validator"
)

// categoryService handles category-related business logic, including the
// keyword reconciliation performed on category updates.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns the requester's categories matching the query
// options, keywords included. The owner filter is always applied.
func (s *categoryService) ListCategories(p auth.Principal, opts *query.Options) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ?", p.ID).
		Scopes(opts.Scope()).
		Preload("Keywords").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategory retrieves a category with its keywords. A missing ID is 404
// for every caller; an existing category of another user is 403.
func (s *categoryService) GetCategory(p auth.Principal, categoryID string) (*models.Category, error) {
	category, err := s.lookupCategory(categoryID, true)
	if err != nil {
		return nil, err
	}
	if category.UserID != p.ID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to access this category.")
	}
	return category, nil
}

// CreateCategory creates a category owned by the requester, with an
// optional initial keyword set. Supplying a keyword ID at creation fails
// the same way an unknown ID fails on update: there is nothing to match.
func (s *categoryService) CreateCategory(p auth.Principal, name string, matchAll bool, keywords []KeywordInput) (*models.Category, error) {
	category := &models.Category{
		UserID:   p.ID,
		Name:     name,
		MatchAll: matchAll,
	}
	if err := validator.Entity(category); err != nil {
		return nil, err
	}

	plan, err := s.planKeywords(nil, keywords, p.ID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Keywords").Create(category).Error; err != nil {
			return err
		}
		return plan.apply(tx, category.ID)
	})
	if err != nil {
		return nil, appError(err)
	}
	return s.GetCategory(p, category.ID)
}

// UpdateCategory merges the provided fields over the current row and
// reconciles the keyword set when one is supplied. An omitted keyword
// list leaves the existing keywords untouched; an empty list deletes
// them all. The whole update is atomic: any invalid keyword reference
// fails it before a single row changes.
func (s *categoryService) UpdateCategory(p auth.Principal, categoryID string, input CategoryUpdate) (*models.Category, error) {
	category, err := s.lookupCategory(categoryID, true)
	if err != nil {
		return nil, err
	}
	if category.UserID != p.ID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to update this category.")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.MatchAll != nil {
		category.MatchAll = *input.MatchAll
	}
	if err := validator.Entity(category); err != nil {
		return nil, err
	}

	var plan *keywordPlan
	if input.Keywords != nil {
		plan, err = s.planKeywords(category.Keywords, input.Keywords, p.ID)
		if err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":      category.Name,
			"match_all": category.MatchAll,
		}
		if err := tx.Model(&models.Category{}).Where("id = ?", category.ID).Updates(updates).Error; err != nil {
			return err
		}
		if plan != nil {
			return plan.apply(tx, category.ID)
		}
		return nil
	})
	if err != nil {
		return nil, appError(err)
	}
	return s.GetCategory(p, category.ID)
}

// DeleteCategory removes a category, its keywords, and its transaction
// links. The storage layer does not cascade, so children go first.
func (s *categoryService) DeleteCategory(p auth.Principal, categoryID string) (int64, error) {
	category, err := s.lookupCategory(categoryID, false)
	if err != nil {
		return 0, err
	}
	if category.UserID != p.ID {
		return 0, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to delete this category.")
	}

	var affected int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Keyword{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&transactionCategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Category{}, "id = ?", category.ID)
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

// lookupCategory fetches a category by ID without any ownership scoping,
// so a missing row is distinguishable from a foreign one.
func (s *categoryService) lookupCategory(categoryID string, withKeywords bool) (*models.Category, error) {
	db := s.db
	if withKeywords {
		db = db.Preload("Keywords")
	}
	var category models.Category
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// appError passes AppErrors through and wraps anything else as internal.
func appError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
