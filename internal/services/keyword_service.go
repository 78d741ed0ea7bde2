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

// keywordService handles keyword CRUD. Keywords have no owner column of
// their own; access rights come from the parent category.
type keywordService struct {
	db *gorm.DB
}

// NewKeywordService creates a new KeywordServicer.
func NewKeywordService(db *gorm.DB) KeywordServicer {
	return &keywordService{db: db}
}

// ListKeywords returns the keywords of a single category after checking
// that the category exists and belongs to the requester.
func (s *keywordService) ListKeywords(p auth.Principal, categoryID string, opts *query.Options) ([]models.Keyword, error) {
	if _, err := s.authorizeCategory(p, categoryID); err != nil {
		return nil, err
	}
	var keywords []models.Keyword
	err := s.db.Where("category_id = ?", categoryID).
		Scopes(opts.Scope()).
		Find(&keywords).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return keywords, nil
}

func (s *keywordService) GetKeyword(p auth.Principal, keywordID string) (*models.Keyword, error) {
	return s.authorizeKeyword(p, keywordID)
}

// CreateKeyword adds a keyword to one of the requester's categories.
func (s *keywordService) CreateKeyword(p auth.Principal, categoryID, value string) (*models.Keyword, error) {
	if _, err := s.authorizeCategory(p, categoryID); err != nil {
		return nil, err
	}
	keyword := &models.Keyword{CategoryID: categoryID, Value: value}
	if err := validator.Entity(keyword); err != nil {
		return nil, err
	}
	if err := s.db.Create(keyword).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return keyword, nil
}

func (s *keywordService) UpdateKeyword(p auth.Principal, keywordID, value string) (*models.Keyword, error) {
	keyword, err := s.authorizeKeyword(p, keywordID)
	if err != nil {
		return nil, err
	}
	keyword.Value = value
	if err := validator.Entity(keyword); err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Keyword{}).Where("id = ?", keyword.ID).Update("value", value).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return keyword, nil
}

func (s *keywordService) DeleteKeyword(p auth.Principal, keywordID string) (int64, error) {
	keyword, err := s.authorizeKeyword(p, keywordID)
	if err != nil {
		return 0, err
	}
	result := s.db.Delete(&models.Keyword{}, "id = ?", keyword.ID)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}

// authorizeCategory resolves a category and checks ownership, missing
// first, foreign second.
func (s *keywordService) authorizeCategory(p auth.Principal, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if category.UserID != p.ID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to access this category.")
	}
	return &category, nil
}

// authorizeKeyword resolves a keyword and checks ownership of its
// parent category.
func (s *keywordService) authorizeKeyword(p auth.Principal, keywordID string) (*models.Keyword, error) {
	var keyword models.Keyword
	if err := s.db.First(&keyword, "id = ?", keywordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeywordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var category models.Category
	if err := s.db.First(&category, "id = ?", keyword.CategoryID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if category.UserID != p.ID {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to access this keyword.")
	}
	return &keyword, nil
}
