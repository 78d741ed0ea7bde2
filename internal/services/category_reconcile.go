package services

import (
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/validator"
)

// keywordPlan is the computed diff between a category's stored keywords
// and an incoming keyword list. It is built outside the write transaction
// and applied inside it.
type keywordPlan struct {
	inserts []models.Keyword
	updates []models.Keyword
	deletes []string
}

// planKeywords diffs the incoming list against the category's current
// keywords. Inputs carrying the ID of a current keyword become in-place
// updates, inputs without an ID become inserts, and current keywords not
// mentioned become deletes. Inputs referencing any other keyword are
// rejected: an ID that does not exist anywhere, or that exists under a
// different category of the same user, is not found; an ID belonging to
// another user is forbidden.
func (s *categoryService) planKeywords(existing []models.Keyword, inputs []KeywordInput, userID string) (*keywordPlan, error) {
	current := make(map[string]models.Keyword, len(existing))
	for _, kw := range existing {
		current[kw.ID] = kw
	}

	plan := &keywordPlan{}
	kept := make(map[string]bool, len(inputs))
	var foreign []string
	for _, input := range inputs {
		if input.ID == nil {
			plan.inserts = append(plan.inserts, models.Keyword{Value: input.Value})
			continue
		}
		id := *input.ID
		if kw, ok := current[id]; ok {
			if kept[id] {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Duplicate keyword ID.")
			}
			kept[id] = true
			kw.Value = input.Value
			plan.updates = append(plan.updates, kw)
			continue
		}
		// Not one of this category's keywords; resolve against the rest
		// of the table before deciding between not-found and forbidden.
		foreign = append(foreign, id)
	}

	if err := s.resolveForeign(foreign, userID); err != nil {
		return nil, err
	}

	for _, kw := range existing {
		if !kept[kw.ID] {
			plan.deletes = append(plan.deletes, kw.ID)
		}
	}
	return plan, nil
}

// resolveForeign looks up keyword IDs that are not part of the target
// category and maps each to the right failure. Lookups are independent
// and fan out concurrently over the service's connection pool.
func (s *categoryService) resolveForeign(ids []string, userID string) error {
	if len(ids) == 0 {
		return nil
	}
	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			var keyword models.Keyword
			err := s.db.First(&keyword, "id = ?", id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrKeywordNotFound
			}
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			var category models.Category
			if err := s.db.First(&category, "id = ?", keyword.CategoryID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if category.UserID != userID {
				return apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to use this keyword.")
			}
			// The requester owns it, but under another category.
			return apperrors.ErrKeywordNotFound
		})
	}
	return g.Wait()
}

// apply executes the plan against the given category inside tx.
func (p *keywordPlan) apply(tx *gorm.DB, categoryID string) error {
	for i := range p.inserts {
		p.inserts[i].CategoryID = categoryID
		if err := validator.Entity(&p.inserts[i]); err != nil {
			return err
		}
		if err := tx.Create(&p.inserts[i]).Error; err != nil {
			return err
		}
	}
	for i := range p.updates {
		if err := validator.Entity(&p.updates[i]); err != nil {
			return err
		}
		err := tx.Model(&models.Keyword{}).
			Where("id = ?", p.updates[i].ID).
			Update("value", p.updates[i].Value).Error
		if err != nil {
			return err
		}
	}
	if len(p.deletes) > 0 {
		if err := tx.Where("id IN ?", p.deletes).Delete(&models.Keyword{}).Error; err != nil {
			return err
		}
	}
	return nil
}
