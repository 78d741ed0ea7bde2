package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/services"
)

// categoryQueryFields maps the exposed category list fields to storage
// columns. matchAll is the one field whose wire name differs.
var categoryQueryFields = map[string]string{
	"id":       "id",
	"name":     "name",
	"matchAll": "match_all",
}

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// KeywordInputRequest is a keyword element of a category payload. An
// element with an ID updates that keyword in place; one without requests
// a new keyword.
type KeywordInputRequest struct {
	ID    *string `json:"id" binding:"omitempty,uuid4"`
	Value string  `json:"value" binding:"required,min=1,max=255"`
}

// CreateCategoryRequest represents the request payload for creating a
// category. MatchAll is a pointer so that an absent field is rejected
// rather than defaulted to false.
type CreateCategoryRequest struct {
	Name     string                `json:"name" binding:"required,min=1,max=255"`
	MatchAll *bool                 `json:"matchAll" binding:"required"`
	Keywords []KeywordInputRequest `json:"keywords" binding:"omitempty,dive"`
}

// CategoryListResponse wraps a category listing.
type CategoryListResponse struct {
	Values []models.Category `json:"values"`
}

// UpdateCategoryRequest represents the request payload for updating a
// category. Omitted fields keep their current value; an omitted keyword
// list leaves the keyword set untouched, an empty one clears it.
type UpdateCategoryRequest struct {
	Name     *string               `json:"name" binding:"omitempty,min=1,max=255"`
	MatchAll *bool                 `json:"matchAll"`
	Keywords []KeywordInputRequest `json:"keywords" binding:"omitempty,dive"`
}

func keywordInputs(reqs []KeywordInputRequest) []services.KeywordInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]services.KeywordInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = services.KeywordInput{ID: r.ID, Value: r.Value}
	}
	return inputs
}

// ListCategories handles the retrieval of the requester's categories
// @Summary     List categories
// @Description List the authenticated user's categories with optional range, sort, and search parameters.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       range  query string false "Pagination as [from,to]"
// @Param       sort   query string false "Sort pairs as [field,direction,...]"
// @Param       search query string false "Search pairs as [field,keyword,...]"
// @Success     200 {object} CategoryListResponse "Categories with their keywords"
// @Failure     400 {object} ErrorResponse "Invalid parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	opts, err := queryOptions(c, categoryQueryFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(principal, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, CategoryListResponse{Values: categories})
}

// GetCategory handles the retrieval of a single category
// @Summary     Get a category
// @Description Get a category and its keywords by ID.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(principal, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a category with an optional initial keyword list.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(principal, req.Name, *req.MatchAll, keywordInputs(req.Keywords))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles partial updates of a category
// @Summary     Update a category
// @Description Update a category's fields and reconcile its keyword list when one is supplied.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to update"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(principal, categoryID, services.CategoryUpdate{
		Name:     req.Name,
		MatchAll: req.MatchAll,
		Keywords: keywordInputs(req.Keywords),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles the deletion of a category
// @Summary     Delete a category
// @Description Delete a category together with its keywords and transaction links.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} DeleteResponse "Category deleted"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	affected, err := h.categoryService.DeleteCategory(principal, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: "Category deleted.", Affected: affected})
}
