package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/services"
	"centsible/internal/uuid"
)

// keywordQueryFields maps the exposed keyword list fields to storage columns.
var keywordQueryFields = map[string]string{
	"id":    "id",
	"value": "value",
}

// KeywordHandler handles keyword-related requests
type KeywordHandler struct {
	keywordService services.KeywordServicer
}

// NewKeywordHandler creates a new KeywordHandler
func NewKeywordHandler(keywordService services.KeywordServicer) *KeywordHandler {
	return &KeywordHandler{keywordService: keywordService}
}

// CreateKeywordRequest represents the request payload for creating a keyword
type CreateKeywordRequest struct {
	CategoryID string `json:"categoryId" binding:"required,uuid4"`
	Value      string `json:"value" binding:"required,min=1,max=255"`
}

// UpdateKeywordRequest represents the request payload for updating a keyword
type UpdateKeywordRequest struct {
	Value string `json:"value" binding:"required,min=1,max=255"`
}

// KeywordListResponse wraps a keyword listing.
type KeywordListResponse struct {
	Values []models.Keyword `json:"values"`
}

// ListKeywords handles the retrieval of a category's keywords
// @Summary     List keywords
// @Description List the keywords of one category. The category query parameter is required.
// @Tags        keywords
// @Produce     json
// @Security    BearerAuth
// @Param       category query string true  "Category ID"
// @Param       range    query string false "Pagination as [from,to]"
// @Param       sort     query string false "Sort pairs as [field,direction,...]"
// @Param       search   query string false "Search pairs as [field,keyword,...]"
// @Success     200 {object} KeywordListResponse "Keywords"
// @Failure     400 {object} ErrorResponse "Invalid parameters"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /keywords [get]
func (h *KeywordHandler) ListKeywords(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID := c.Query("category")
	if !uuid.IsValid(categoryID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidParameter, "A valid category parameter is required."))
		return
	}

	opts, err := queryOptions(c, keywordQueryFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	keywords, err := h.keywordService.ListKeywords(principal, categoryID, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if keywords == nil {
		keywords = []models.Keyword{}
	}
	c.JSON(http.StatusOK, KeywordListResponse{Values: keywords})
}

// GetKeyword handles the retrieval of a single keyword
// @Summary     Get a keyword
// @Description Get a keyword by ID.
// @Tags        keywords
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Keyword ID"
// @Success     200 {object} models.Keyword "Keyword"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /keywords/{id} [get]
func (h *KeywordHandler) GetKeyword(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	keywordID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	keyword, err := h.keywordService.GetKeyword(principal, keywordID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, keyword)
}

// CreateKeyword handles the creation of a new keyword
// @Summary     Create a keyword
// @Description Create a keyword under one of the requester's categories.
// @Tags        keywords
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateKeywordRequest true "Keyword details"
// @Success     201 {object} models.Keyword "Keyword created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /keywords [post]
func (h *KeywordHandler) CreateKeyword(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	keyword, err := h.keywordService.CreateKeyword(principal, req.CategoryID, req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, keyword)
}

// UpdateKeyword handles updates of a keyword's value
// @Summary     Update a keyword
// @Description Update a keyword's value.
// @Tags        keywords
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Keyword ID"
// @Param       request body UpdateKeywordRequest true "New value"
// @Success     200 {object} models.Keyword "Updated keyword"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /keywords/{id} [patch]
func (h *KeywordHandler) UpdateKeyword(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	keywordID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	keyword, err := h.keywordService.UpdateKeyword(principal, keywordID, req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, keyword)
}

// DeleteKeyword handles the deletion of a keyword
// @Summary     Delete a keyword
// @Description Delete a keyword by ID.
// @Tags        keywords
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Keyword ID"
// @Success     200 {object} DeleteResponse "Keyword deleted"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /keywords/{id} [delete]
func (h *KeywordHandler) DeleteKeyword(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	keywordID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	affected, err := h.keywordService.DeleteKeyword(principal, keywordID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: "Keyword deleted.", Affected: affected})
}
