package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/services"
)

// userQueryFields maps the exposed user list fields to storage columns.
var userQueryFields = map[string]string{
	"id":    "id",
	"email": "email",
	"role":  "role",
}

// UserHandler handles user-related requests
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request payload for creating a user
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email,max=255"`
	Password string          `json:"password" binding:"required,min=1"`
	Role     models.UserRole `json:"role" binding:"omitempty,user_role"`
}

// UpdateUserRequest represents the request payload for updating a user.
// Omitted fields keep their current value.
type UpdateUserRequest struct {
	Email    *string          `json:"email" binding:"omitempty,email,max=255"`
	Password *string          `json:"password" binding:"omitempty,min=1"`
	Role     *models.UserRole `json:"role" binding:"omitempty,user_role"`
}

// UserListResponse wraps a page of users with the total match count.
type UserListResponse struct {
	Values []models.User `json:"values"`
	Count  int64         `json:"count"`
}

// ListUsers handles the paginated retrieval of users
// @Summary     List users
// @Description List users with optional range, sort, and search parameters. Admin only.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       range  query string false "Pagination as [from,to]"
// @Param       sort   query string false "Sort pairs as [field,direction,...]"
// @Param       search query string false "Search pairs as [field,keyword,...]"
// @Success     200 {object} UserListResponse "Matching users and total count"
// @Failure     400 {object} ErrorResponse "Invalid parameters"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	opts, err := queryOptions(c, userQueryFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	users, count, err := h.userService.ListUsers(principal, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, UserListResponse{Values: users, Count: count})
}

// GetUser handles the retrieval of a single user
// @Summary     Get a user
// @Description Get a user by ID. Admins may read anyone; users only themselves.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} models.User "User"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUser(principal, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles the creation of a new user
// @Summary     Create a user
// @Description Create a user account. Admin only.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     409 {object} ErrorResponse "Email already exists"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(principal, req.Email, req.Password, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles partial updates of a user
// @Summary     Update a user
// @Description Update a user's email, password, or role. Users may update themselves; granting ADMIN requires an admin.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "User ID"
// @Param       request body UpdateUserRequest true "Fields to update"
// @Success     200 {object} models.User "Updated user"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(principal, userID, services.UserUpdate{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles the deletion of a user
// @Summary     Delete a user
// @Description Delete a user and everything it owns. Admin only.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} DeleteResponse "User deleted"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	affected, err := h.userService.DeleteUser(principal, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: "User deleted.", Affected: affected})
}
