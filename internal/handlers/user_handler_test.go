package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/query"
	"centsible/internal/services"
)

func setupUserRouter(handler *UserHandler, p auth.Principal) *gin.Engine {
	r := gin.New()
	authed := r.Group("", injectPrincipal(p))
	authed.GET("/users", handler.ListUsers)
	authed.POST("/users", handler.CreateUser)
	authed.GET("/users/:id", handler.GetUser)
	authed.PATCH("/users/:id", handler.UpdateUser)
	authed.DELETE("/users/:id", handler.DeleteUser)
	return r
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("returns values and count", func(t *testing.T) {
		userSvc := &mockUserService{
			listUsersFn: func(_ auth.Principal, _ *query.Options) ([]models.User, int64, error) {
				return []models.User{
					{Base: models.Base{ID: "55555555-5555-4555-8555-555555555555"}, Email: "a@test.com", Role: models.RoleUser},
				}, 7, nil
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc), adminPrincipal())

		rec := doRequest(r, "GET", "/users", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp UserListResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Values) != 1 || resp.Count != 7 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("propagates admin-only rejection", func(t *testing.T) {
		userSvc := &mockUserService{
			listUsersFn: func(_ auth.Principal, _ *query.Options) ([]models.User, int64, error) {
				return nil, 0, apperrors.ErrAdminOnly
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc), userPrincipal())

		rec := doRequest(r, "GET", "/users", "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("returns 201 without password in body", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_ auth.Principal, email, _ string, role models.UserRole) (*models.User, error) {
				return &models.User{
					Base:     models.Base{ID: "66666666-6666-4666-8666-666666666666"},
					Email:    email,
					Password: "$2a$10$hash",
					Role:     models.RoleUser,
				}, nil
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc), adminPrincipal())

		rec := doRequest(r, "POST", "/users", `{"email":"new@test.com","password":"secret"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if _, leaked := body["password"]; leaked {
			t.Error("password hash leaked in response")
		}
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}), adminPrincipal())

		rec := doRequest(r, "POST", "/users", `{"email":"new@test.com","password":"secret","role":"ROOT"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_ auth.Principal, _, _ string, _ models.UserRole) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc), adminPrincipal())

		rec := doRequest(r, "POST", "/users", `{"email":"dup@test.com","password":"secret"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("passes only supplied fields", func(t *testing.T) {
		var captured services.UserUpdate
		userSvc := &mockUserService{
			updateUserFn: func(_ auth.Principal, _ string, input services.UserUpdate) (*models.User, error) {
				captured = input
				return &models.User{}, nil
			},
		}
		p := userPrincipal()
		r := setupUserRouter(NewUserHandler(userSvc), p)

		rec := doRequest(r, "PATCH", "/users/"+p.ID, `{"password":"new-pass"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Email != nil || captured.Role != nil {
			t.Errorf("unsupplied fields should stay nil: %+v", captured)
		}
		if captured.Password == nil || *captured.Password != "new-pass" {
			t.Errorf("password not forwarded: %v", captured.Password)
		}
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("returns 404 before 403", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserFn: func(_ auth.Principal, _ string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc), userPrincipal())

		rec := doRequest(r, "GET", "/users/77777777-7777-4777-8777-777777777777", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if body := decodeError(t, rec); body.Code != "USER_NOT_FOUND" {
			t.Errorf("expected USER_NOT_FOUND, got %s", body.Code)
		}
	})
}
