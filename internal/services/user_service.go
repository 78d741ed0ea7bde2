package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
	"centsible/internal/logger"
	"centsible/internal/models"
	"centsible/internal/query"
	"centsible/internal/validator"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Authenticate verifies an email/password pair and returns the matching
// user. Unknown email and wrong password are indistinguishable to callers.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// ListUsers returns users matching the query options together with the
// total match count. Listing users is an admin-only operation and is the
// only list endpoint that reports a count.
func (s *userService) ListUsers(p auth.Principal, opts *query.Options) ([]models.User, int64, error) {
	if !p.IsAdmin() {
		return nil, 0, apperrors.ErrAdminOnly
	}

	base := s.db.Model(&models.User{}).Scopes(opts.FilterScope())

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var users []models.User
	if err := s.db.Scopes(opts.Scope()).Find(&users).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, count, nil
}

// GetUser retrieves a user by ID. Non-admins may only read themselves.
func (s *userService) GetUser(p auth.Principal, userID string) (*models.User, error) {
	user, err := s.lookupUser(userID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.IsSelf(user.ID) {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to access this user.")
	}
	return user, nil
}

// CreateUser registers a new user. Admin-only; the ID is generated
// server-side and the password stored as a bcrypt hash.
func (s *userService) CreateUser(p auth.Principal, email, password string, role models.UserRole) (*models.User, error) {
	if !p.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}
	if role == "" {
		role = models.RoleUser
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    strings.ToLower(email),
		Password: string(hashed),
		Role:     role,
	}
	if err := validator.Entity(user); err != nil {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		// The uniqueness pre-check races with concurrent inserts; the
		// constraint violation maps to the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// UpdateUser merges the provided fields over the current row and persists
// the result. Non-admins may only update themselves and may never grant
// the ADMIN role, not even on their own account.
func (s *userService) UpdateUser(p auth.Principal, userID string, input UserUpdate) (*models.User, error) {
	user, err := s.lookupUser(userID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.IsSelf(user.ID) {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to update this user.")
	}
	if input.Role != nil && *input.Role == models.RoleAdmin && !p.IsAdmin() {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "You do not have the rights to grant the ADMIN role.")
	}

	if input.Email != nil {
		user.Email = strings.ToLower(*input.Email)
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		user.Password = string(hashed)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := validator.Entity(user); err != nil {
		return nil, err
	}

	if err := s.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.lookupUser(userID)
}

// DeleteUser removes a user together with everything the user owns:
// categories and their keywords, transactions and their category links.
// The storage layer does not cascade, so the children go first. Admin-only.
func (s *userService) DeleteUser(p auth.Principal, userID string) (int64, error) {
	user, err := s.lookupUser(userID)
	if err != nil {
		return 0, err
	}
	if !p.IsAdmin() {
		return 0, apperrors.ErrAdminOnly
	}

	var affected int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&models.Category{}).Select("id").Where("user_id = ?", user.ID)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&models.Keyword{}).Error; err != nil {
			return err
		}

		transactionIDs := tx.Model(&models.Transaction{}).Select("id").Where("user_id = ?", user.ID)
		if err := tx.Where("transaction_id IN (?)", transactionIDs).Delete(&transactionCategory{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Category{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, "id = ?", user.ID)
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

// EnsureDefaultAdmin creates the bootstrap admin account when no user with
// the given email exists. A blank password disables seeding.
func (s *userService) EnsureDefaultAdmin(email, password string) error {
	if password == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	admin := &models.User{
		Email:    strings.ToLower(email),
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := validator.Entity(admin); err != nil {
		return err
	}
	if err := s.db.Create(admin).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("default admin account created", "email", admin.Email)
	return nil
}

func (s *userService) lookupUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
