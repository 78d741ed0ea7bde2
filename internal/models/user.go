package models

// UserRole represents the authorization role of a user
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents the user model in the database. The Password column holds
// a bcrypt hash and is never serialized.
type User struct {
	Base
	Email    string   `gorm:"uniqueIndex;not null;size:255" json:"email" validate:"required,email,max=255"`
	Password string   `gorm:"not null" json:"-" validate:"required"`
	Role     UserRole `gorm:"type:varchar(5);not null;default:USER" json:"role" validate:"required,user_role"`

	// Relationships (back-references only, never serialized)
	Categories   []Category    `gorm:"foreignKey:UserID" json:"-" validate:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-" validate:"-"`
}
