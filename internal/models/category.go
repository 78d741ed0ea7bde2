package models

// Category represents a transaction-matching category. Keywords are
// lifetime-owned children: deleting a Category deletes its Keywords.
type Category struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"userId" validate:"required,uuid4"`
	Name     string `gorm:"size:255;not null" json:"name" validate:"required,min=1,max=255"`
	MatchAll bool   `gorm:"not null" json:"matchAll"`

	// Relationships
	Keywords     []Keyword     `gorm:"foreignKey:CategoryID" json:"keywords" validate:"-"`
	Transactions []Transaction `gorm:"many2many:transaction_categories" json:"-" validate:"-"`
}
