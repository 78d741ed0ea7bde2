package models

// Keyword is a matching pattern exclusively owned by its Category.
type Keyword struct {
	Base
	CategoryID string `gorm:"type:uuid;not null;index" json:"categoryId" validate:"required,uuid4"`
	Value      string `gorm:"size:255;not null" json:"value" validate:"required,min=1,max=255"`
}
