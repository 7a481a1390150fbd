package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryNameMinLength = 3
	CategoryNameMaxLength = 20
	CategoryIconMaxLength = 20
)

var (
	ErrInvalidCategoryName = errors.New("category name must be between 3 and 20 characters")
	ErrInvalidCategoryIcon = errors.New("category icon must be at most 20 characters")
)

// Category is a user-defined label for transactions of one type.
// A name is unique per user.
type Category struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_user_name,priority:1" json:"userId"`
	Name      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name,priority:2" json:"name"`
	Icon      string          `gorm:"type:varchar(50);not null" json:"icon"`
	Type      TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`
	CreatedAt time.Time       `gorm:"not null" json:"createdAt"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Name = strings.TrimSpace(c.Name)
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == "" {
		return ErrMissingUserID
	}

	nameLen := len([]rune(strings.TrimSpace(c.Name)))
	if nameLen < CategoryNameMinLength || nameLen > CategoryNameMaxLength {
		return ErrInvalidCategoryName
	}

	if len([]rune(c.Icon)) > CategoryIconMaxLength {
		return ErrInvalidCategoryIcon
	}

	if !c.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	return nil
}
