package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UserModel is the users table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	Name      string `gorm:"size:255;not null"`
	Role      string `gorm:"size:16;not null;default:'USER'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "users" }

// CategoryModel is the categories table. Names are unique per owner.
// Deleting the owner deletes the category.
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null;uniqueIndex:idx_categories_name_user"`
	Color     string `gorm:"size:32;not null;default:'#3B82F6'"`
	UserID    uint   `gorm:"not null;index;uniqueIndex:idx_categories_name_user"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (CategoryModel) TableName() string { return "categories" }

// LinkModel is the links table. Deleting the owner deletes the link;
// deleting its category leaves it uncategorized.
type LinkModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	URL         string    `gorm:"column:url;type:text;not null"`
	Description *string   `gorm:"type:text"`
	Favicon     *string   `gorm:"type:text"`
	IsFavorite  bool      `gorm:"not null;default:false;index"`
	Clicks      int64     `gorm:"not null;default:0"`
	UserID      uint      `gorm:"not null;index"`
	CategoryID  *uint     `gorm:"index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	User     *UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (LinkModel) TableName() string { return "links" }

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &CategoryModel{}, &LinkModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
