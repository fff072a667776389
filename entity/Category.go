package entity

import (
	"gorm.io/gorm"
)

// Category is soft-deleted only: DeletedAt acts as the is_deleted flag and
// default queries exclude flagged rows. Use Unscoped to read them back.
type Category struct {
	gorm.Model
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	ImageURL string `json:"imageUrl"`

	Menus []Menu `json:"-"`
}
