package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	ImageURL string `json:"imageUrl"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	// deleting a restaurant removes its menus
	Menus []Menu `json:"-"`
}
