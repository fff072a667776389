package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser       = "User"
	RoleRestaurant = "Restaurant"
	RoleAdmin      = "Admin"
)

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"not null;default:User" json:"role"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	ImageURL     string `json:"imageUrl"`

	// Relations, preload only when needed
	Restaurant *Restaurant `gorm:"foreignKey:UserID" json:"-"`
	Orders     []Order     `json:"-"`
	CartItems  []CartItem  `json:"-"`
}
