package entity

import (
	"gorm.io/gorm"
)

// CartItem rows for one user must all reference menus of a single restaurant.
// The rule is enforced in the cart service, not by the schema.
type CartItem struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Quantity int `json:"quantity"`
}
