package entity

import (
	"strings"

	"gorm.io/gorm"
)

// AvailabilityUnavailable is the availability text that removes a menu from
// search, filters and carts. Compared case-insensitively.
const AvailabilityUnavailable = "unavailable"

type Menu struct {
	gorm.Model
	ItemName         string `json:"itemName"`
	Description      string `json:"description"`
	Price            int64  `json:"price"`
	DietaryInfo      string `json:"dietaryInfo"`
	TasteInfo        string `json:"tasteInfo"`
	NutritionalInfo  string `json:"nutritionalInfo"`
	AvailabilityTime string `json:"availabilityTime"`
	Status           string `json:"status"`
	ImageURL         string `json:"imageUrl"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // categories are never hard-deleted, so no cascade

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}

func (m *Menu) Unavailable() bool {
	return strings.EqualFold(strings.TrimSpace(m.AvailabilityTime), AvailabilityUnavailable)
}
