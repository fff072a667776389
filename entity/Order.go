package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending = "Pending"
)

type Order struct {
	gorm.Model
	OrderDate       time.Time `json:"orderDate"`
	Status          string    `json:"status"`
	TotalAmount     int64     `json:"totalAmount"`
	DeliveryAddress string    `json:"deliveryAddress"`

	// snapshot of the restaurant name at placement time, not re-synced on rename
	RestaurantName string `json:"restaurantName"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
