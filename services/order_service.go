package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

type PlaceOrderIn struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
}

type OrderItemOut struct {
	MenuID   uint `json:"menuId"`
	Quantity int  `json:"quantity"`
}

type OrderOut struct {
	OrderID         uint           `json:"orderId"`
	OrderDate       time.Time      `json:"orderDate"`
	Status          string         `json:"status"`
	TotalAmount     int64          `json:"totalAmount"`
	DeliveryAddress string         `json:"deliveryAddress"`
	RestaurantName  string         `json:"restaurantName"`
	UserName        string         `json:"userName,omitempty"`
	Items           []OrderItemOut `json:"items"`
}

func orderOut(o *entity.Order) OrderOut {
	items := make([]OrderItemOut, 0, len(o.OrderItems))
	for _, oi := range o.OrderItems {
		items = append(items, OrderItemOut{MenuID: oi.MenuID, Quantity: oi.Quantity})
	}
	return OrderOut{
		OrderID:         o.ID,
		OrderDate:       o.OrderDate,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		RestaurantName:  o.RestaurantName,
		Items:           items,
	}
}

// Place validates the cart, freezes the total, then creates the order with
// its items and clears the cart in a single transaction.
func (s *OrderService) Place(userID uint, in *PlaceOrderIn) (*OrderOut, error) {
	cartItems, err := s.CartRepo.ItemsForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, apperr.Validation("your cart is empty")
	}

	var unavailable []string
	restaurants := make(map[uint]struct{})
	for i := range cartItems {
		m := &cartItems[i].Menu
		if m.Unavailable() {
			unavailable = append(unavailable, m.ItemName)
		}
		restaurants[m.RestaurantID] = struct{}{}
	}
	if len(unavailable) > 0 {
		return nil, apperr.Validationf("cannot place order, unavailable items in cart: %s", strings.Join(unavailable, ", "))
	}
	if len(restaurants) > 1 {
		return nil, apperr.Conflict("you can only order from one restaurant at a time, clear your cart first")
	}

	restaurantName := cartItems[0].Menu.Restaurant.Name
	if restaurantName == "" {
		return nil, apperr.Validation("menu items are not linked to a valid restaurant")
	}

	var total int64
	for i := range cartItems {
		total += cartItems[i].Menu.Price * int64(cartItems[i].Quantity)
	}

	order := entity.Order{
		UserID:          userID,
		OrderDate:       time.Now().UTC(),
		Status:          entity.OrderStatusPending,
		TotalAmount:     total,
		DeliveryAddress: in.DeliveryAddress,
		RestaurantName:  restaurantName,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range cartItems {
			oi := entity.OrderItem{
				OrderID:  order.ID,
				MenuID:   cartItems[i].MenuID,
				Quantity: cartItems[i].Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	out := orderOut(&order)
	return &out, nil
}

func (s *OrderService) ListForUser(userID uint) ([]OrderOut, error) {
	orders, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, orderOut(&orders[i]))
	}
	return out, nil
}

func (s *OrderService) ListForRestaurant(restID uint) ([]OrderOut, error) {
	orders, err := s.Repo.ListByRestaurant(restID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		row := orderOut(&orders[i])
		row.UserName = orders[i].User.Name
		out = append(out, row)
	}
	return out, nil
}

func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if strings.TrimSpace(status) == "" {
		return apperr.Validation("status is required")
	}
	rows, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

// Delete removes the order and its items. A non-nil restaurantID scopes the
// delete to orders containing that restaurant's menus.
func (s *OrderService) Delete(orderID uint, restaurantID *uint) error {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return err
	}

	if restaurantID != nil {
		ok, err := s.Repo.BelongsToRestaurant(orderID, *restaurantID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("order not found or not authorized to delete")
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteWithItems(tx, orderID)
	})
}
