package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type AdminService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	RestRepo  *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository
}

func NewAdminService(db *gorm.DB, ur *repository.UserRepository, rr *repository.RestaurantRepository, mr *repository.MenuRepository, or *repository.OrderRepository) *AdminService {
	return &AdminService{DB: db, UserRepo: ur, RestRepo: rr, MenuRepo: mr, OrderRepo: or}
}

type AdminRestaurantOut struct {
	RestaurantOut
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

type AdminOrderItemOut struct {
	MenuID   uint   `json:"menuId"`
	ItemName string `json:"itemName"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type AdminOrderOut struct {
	OrderID         uint                `json:"orderId"`
	OrderDate       time.Time           `json:"orderDate"`
	Status          string              `json:"status"`
	TotalAmount     int64               `json:"totalAmount"`
	DeliveryAddress string              `json:"deliveryAddress"`
	RestaurantName  string              `json:"restaurantName"`
	Items           []AdminOrderItemOut `json:"items"`
}

func (s *AdminService) ListUsers() ([]ProfileOut, error) {
	users, err := s.UserRepo.ListByRole(entity.RoleUser)
	if err != nil {
		return nil, err
	}
	out := make([]ProfileOut, 0, len(users))
	for i := range users {
		out = append(out, *profileOut(&users[i]))
	}
	return out, nil
}

func (s *AdminService) ListRestaurants() ([]AdminRestaurantOut, error) {
	rests, err := s.RestRepo.FindAllWithOwner()
	if err != nil {
		return nil, err
	}
	out := make([]AdminRestaurantOut, 0, len(rests))
	for i := range rests {
		out = append(out, AdminRestaurantOut{
			RestaurantOut: restaurantOut(&rests[i]),
			OwnerName:     rests[i].User.Name,
			OwnerEmail:    rests[i].User.Email,
		})
	}
	return out, nil
}

func (s *AdminService) ListMenus() ([]MenuDetails, error) {
	menus, err := s.MenuRepo.ListAllAdmin()
	if err != nil {
		return nil, err
	}
	return menuDetailsList(menus), nil
}

// ListOrders recomputes each display total from current menu prices; the
// frozen TotalAmount stays on the order row untouched.
func (s *AdminService) ListOrders() ([]AdminOrderOut, error) {
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, err
	}

	out := make([]AdminOrderOut, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		items := make([]AdminOrderItemOut, 0, len(o.OrderItems))
		var total int64
		for _, oi := range o.OrderItems {
			items = append(items, AdminOrderItemOut{
				MenuID:   oi.MenuID,
				ItemName: oi.Menu.ItemName,
				Price:    oi.Menu.Price,
				Quantity: oi.Quantity,
			})
			total += oi.Menu.Price * int64(oi.Quantity)
		}
		out = append(out, AdminOrderOut{
			OrderID:         o.ID,
			OrderDate:       o.OrderDate,
			Status:          o.Status,
			TotalAmount:     total,
			DeliveryAddress: o.DeliveryAddress,
			RestaurantName:  o.RestaurantName,
			Items:           items,
		})
	}
	return out, nil
}

// DeleteRestaurant cascades to menus and removes the owning user when that
// user's role is Restaurant.
func (s *AdminService) DeleteRestaurant(restID uint) error {
	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("restaurant not found")
		}
		return err
	}

	owner, err := s.UserRepo.FindByID(rest.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.RestRepo.DeleteCascade(tx, rest.ID); err != nil {
			return err
		}
		if owner != nil && owner.Role == entity.RoleRestaurant {
			return s.UserRepo.DeleteHard(tx, owner.ID)
		}
		return nil
	})
}
