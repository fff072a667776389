package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

type AddToCartIn struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity int  `json:"quantity"`
}

type CartItemOut struct {
	CartItemID     uint   `json:"cartItemId"`
	MenuID         uint   `json:"menuId"`
	ItemName       string `json:"itemName"`
	Price          int64  `json:"price"`
	Quantity       int    `json:"quantity"`
	LineTotal      int64  `json:"lineTotal"`
	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}

func cartItemOut(it *entity.CartItem) CartItemOut {
	return CartItemOut{
		CartItemID:     it.ID,
		MenuID:         it.MenuID,
		ItemName:       it.Menu.ItemName,
		Price:          it.Menu.Price,
		Quantity:       it.Quantity,
		LineTotal:      it.Menu.Price * int64(it.Quantity),
		RestaurantID:   it.Menu.RestaurantID,
		RestaurantName: it.Menu.Restaurant.Name,
	}
}

func (s *CartService) Get(userID uint) ([]CartItemOut, int64, error) {
	items, err := s.Repo.ItemsForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CartItemOut, 0, len(items))
	var subtotal int64
	for i := range items {
		row := cartItemOut(&items[i])
		subtotal += row.LineTotal
		out = append(out, row)
	}
	return out, subtotal, nil
}

// Add rejects soft-deleted and unavailable menus, and enforces the
// single-restaurant rule: a cart locked to another restaurant is a conflict.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*CartItemOut, error) {
	menu, err := s.MenuRepo.FindByID(in.MenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found or unavailable")
		}
		return nil, err
	}
	if menu.Unavailable() {
		return nil, apperr.NotFound("menu item not found or unavailable")
	}

	existing, err := s.Repo.ItemsForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 && existing[0].Menu.RestaurantID != menu.RestaurantID {
		return nil, apperr.Conflict("you can only order from one restaurant at a time, clear your cart first")
	}

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	item := &entity.CartItem{UserID: userID, MenuID: menu.ID, Quantity: qty}
	if err := s.Repo.Add(item); err != nil {
		return nil, err
	}

	item.Menu = *menu
	out := cartItemOut(item)
	return &out, nil
}

func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	if quantity < 1 {
		return apperr.Validation("quantity must be at least 1")
	}
	item, err := s.Repo.FindForUser(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart item not found")
		}
		return err
	}
	item.Quantity = quantity
	return s.Repo.Save(item)
}

func (s *CartService) Remove(userID, itemID uint) error {
	item, err := s.Repo.FindForUser(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart item not found")
		}
		return err
	}
	return s.Repo.Remove(item)
}

func (s *CartService) Clear(userID uint) error {
	return s.Repo.Clear(s.DB, userID)
}
