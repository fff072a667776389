package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ItemsForUser returns the user's cart with menu and restaurant detail.
// Rows whose menu was soft-deleted in the meantime are skipped.
func (r *CartRepository) ItemsForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.
		Where("user_id = ?", userID).
		Where("menu_id IN (?)", r.DB.Model(&entity.Menu{}).Select("id")).
		Preload("Menu").
		Preload("Menu.Restaurant").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) FindForUser(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Add(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

func (r *CartRepository) Save(item *entity.CartItem) error {
	return r.DB.Save(item).Error
}

func (r *CartRepository) Remove(item *entity.CartItem) error {
	return r.DB.Unscoped().Delete(item).Error
}

// Clear empties the cart for good; checkout and explicit clear both land here.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
