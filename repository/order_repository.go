package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ItemsWithMenu(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Preload("Menu").Find(&items).Error
	return items, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("user_id = ?", userID).
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListByRestaurant returns orders containing at least one menu of that
// restaurant. The join goes through Unscoped menus so an order stays visible
// to its restaurant after the menu was soft-deleted.
func (r *OrderRepository) ListByRestaurant(restID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("id IN (SELECT oi.order_id FROM order_items oi JOIN menus m ON m.id = oi.menu_id WHERE m.restaurant_id = ?)", restID).
		Preload("OrderItems").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// BelongsToRestaurant reports whether any item of the order references a menu
// owned by restID.
func (r *OrderRepository) BelongsToRestaurant(orderID, restID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).
		Joins("JOIN menus m ON m.id = order_items.menu_id").
		Where("order_items.order_id = ? AND m.restaurant_id = ?", orderID, restID).
		Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteWithItems(tx *gorm.DB, orderID uint) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("OrderItems").
		Preload("OrderItems.Menu").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
