package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// availableScope hides items whose availability text says unavailable.
// Soft-deleted rows are already excluded by gorm's default scope.
func availableScope(db *gorm.DB) *gorm.DB {
	return db.Where("TRIM(LOWER(availability_time)) <> ?", entity.AvailabilityUnavailable)
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByIDForRestaurant scopes the lookup to one restaurant; a nil
// restaurantID (admin caller) skips the ownership filter.
func (r *MenuRepository) FindByIDForRestaurant(id uint, restaurantID *uint) (*entity.Menu, error) {
	q := r.DB.Where("id = ?", id)
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}
	var m entity.Menu
	if err := q.First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByNameForRestaurant(name string, restaurantID *uint) (*entity.Menu, error) {
	q := r.DB.Where("LOWER(item_name) = ?", strings.ToLower(name))
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}
	var m entity.Menu
	if err := q.First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Save(m *entity.Menu) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) SoftDelete(m *entity.Menu) error {
	return r.DB.Delete(m).Error
}

func (r *MenuRepository) ListAvailable() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := availableScope(r.DB).
		Preload("Restaurant").
		Preload("Category").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) SearchByName(name string) ([]entity.Menu, error) {
	var menus []entity.Menu
	pattern := "%" + strings.ToLower(name) + "%"
	err := availableScope(r.DB).
		Where("LOWER(item_name) LIKE ?", pattern).
		Preload("Restaurant").
		Preload("Category").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FilterByDietary(dietary string) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := availableScope(r.DB).
		Where("LOWER(dietary_info) = ?", strings.ToLower(dietary)).
		Preload("Restaurant").
		Preload("Category").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) ListByRestaurant(restID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := availableScope(r.DB).
		Where("restaurant_id = ?", restID).
		Preload("Restaurant").
		Preload("Category").
		Find(&menus).Error
	return menus, err
}

// ListAllAdmin keeps unavailable items visible; only soft-deleted rows stay hidden.
func (r *MenuRepository) ListAllAdmin() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.
		Preload("Restaurant").
		Preload("Category").
		Find(&menus).Error
	return menus, err
}
