package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindAllWithOwner() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Preload("User").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByUserID(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("user_id = ?", userID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) SearchByName(name string) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.DB.Where("LOWER(name) LIKE ?", pattern).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// DeleteCascade removes the restaurant together with its menus.
// Menus go for good here, not just flagged: the owning aggregate is gone.
func (r *RestaurantRepository) DeleteCascade(tx *gorm.DB, restID uint) error {
	if err := tx.Unscoped().Where("restaurant_id = ?", restID).Delete(&entity.Menu{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Restaurant{}, restID).Error
}
