package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// ExistsByName checks soft-deleted rows too: the unique index on name
// survives a soft delete, so reusing the name would blow up on insert.
func (r *CategoryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.DB.Unscoped().Model(&entity.Category{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) FindByName(name string) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) ListAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Find(&cats).Error
	return cats, err
}

// SoftDeleteWithMenus flags the category and every menu under it.
func (r *CategoryRepository) SoftDeleteWithMenus(tx *gorm.DB, categoryID uint) error {
	if err := tx.Where("category_id = ?", categoryID).Delete(&entity.Menu{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Category{}, categoryID).Error
}
