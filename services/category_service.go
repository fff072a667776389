package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB       *gorm.DB
	Repo     *repository.CategoryRepository
	MenuRepo *repository.MenuRepository
}

func NewCategoryService(db *gorm.DB, repo *repository.CategoryRepository, menuRepo *repository.MenuRepository) *CategoryService {
	return &CategoryService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

type CategoryOut struct {
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
}

func (s *CategoryService) Create(name, imageURL string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	exists, err := s.Repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("category already exists")
	}

	cat := &entity.Category{Name: name, ImageURL: imageURL}
	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) ListNames() ([]CategoryOut, error) {
	cats, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]CategoryOut, 0, len(cats))
	for i := range cats {
		out = append(out, CategoryOut{CategoryID: cats[i].ID, Name: cats[i].Name, ImageURL: cats[i].ImageURL})
	}
	return out, nil
}

func (s *CategoryService) MenusByCategory(name string) ([]MenuDetails, error) {
	cat, err := s.Repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	menus, err := s.MenuRepo.ListAvailable()
	if err != nil {
		return nil, err
	}
	out := make([]MenuDetails, 0)
	for i := range menus {
		if menus[i].CategoryID == cat.ID {
			out = append(out, menuDetails(&menus[i]))
		}
	}
	return out, nil
}

// DeleteByName soft-deletes the category together with every menu under it.
func (s *CategoryService) DeleteByName(name string) error {
	cat, err := s.Repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SoftDeleteWithMenus(tx, cat.ID)
	})
}
