package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	CatRepo *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, CatRepo: catRepo}
}

type MenuIn struct {
	ItemName         string `form:"itemName" binding:"required"`
	Description      string `form:"description"`
	CategoryName     string `form:"categoryName" binding:"required"`
	Price            int64  `form:"price" binding:"required,min=1"`
	DietaryInfo      string `form:"dietaryInfo"`
	TasteInfo        string `form:"tasteInfo"`
	NutritionalInfo  string `form:"nutritionalInfo"`
	AvailabilityTime string `form:"availabilityTime"`
	Status           string `form:"status"`
}

type MenuDetails struct {
	MenuID           uint   `json:"menuId"`
	ItemName         string `json:"itemName"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Price            int64  `json:"price"`
	DietaryInfo      string `json:"dietaryInfo"`
	TasteInfo        string `json:"tasteInfo"`
	NutritionalInfo  string `json:"nutritionalInfo"`
	AvailabilityTime string `json:"availabilityTime"`
	Status           string `json:"status"`
	RestaurantID     uint   `json:"restaurantId"`
	RestaurantName   string `json:"restaurantName"`
	ImageURL         string `json:"imageUrl"`
}

type CategoryWithMenus struct {
	CategoryID   uint          `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	ImageURL     string        `json:"imageUrl"`
	Menus        []MenuDetails `json:"menus"`
}

func menuDetails(m *entity.Menu) MenuDetails {
	return MenuDetails{
		MenuID:           m.ID,
		ItemName:         m.ItemName,
		Description:      m.Description,
		Category:         m.Category.Name,
		Price:            m.Price,
		DietaryInfo:      m.DietaryInfo,
		TasteInfo:        m.TasteInfo,
		NutritionalInfo:  m.NutritionalInfo,
		AvailabilityTime: m.AvailabilityTime,
		Status:           m.Status,
		RestaurantID:     m.RestaurantID,
		RestaurantName:   m.Restaurant.Name,
		ImageURL:         m.ImageURL,
	}
}

func menuDetailsList(menus []entity.Menu) []MenuDetails {
	out := make([]MenuDetails, 0, len(menus))
	for i := range menus {
		out = append(out, menuDetails(&menus[i]))
	}
	return out
}

// Create resolves the category by name; restaurantID comes from the caller's
// token (admins pass the form value through).
func (s *MenuService) Create(in *MenuIn, restaurantID uint, imageURL string) (*entity.Menu, error) {
	cat, err := s.CatRepo.FindByName(in.CategoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("category not found, create the category first")
		}
		return nil, err
	}

	menu := &entity.Menu{
		ItemName:         in.ItemName,
		Description:      in.Description,
		CategoryID:       cat.ID,
		Price:            in.Price,
		DietaryInfo:      in.DietaryInfo,
		TasteInfo:        in.TasteInfo,
		NutritionalInfo:  in.NutritionalInfo,
		AvailabilityTime: in.AvailabilityTime,
		Status:           in.Status,
		RestaurantID:     restaurantID,
		ImageURL:         imageURL,
	}
	if err := s.Repo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// Update is scoped to the owning restaurant; a nil restaurantID (admin)
// skips the ownership check.
func (s *MenuService) Update(id uint, in *MenuIn, restaurantID *uint, imageURL string) error {
	menu, err := s.Repo.FindByIDForRestaurant(id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu not found or not owned by you")
		}
		return err
	}

	cat, err := s.CatRepo.FindByName(in.CategoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("invalid category name")
		}
		return err
	}

	menu.ItemName = in.ItemName
	menu.Description = in.Description
	menu.CategoryID = cat.ID
	menu.Price = in.Price
	menu.DietaryInfo = in.DietaryInfo
	menu.TasteInfo = in.TasteInfo
	menu.NutritionalInfo = in.NutritionalInfo
	menu.AvailabilityTime = in.AvailabilityTime
	menu.Status = in.Status
	if imageURL != "" {
		menu.ImageURL = imageURL
	}
	return s.Repo.Save(menu)
}

func (s *MenuService) DeleteByName(name string, restaurantID *uint) error {
	menu, err := s.Repo.FindByNameForRestaurant(name, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu not found or access denied")
		}
		return err
	}
	return s.Repo.SoftDelete(menu)
}

// ListAllGrouped returns every available menu grouped by its category.
func (s *MenuService) ListAllGrouped() ([]CategoryWithMenus, error) {
	cats, err := s.CatRepo.ListAll()
	if err != nil {
		return nil, err
	}
	menus, err := s.Repo.ListAvailable()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]MenuDetails, len(cats))
	for i := range menus {
		m := &menus[i]
		byCategory[m.CategoryID] = append(byCategory[m.CategoryID], menuDetails(m))
	}

	out := make([]CategoryWithMenus, 0, len(cats))
	for i := range cats {
		c := &cats[i]
		group := byCategory[c.ID]
		if group == nil {
			group = []MenuDetails{}
		}
		out = append(out, CategoryWithMenus{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			ImageURL:     c.ImageURL,
			Menus:        group,
		})
	}
	return out, nil
}

func (s *MenuService) Search(name string) ([]MenuDetails, error) {
	if name == "" {
		return nil, apperr.Validation("item name is required")
	}
	menus, err := s.Repo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, apperr.NotFound("no matching menu items found")
	}
	return menuDetailsList(menus), nil
}

func (s *MenuService) FilterByDietary(dietary string) ([]MenuDetails, error) {
	if dietary == "" {
		return nil, apperr.Validation("dietary info is required")
	}
	menus, err := s.Repo.FilterByDietary(dietary)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, apperr.NotFound("no items found for the given dietary filter")
	}
	return menuDetailsList(menus), nil
}

func (s *MenuService) ListByRestaurant(restID uint) ([]MenuDetails, error) {
	menus, err := s.Repo.ListByRestaurant(restID)
	if err != nil {
		return nil, err
	}
	return menuDetailsList(menus), nil
}
