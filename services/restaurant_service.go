package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, ur *repository.UserRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, UserRepo: ur}
}

type RestaurantOut struct {
	RestaurantID uint   `json:"restaurantId"`
	UserID       uint   `json:"userId"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Contact      string `json:"contact"`
	ImageURL     string `json:"imageUrl"`
}

type RestaurantUpdateIn struct {
	Name     string `form:"name" binding:"required"`
	Location string `form:"location" binding:"required"`
	Contact  string `form:"contact" binding:"required"`
}

func restaurantOut(r *entity.Restaurant) RestaurantOut {
	return RestaurantOut{
		RestaurantID: r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Location:     r.Location,
		Contact:      r.Contact,
		ImageURL:     r.ImageURL,
	}
}

func (s *RestaurantService) List() ([]RestaurantOut, error) {
	rests, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]RestaurantOut, 0, len(rests))
	for i := range rests {
		out = append(out, restaurantOut(&rests[i]))
	}
	return out, nil
}

func (s *RestaurantService) Search(name string) ([]RestaurantOut, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("restaurant name is required")
	}
	rests, err := s.Repo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	if len(rests) == 0 {
		return nil, apperr.NotFound("no matching restaurants found")
	}
	out := make([]RestaurantOut, 0, len(rests))
	for i := range rests {
		out = append(out, restaurantOut(&rests[i]))
	}
	return out, nil
}

func (s *RestaurantService) Get(id uint) (*RestaurantOut, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	out := restaurantOut(rest)
	return &out, nil
}

// UpdateOwn updates the restaurant identified by the token claim. imageURL is
// applied only when non-empty.
func (s *RestaurantService) UpdateOwn(restID uint, in *RestaurantUpdateIn, imageURL string) error {
	rest, err := s.Repo.FindByID(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("restaurant not found")
		}
		return err
	}

	rest.Name = in.Name
	rest.Location = in.Location
	rest.Contact = in.Contact
	if imageURL != "" {
		rest.ImageURL = imageURL
	}
	return s.Repo.Save(rest)
}

// Delete removes the restaurant and its menus in one transaction. The owning
// user goes too when their role is Restaurant.
func (s *RestaurantService) Delete(restID uint) error {
	rest, err := s.Repo.FindByID(restID)
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
		if err := s.Repo.DeleteCascade(tx, rest.ID); err != nil {
			return err
		}
		if owner != nil && owner.Role == entity.RoleRestaurant {
			return s.UserRepo.DeleteHard(tx, owner.ID)
		}
		return nil
	})
}
