package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type ProfileOut struct {
	UserID   uint   `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl"`
}

type UpdateUserIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password"` // optional; re-hashed only when provided
}

func profileOut(u *entity.User) *ProfileOut {
	return &ProfileOut{
		UserID:   u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Address:  u.Address,
		Contact:  u.Contact,
		Role:     u.Role,
		ImageURL: u.ImageURL,
	}
}

func (s *UserService) Get(userID uint) (*ProfileOut, error) {
	u, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return profileOut(u), nil
}

func (s *UserService) Update(userID uint, in *UpdateUserIn) (*ProfileOut, error) {
	if _, err := s.Repo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	updates := map[string]any{
		"name":    strings.TrimSpace(in.Name),
		"email":   strings.ToLower(strings.TrimSpace(in.Email)),
		"address": strings.TrimSpace(in.Address),
		"contact": strings.TrimSpace(in.Contact),
	}
	if strings.TrimSpace(in.Password) != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("hash password failed", err)
		}
		updates["password_hash"] = string(hashed)
	}

	if err := s.Repo.Update(userID, updates); err != nil {
		return nil, err
	}
	u, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return profileOut(u), nil
}

func (s *UserService) SetImage(userID uint, imageURL string) error {
	return s.Repo.Update(userID, map[string]any{"image_url": imageURL})
}
