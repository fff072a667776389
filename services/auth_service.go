package services

import (
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	RestRepo  *repository.RestaurantRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, ur *repository.UserRepository, rr *repository.RestaurantRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: ur, RestRepo: rr, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`

	// profile fields for role User
	UserName    string `json:"userName"`
	UserAddress string `json:"userAddress"`
	UserContact string `json:"userContact"`

	// profile fields for role Restaurant
	RestaurantName     string `json:"restaurantName"`
	RestaurantLocation string `json:"restaurantLocation"`
	RestaurantContact  string `json:"restaurantContact"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthOut is the single auth contract: token plus identity, for both
// register and login. RestaurantID is present for restaurant accounts only.
type AuthOut struct {
	Token        string `json:"token"`
	Role         string `json:"role"`
	UserID       uint   `json:"userId"`
	RestaurantID uint   `json:"restaurantId,omitempty"`
}

func normalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return entity.RoleAdmin
	case "restaurant":
		return entity.RoleRestaurant
	default:
		return entity.RoleUser
	}
}

func (s *AuthService) Register(in *RegisterIn) (*AuthOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	role := normalizeRole(in.Role)

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hash password failed", err)
	}

	user := entity.User{Email: email, PasswordHash: string(hashed), Role: role}
	switch role {
	case entity.RoleUser:
		if in.UserName == "" || in.UserAddress == "" || in.UserContact == "" {
			return nil, apperr.Validation("user name, address and contact are required")
		}
		user.Name = strings.TrimSpace(in.UserName)
		user.Address = strings.TrimSpace(in.UserAddress)
		user.Contact = strings.TrimSpace(in.UserContact)
	case entity.RoleRestaurant:
		if in.RestaurantName == "" || in.RestaurantLocation == "" || in.RestaurantContact == "" {
			return nil, apperr.Validation("restaurant name, location and contact are required")
		}
		user.Name = strings.TrimSpace(in.RestaurantName)
		user.Address = strings.TrimSpace(in.RestaurantLocation)
		user.Contact = strings.TrimSpace(in.RestaurantContact)
	default: // Admin
		user.Name = "Admin"
		user.Address = "N/A"
	}

	var restaurantID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, &user); err != nil {
			return err
		}
		if role == entity.RoleRestaurant {
			rest := entity.Restaurant{
				UserID:   user.ID,
				Name:     user.Name,
				Location: user.Address,
				Contact:  user.Contact,
			}
			if err := s.RestRepo.Create(tx, &rest); err != nil {
				return err
			}
			restaurantID = rest.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, role, restaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperr.Internal("cannot generate token", err)
	}
	return &AuthOut{Token: token, Role: role, UserID: user.ID, RestaurantID: restaurantID}, nil
}

func (s *AuthService) Login(in *LoginIn) (*AuthOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	var restaurantID uint
	if user.Role == entity.RoleRestaurant {
		if rest, err := s.RestRepo.FindByUserID(user.ID); err == nil {
			restaurantID = rest.ID
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role, restaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperr.Internal("cannot generate token", err)
	}
	return &AuthOut{Token: token, Role: user.Role, UserID: user.ID, RestaurantID: restaurantID}, nil
}
