package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/utils"
)

func registerIn(email, role string) *RegisterIn {
	return &RegisterIn{
		Email:              email,
		Password:           "secret123",
		Role:               role,
		UserName:           "Test User",
		UserAddress:        "Test Street",
		UserContact:        "9876543210",
		RestaurantName:     "Test Kitchen",
		RestaurantLocation: "Test City",
		RestaurantContact:  "1234567890",
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	if _, err := svc.Register(registerIn("dup@test", "user")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(registerIn("DUP@test", "user")); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}

func TestRegisterUserMissingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	in := registerIn("nouser@test", "user")
	in.UserName = ""
	if _, err := svc.Register(in); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation for missing profile fields, got %v", err)
	}
}

func TestRegisterRestaurantCreatesRestaurantRow(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	out, err := svc.Register(registerIn("owner@test", "restaurant"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.Role != entity.RoleRestaurant {
		t.Fatalf("expected Restaurant role, got %q", out.Role)
	}
	if out.RestaurantID == 0 {
		t.Fatal("expected restaurant id in auth response")
	}

	var rest entity.Restaurant
	if err := db.First(&rest, out.RestaurantID).Error; err != nil {
		t.Fatalf("load restaurant: %v", err)
	}
	if rest.Name != "Test Kitchen" || rest.UserID != out.UserID {
		t.Fatalf("unexpected restaurant row: %+v", rest)
	}

	claims, err := utils.ParseToken(out.Token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != out.UserID || claims.Role != entity.RoleRestaurant || claims.RestaurantID != out.RestaurantID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	reg, err := svc.Register(registerIn("login@test", "user"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := svc.Login(&LoginIn{Email: "Login@Test", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.UserID != reg.UserID || out.Role != entity.RoleUser {
		t.Fatalf("unexpected login identity: %+v", out)
	}

	if _, err := svc.Login(&LoginIn{Email: "login@test", Password: "wrong"}); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}
	if _, err := svc.Login(&LoginIn{Email: "ghost@test", Password: "secret123"}); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestLoginRestaurantCarriesRestaurantID(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	reg, err := svc.Register(registerIn("owner@test", "restaurant"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := svc.Login(&LoginIn{Email: "owner@test", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.RestaurantID != reg.RestaurantID {
		t.Fatalf("expected restaurant id %d on login, got %d", reg.RestaurantID, out.RestaurantID)
	}
}
