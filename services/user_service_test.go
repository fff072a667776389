package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"golang.org/x/crypto/bcrypt"
)

func TestUserGet(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	u := seedUser(t, db, "me@test", entity.RoleUser)

	got, err := svc.Get(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "me@test" || got.Role != entity.RoleUser {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := svc.Get(999); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for missing user, got %v", err)
	}
}

func TestUserUpdateKeepsPasswordWhenBlank(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	u := seedUser(t, db, "me@test", entity.RoleUser)
	db.Model(u).Update("password_hash", "original-hash")

	in := &UpdateUserIn{Name: "New Name", Email: "Me@Test", Address: "New Street", Contact: "111"}
	got, err := svc.Update(u.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "New Name" || got.Email != "me@test" {
		t.Fatalf("unexpected profile after update: %+v", got)
	}

	var stored entity.User
	db.First(&stored, u.ID)
	if stored.PasswordHash != "original-hash" {
		t.Fatal("expected password untouched when blank")
	}
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	u := seedUser(t, db, "me@test", entity.RoleUser)

	in := &UpdateUserIn{Name: "Name", Email: "me@test", Address: "Street", Contact: "111", Password: "newsecret"}
	if _, err := svc.Update(u.ID, in); err != nil {
		t.Fatalf("update: %v", err)
	}

	var stored entity.User
	db.First(&stored, u.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")); err != nil {
		t.Fatalf("expected new password to verify: %v", err)
	}
}
