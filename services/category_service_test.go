package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
)

func TestCreateCategoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(db)

	if _, err := svc.Create("Snacks", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("snacks", ""); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for duplicate name, got %v", err)
	}
	if _, err := svc.Create("  ", ""); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation for blank name, got %v", err)
	}
}

func TestDeleteCategoryCascadesToMenus(t *testing.T) {
	db := newTestDB(t)
	catSvc := newCategoryService(db)
	menuSvc := newMenuService(db)

	snacks := seedCategory(t, db, "Snacks")
	mains := seedCategory(t, db, "Mains")
	rest := seedRestaurant(t, db, "R1")
	seedMenu(t, db, rest, snacks, "Samosa", 25, "All Day")
	seedMenu(t, db, rest, mains, "Curry", 120, "All Day")

	if err := catSvc.DeleteByName("Snacks"); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	names, err := catSvc.ListNames()
	if err != nil {
		t.Fatalf("list names: %v", err)
	}
	if len(names) != 1 || names[0].Name != "Mains" {
		t.Fatalf("expected only Mains after delete, got %+v", names)
	}

	if _, err := menuSvc.Search("Samosa"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected soft-deleted menu hidden from search, got %v", err)
	}
	if _, err := catSvc.MenusByCategory("Snacks"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for deleted category, got %v", err)
	}

	// rows survive, only flagged
	var catCount, menuCount int64
	db.Unscoped().Model(&entity.Category{}).Count(&catCount)
	db.Unscoped().Model(&entity.Menu{}).Count(&menuCount)
	if catCount != 2 || menuCount != 2 {
		t.Fatalf("expected soft-deleted rows retained, got %d categories, %d menus", catCount, menuCount)
	}
}

func TestCreateCategoryAfterSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(db)

	if _, err := svc.Create("Snacks", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteByName("Snacks"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// the unique index still holds the soft-deleted row
	if _, err := svc.Create("Snacks", ""); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict after soft delete, got %v", err)
	}
}

func TestMenusByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(db)

	snacks := seedCategory(t, db, "Snacks")
	mains := seedCategory(t, db, "Mains")
	rest := seedRestaurant(t, db, "R1")
	seedMenu(t, db, rest, snacks, "Samosa", 25, "All Day")
	seedMenu(t, db, rest, snacks, "Pakora", 30, "Unavailable")
	seedMenu(t, db, rest, mains, "Curry", 120, "All Day")

	menus, err := svc.MenusByCategory("Snacks")
	if err != nil {
		t.Fatalf("menus by category: %v", err)
	}
	if len(menus) != 1 || menus[0].ItemName != "Samosa" {
		t.Fatalf("expected only available Snacks items, got %+v", menus)
	}
	if menus[0].RestaurantName != "R1" {
		t.Fatalf("expected restaurant name on listing, got %q", menus[0].RestaurantName)
	}

	if _, err := svc.MenusByCategory("Desserts"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown category, got %v", err)
	}
}
