package services

import (
	"testing"

	"backend/entity"
)

func TestAdminListUsersFiltersByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	seedUser(t, db, "customer@test", entity.RoleUser)
	seedUser(t, db, "admin@test", entity.RoleAdmin)
	seedRestaurant(t, db, "R1") // creates a Restaurant-role owner

	users, err := svc.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 customer account, got %d", len(users))
	}
	if users[0].Email != "customer@test" {
		t.Fatalf("unexpected user in listing: %+v", users[0])
	}
}

func TestAdminListRestaurantsIncludesOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	seedRestaurant(t, db, "R1")

	rests, err := svc.ListRestaurants()
	if err != nil {
		t.Fatalf("list restaurants: %v", err)
	}
	if len(rests) != 1 {
		t.Fatalf("expected 1 restaurant, got %d", len(rests))
	}
	if rests[0].OwnerEmail != "R1@owner.test" {
		t.Fatalf("expected owner email on listing, got %q", rests[0].OwnerEmail)
	}
}

func TestAdminListMenusIncludesUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	cat := seedCategory(t, db, "Snacks")
	rest := seedRestaurant(t, db, "R1")
	seedMenu(t, db, rest, cat, "Samosa", 25, "All Day")
	pakora := seedMenu(t, db, rest, cat, "Pakora", 30, "Unavailable")

	menus, err := svc.ListMenus()
	if err != nil {
		t.Fatalf("list menus: %v", err)
	}
	if len(menus) != 2 {
		t.Fatalf("expected admin listing to include unavailable items, got %d", len(menus))
	}

	// soft-deleted rows still stay hidden
	db.Delete(&entity.Menu{}, pakora.ID)
	menus, err = svc.ListMenus()
	if err != nil {
		t.Fatalf("list menus after delete: %v", err)
	}
	if len(menus) != 1 {
		t.Fatalf("expected soft-deleted menu hidden from admin listing, got %d", len(menus))
	}
}

func TestAdminListOrdersRecomputesTotals(t *testing.T) {
	db := newTestDB(t)
	adminSvc := newAdminService(db)
	orderSvc := newOrderService(db)
	cartSvc := newCartService(db)

	cat := seedCategory(t, db, "Snacks")
	rest := seedRestaurant(t, db, "R1")
	samosa := seedMenu(t, db, rest, cat, "Samosa", 25, "All Day")
	user := seedUser(t, db, "buyer@test", entity.RoleUser)

	if _, err := cartSvc.Add(user.ID, &AddToCartIn{MenuID: samosa.ID, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	placed, err := orderSvc.Place(user.ID, &PlaceOrderIn{DeliveryAddress: "42 Test Lane"})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	db.Model(&entity.Menu{}).Where("id = ?", samosa.ID).Update("price", 40)

	orders, err := adminSvc.ListOrders()
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].TotalAmount != 80 {
		t.Fatalf("expected display total recomputed to 80, got %d", orders[0].TotalAmount)
	}

	var stored entity.Order
	db.First(&stored, placed.OrderID)
	if stored.TotalAmount != 50 {
		t.Fatalf("expected stored total untouched at 50, got %d", stored.TotalAmount)
	}
}

func TestAdminDeleteRestaurantRemovesOwnerAndMenus(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	cat := seedCategory(t, db, "Snacks")
	rest := seedRestaurant(t, db, "R1")
	seedMenu(t, db, rest, cat, "Samosa", 25, "All Day")

	if err := svc.DeleteRestaurant(rest.ID); err != nil {
		t.Fatalf("delete restaurant: %v", err)
	}

	var restCount, menuCount, ownerCount int64
	db.Unscoped().Model(&entity.Restaurant{}).Count(&restCount)
	db.Unscoped().Model(&entity.Menu{}).Count(&menuCount)
	db.Unscoped().Model(&entity.User{}).Where("email = ?", "R1@owner.test").Count(&ownerCount)
	if restCount != 0 || menuCount != 0 || ownerCount != 0 {
		t.Fatalf("expected hard delete of restaurant, menus and owner, got %d/%d/%d", restCount, menuCount, ownerCount)
	}
}
