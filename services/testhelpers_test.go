package services

import (
	"fmt"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database and migrates the schema.
// The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Category{},
		&entity.Menu{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:         "Test " + role,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Address:      "Test Street",
		Contact:      "9876543210",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	owner := seedUser(t, db, name+"@owner.test", entity.RoleRestaurant)
	r := &entity.Restaurant{
		Name:     name,
		Location: "Test City",
		Contact:  "1234567890",
		UserID:   owner.ID,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedMenu(t *testing.T, db *gorm.DB, rest *entity.Restaurant, cat *entity.Category, name string, price int64, availability string) *entity.Menu {
	t.Helper()
	m := &entity.Menu{
		ItemName:         name,
		Description:      "test item",
		Price:            price,
		DietaryInfo:      "Vegetarian",
		TasteInfo:        "Savory",
		NutritionalInfo:  "400 kcal",
		AvailabilityTime: availability,
		Status:           "Active",
		CategoryID:       cat.ID,
		RestaurantID:     rest.ID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return m
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db,
		repository.NewUserRepository(db),
		repository.NewRestaurantRepository(db),
		"test-secret", time.Hour,
	)
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db))
}

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(db, repository.NewRestaurantRepository(db), repository.NewUserRepository(db))
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(repository.NewMenuRepository(db), repository.NewCategoryRepository(db))
}

func newCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(db, repository.NewCategoryRepository(db), repository.NewMenuRepository(db))
}

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(db,
		repository.NewUserRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
		repository.NewOrderRepository(db),
	)
}
