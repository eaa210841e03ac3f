package services

import (
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) models.User {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerID uint, name string) models.Restaurant {
	t.Helper()
	r := models.Restaurant{OwnerID: ownerID, Name: name}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedDish(t *testing.T, db *gorm.DB, restaurantID uint, name string, price float64, options []models.DishOption) models.Dish {
	t.Helper()
	d := models.Dish{RestaurantID: restaurantID, Name: name, Price: price, Options: options}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return d
}

func seedOrder(t *testing.T, db *gorm.DB, o models.Order) models.Order {
	t.Helper()
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewDishRepository(db),
	)
}
