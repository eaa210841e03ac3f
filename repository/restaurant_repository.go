package repository

import (
	"errors"
	"time"

	"food-ordering-api/apperr"
	"food-ordering-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindWithMenu loads a restaurant and its dishes.
func (r *RestaurantRepository) FindWithMenu(id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.Preload("Menu").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) ListAll() ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := r.DB.Order("is_promoted desc, created_at desc").Find(&out).Error
	return out, err
}

// ListByCategory returns the restaurants in a category, promoted first.
func (r *RestaurantRepository) ListByCategory(categoryID uint) ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := r.DB.
		Where("category_id = ?", categoryID).
		Order("is_promoted desc, created_at desc").
		Find(&out).Error
	return out, err
}

// SearchByName matches restaurant names by substring, case-insensitively.
func (r *RestaurantRepository) SearchByName(query string) ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := r.DB.
		Where("name LIKE ?", "%"+query+"%").
		Order("is_promoted desc, created_at desc").
		Find(&out).Error
	return out, err
}

// ListByOwnerWithOrders loads every restaurant of an owner together with
// each restaurant's orders, newest orders first to match the customer and
// driver listing paths. Used by the owner-side order listing, which
// flattens and filters in memory.
func (r *RestaurantRepository) ListByOwnerWithOrders(ownerID uint) ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := r.DB.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Where("owner_id = ?", ownerID).
		Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Create(rest *models.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *models.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Restaurant{}, id).Error
}

// FindAndValidate resolves a restaurant and checks the actor owns it.
// Callers must invoke it before any restaurant mutation and propagate its
// error untouched.
func (r *RestaurantRepository) FindAndValidate(id uint, actor models.User) (*models.Restaurant, error) {
	rest, err := r.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Restaurant not found")
		}
		return nil, apperr.E(apperr.Persistence, "Cannot load restaurant")
	}
	if rest.OwnerID != actor.ID {
		return nil, apperr.E(apperr.NotAuthorized, "You are not the owner of this restaurant")
	}
	return rest, nil
}

// ListExpiredPromotions returns promoted restaurants whose promotion window
// has passed.
func (r *RestaurantRepository) ListExpiredPromotions(now time.Time) ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := r.DB.Where("is_promoted = ? AND promoted_until < ?", true, now).Find(&out).Error
	return out, err
}
