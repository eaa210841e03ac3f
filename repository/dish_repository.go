package repository

import (
	"errors"

	"food-ordering-api/apperr"
	"food-ordering-api/models"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// FindByID looks a dish up globally by id, not scoped to a restaurant.
func (r *DishRepository) FindByID(id uint) (*models.Dish, error) {
	var d models.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *models.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Save(d *models.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Dish{}, id).Error
}

// FindAndValidate resolves a dish with its owning restaurant loaded and
// checks the actor owns that restaurant.
func (r *DishRepository) FindAndValidate(id uint, actor models.User) (*models.Dish, error) {
	var d models.Dish
	if err := r.DB.Preload("Restaurant").First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Dish not found")
		}
		return nil, apperr.E(apperr.Persistence, "Cannot load dish")
	}
	if d.Restaurant.OwnerID != actor.ID {
		return nil, apperr.E(apperr.NotAuthorized, "You are not the owner of this dish's restaurant")
	}
	return &d, nil
}
