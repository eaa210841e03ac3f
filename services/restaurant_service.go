package services

import (
	"errors"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Restaurants *repository.RestaurantRepository
	Dishes      *repository.DishRepository
	Categories  *repository.CategoryRepository
}

func NewRestaurantService(
	restaurants *repository.RestaurantRepository,
	dishes *repository.DishRepository,
	categories *repository.CategoryRepository,
) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants, Dishes: dishes, Categories: categories}
}

type RestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	CoverImage   string `json:"cover_image"`
	CategoryName string `json:"category_name"`
}

type DishRequest struct {
	RestaurantID uint                `json:"restaurant_id" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	Price        float64             `json:"price" binding:"required,min=0"`
	Description  string              `json:"description"`
	Photo        string              `json:"photo"`
	Options      []models.DishOption `json:"options"`
}

type EditDishRequest struct {
	Name        string              `json:"name"`
	Price       *float64            `json:"price" binding:"omitempty,min=0"`
	Description string              `json:"description"`
	Photo       string              `json:"photo"`
	Options     []models.DishOption `json:"options"`
}

func (s *RestaurantService) List() ([]models.Restaurant, error) {
	restaurants, err := s.Restaurants.ListAll()
	if err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot load restaurants")
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(id uint) (*models.Restaurant, error) {
	restaurant, err := s.Restaurants.FindWithMenu(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Restaurant not found")
		}
		return nil, apperr.E(apperr.Persistence, "Cannot load restaurant")
	}
	return restaurant, nil
}

func (s *RestaurantService) Create(owner models.User, req RestaurantRequest) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		OwnerID:    owner.ID,
		Name:       req.Name,
		Address:    req.Address,
		CoverImage: req.CoverImage,
	}
	if err := s.attachCategory(&restaurant, req.CategoryName); err != nil {
		return nil, err
	}
	if err := s.Restaurants.Create(&restaurant); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot create restaurant")
	}
	return &restaurant, nil
}

func (s *RestaurantService) Update(owner models.User, id uint, req RestaurantRequest) (*models.Restaurant, error) {
	restaurant, err := s.Restaurants.FindAndValidate(id, owner)
	if err != nil {
		return nil, err
	}
	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.CoverImage = req.CoverImage
	if err := s.attachCategory(restaurant, req.CategoryName); err != nil {
		return nil, err
	}
	if err := s.Restaurants.Save(restaurant); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot update restaurant")
	}
	return restaurant, nil
}

func (s *RestaurantService) attachCategory(restaurant *models.Restaurant, name string) error {
	if name == "" {
		return nil
	}
	category, err := s.Categories.GetOrCreate(name)
	if err != nil {
		return apperr.E(apperr.Persistence, "Cannot load category")
	}
	restaurant.CategoryID = &category.ID
	restaurant.Category = category
	return nil
}

// CategorySummary pairs a category with how many restaurants carry it.
type CategorySummary struct {
	models.Category
	RestaurantCount int64 `json:"restaurant_count"`
}

func (s *RestaurantService) ListCategories() ([]CategorySummary, error) {
	categories, err := s.Categories.ListAll()
	if err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot load categories")
	}
	out := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		n, err := s.Categories.CountRestaurants(c.ID)
		if err != nil {
			return nil, apperr.E(apperr.Persistence, "Cannot load categories")
		}
		out = append(out, CategorySummary{Category: c, RestaurantCount: n})
	}
	return out, nil
}

// CategoryBySlug returns a category and the restaurants in it.
func (s *RestaurantService) CategoryBySlug(slug string) (*models.Category, []models.Restaurant, error) {
	category, err := s.Categories.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.E(apperr.NotFound, "Category not found")
		}
		return nil, nil, apperr.E(apperr.Persistence, "Cannot load category")
	}
	restaurants, err := s.Restaurants.ListByCategory(category.ID)
	if err != nil {
		return nil, nil, apperr.E(apperr.Persistence, "Cannot load category")
	}
	return category, restaurants, nil
}

// Search matches restaurants by name substring.
func (s *RestaurantService) Search(query string) ([]models.Restaurant, error) {
	restaurants, err := s.Restaurants.SearchByName(query)
	if err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot search restaurants")
	}
	return restaurants, nil
}

func (s *RestaurantService) Delete(owner models.User, id uint) error {
	restaurant, err := s.Restaurants.FindAndValidate(id, owner)
	if err != nil {
		return err
	}
	if err := s.Restaurants.Delete(restaurant.ID); err != nil {
		return apperr.E(apperr.Persistence, "Cannot delete restaurant")
	}
	return nil
}

func (s *RestaurantService) CreateDish(owner models.User, req DishRequest) (*models.Dish, error) {
	restaurant, err := s.Restaurants.FindAndValidate(req.RestaurantID, owner)
	if err != nil {
		return nil, err
	}
	dish := models.Dish{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Photo:        req.Photo,
		Options:      req.Options,
	}
	if err := s.Dishes.Create(&dish); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot create dish")
	}
	return &dish, nil
}

func (s *RestaurantService) UpdateDish(owner models.User, dishID uint, req EditDishRequest) (*models.Dish, error) {
	dish, err := s.Dishes.FindAndValidate(dishID, owner)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		dish.Name = req.Name
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Description != "" {
		dish.Description = req.Description
	}
	if req.Photo != "" {
		dish.Photo = req.Photo
	}
	if req.Options != nil {
		dish.Options = req.Options
	}
	if err := s.Dishes.Save(dish); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot update dish")
	}
	return dish, nil
}

func (s *RestaurantService) DeleteDish(owner models.User, dishID uint) error {
	dish, err := s.Dishes.FindAndValidate(dishID, owner)
	if err != nil {
		return err
	}
	if err := s.Dishes.Delete(dish.ID); err != nil {
		return apperr.E(apperr.Persistence, "Cannot delete dish")
	}
	return nil
}
