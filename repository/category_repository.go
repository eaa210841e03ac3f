package repository

import (
	"errors"
	"strings"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// Slugify normalizes a category name to its slug: trimmed, lowercased,
// spaces collapsed to single dashes. "Fast  Food" and "fast food" map to
// the same category.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}

func (r *CategoryRepository) ListAll() ([]models.Category, error) {
	var out []models.Category
	err := r.DB.Order("name asc").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var c models.Category
	if err := r.DB.Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate resolves a category by the slug of name, creating it on
// first use. The stored name is the normalized form.
func (r *CategoryRepository) GetOrCreate(name string) (*models.Category, error) {
	slug := Slugify(name)
	existing, err := r.FindBySlug(slug)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := models.Category{
		Name: strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " "),
		Slug: slug,
	}
	if err := r.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CountRestaurants returns how many restaurants carry the category.
func (r *CategoryRepository) CountRestaurants(categoryID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&models.Restaurant{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}
