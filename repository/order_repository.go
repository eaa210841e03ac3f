package repository

import (
	"food-ordering-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order and its item snapshots in one transaction.
func (r *OrderRepository) Create(o *models.Order) error {
	return r.DB.Create(o).Error
}

// FindWithRestaurant loads an order with its restaurant relation, which the
// ownership check requires.
func (r *OrderRepository) FindWithRestaurant(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.DB.Preload("Restaurant").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindDetailed loads an order with restaurant, items and driver for
// response shaping.
func (r *OrderRepository) FindDetailed(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.DB.
		Preload("Restaurant").
		Preload("Items.Dish").
		Preload("Driver").
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByCustomer(customerID uint, status *models.OrderStatus) ([]models.Order, error) {
	return r.list("customer_id = ?", customerID, status)
}

func (r *OrderRepository) ListByDriver(driverID uint, status *models.OrderStatus) ([]models.Order, error) {
	return r.list("driver_id = ?", driverID, status)
}

func (r *OrderRepository) list(cond string, id uint, status *models.OrderStatus) ([]models.Order, error) {
	query := r.DB.Where(cond, id)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var out []models.Order
	err := query.Order("created_at desc").Find(&out).Error
	return out, err
}

// UpdateStatus persists only the status column.
func (r *OrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// AssignDriver sets the driver on an order.
func (r *OrderRepository) AssignDriver(id, driverID uint) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", id).Update("driver_id", driverID).Error
}
