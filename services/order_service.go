package services

import (
	"errors"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/repository"
	"food-ordering-api/statemachine"

	"gorm.io/gorm"
)

type OrderService struct {
	Orders      *repository.OrderRepository
	Restaurants *repository.RestaurantRepository
	Dishes      *repository.DishRepository
}

func NewOrderService(
	orders *repository.OrderRepository,
	restaurants *repository.RestaurantRepository,
	dishes *repository.DishRepository,
) *OrderService {
	return &OrderService{Orders: orders, Restaurants: restaurants, Dishes: dishes}
}

type CreateOrderItemOption struct {
	Name   string `json:"name" binding:"required"`
	Choice string `json:"choice"`
}

type CreateOrderItem struct {
	DishID  uint                    `json:"dish_id" binding:"required"`
	Options []CreateOrderItemOption `json:"options"`
}

type CreateOrderRequest struct {
	RestaurantID uint              `json:"restaurant_id" binding:"required"`
	Items        []CreateOrderItem `json:"items" binding:"required,min=1"`
}

// Create validates the cart against the menu and prices it. Validation is
// fail-fast in item-then-option-then-choice order; the total is the sum of
// dish price, option cost (added whether or not a choice was picked) and
// choice cost. Dishes are resolved globally by id, not scoped to the
// restaurant.
func (s *OrderService) Create(customer models.User, req CreateOrderRequest) (*models.Order, error) {
	restaurant, err := s.Restaurants.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.Validation, "Restaurant not found")
		}
		return nil, apperr.E(apperr.Persistence, "Cannot create order")
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		dish, err := s.Dishes.FindByID(item.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.E(apperr.Validation, "Dish not found")
			}
			return nil, apperr.E(apperr.Persistence, "Cannot create order")
		}
		total += dish.Price

		options := make([]models.OrderItemOption, 0, len(item.Options))
		for _, sel := range item.Options {
			dishOption := dish.FindOption(sel.Name)
			if dishOption == nil {
				return nil, apperr.E(apperr.Validation, "Dish option not found")
			}

			if sel.Choice != "" {
				choice := dishOption.FindChoice(sel.Choice)
				if choice == nil {
					return nil, apperr.E(apperr.Validation, "Dish choice not found")
				}
				total += choice.Cost
			}

			total += dishOption.Cost
			options = append(options, models.OrderItemOption{Name: sel.Name, Choice: sel.Choice})
		}

		items = append(items, models.OrderItem{DishID: dish.ID, Options: options})
	}

	order := models.Order{
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		Items:        items,
		Total:        total,
		Status:       models.StatusPending,
	}
	if err := s.Orders.Create(&order); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot create order")
	}
	return &order, nil
}

// List returns the orders visible to the identity, optionally filtered by
// status. Owners get the union across all their restaurants, flattened and
// filtered in memory.
func (s *OrderService) List(user models.User, status *models.OrderStatus) ([]models.Order, error) {
	switch user.Role {
	case models.RoleClient:
		orders, err := s.Orders.ListByCustomer(user.ID, status)
		if err != nil {
			return nil, apperr.E(apperr.Persistence, "Cannot get orders")
		}
		return orders, nil
	case models.RoleDelivery:
		orders, err := s.Orders.ListByDriver(user.ID, status)
		if err != nil {
			return nil, apperr.E(apperr.Persistence, "Cannot get orders")
		}
		return orders, nil
	case models.RoleOwner:
		restaurants, err := s.Restaurants.ListByOwnerWithOrders(user.ID)
		if err != nil {
			return nil, apperr.E(apperr.Persistence, "Cannot get orders")
		}
		orders := []models.Order{}
		for _, r := range restaurants {
			orders = append(orders, r.Orders...)
		}
		if status != nil {
			filtered := orders[:0]
			for _, o := range orders {
				if o.Status == *status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}
		return orders, nil
	}
	return nil, apperr.E(apperr.NotAuthorized, "Not authorized")
}

// IsAuthorized reports whether the identity is related to the order in its
// role-specific way: customers to their own orders, owners through the
// order's restaurant, drivers through assignment. order.Restaurant must be
// loaded before calling.
func IsAuthorized(user models.User, order *models.Order) bool {
	switch user.Role {
	case models.RoleClient:
		return order.CustomerID == user.ID
	case models.RoleOwner:
		return order.Restaurant.OwnerID == user.ID
	case models.RoleDelivery:
		return order.DriverID != nil && *order.DriverID == user.ID
	}
	return false
}

// Get loads one order with its restaurant and enforces the ownership check.
func (s *OrderService) Get(user models.User, id uint) (*models.Order, error) {
	order, err := s.Orders.FindWithRestaurant(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Order not found")
		}
		return nil, apperr.E(apperr.Persistence, "Cannot get order")
	}
	if !IsAuthorized(user, order) {
		return nil, apperr.E(apperr.NotAuthorized, "Not authorized")
	}
	return order, nil
}

// SetStatus moves an order to a new status after the ownership check and
// the role gate. Only the status column is written; total and items are
// untouched. Re-setting the current status is a valid no-op write.
func (s *OrderService) SetStatus(user models.User, id uint, status models.OrderStatus) (*models.Order, error) {
	order, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}

	if !models.ValidStatus(status) || statemachine.CanSet(user.Role, status) != nil {
		return nil, apperr.E(apperr.InvalidStatus, "Invalid status")
	}

	if err := s.Orders.UpdateStatus(order.ID, status); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot edit order")
	}
	order.Status = status
	return order, nil
}

// Take assigns the calling driver to an unassigned order.
func (s *OrderService) Take(driver models.User, id uint) (*models.Order, error) {
	order, err := s.Orders.FindWithRestaurant(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Order not found")
		}
		return nil, apperr.E(apperr.Persistence, "Cannot take order")
	}
	if order.DriverID != nil {
		return nil, apperr.E(apperr.Validation, "This order already has a driver")
	}
	if err := s.Orders.AssignDriver(order.ID, driver.ID); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot take order")
	}
	order.DriverID = &driver.ID
	return order, nil
}
