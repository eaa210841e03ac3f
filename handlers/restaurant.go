package handlers

import (
	"strconv"

	"food-ordering-api/middleware"
	"food-ordering-api/pkg/resp"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantHandler(restaurants *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Restaurants: restaurants}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// CreateRestaurant registers a new restaurant for the calling owner
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var req services.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restaurant, err := h.Restaurants.Create(owner, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant edits a restaurant the caller owns
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restaurant, err := h.Restaurants.Update(owner, id, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant the caller owns
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Restaurants.Delete(owner, id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// AddDish creates a dish on a restaurant the caller owns
func (h *RestaurantHandler) AddDish(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var req services.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Restaurants.CreateDish(owner, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"dish": dish})
}

// UpdateDish edits a dish the caller owns
func (h *RestaurantHandler) UpdateDish(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	dishID, ok := pathID(c, "dishId")
	if !ok {
		return
	}

	var req services.EditDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Restaurants.UpdateDish(owner, dishID, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"dish": dish})
}

// DeleteDish removes a dish the caller owns
func (h *RestaurantHandler) DeleteDish(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	dishID, ok := pathID(c, "dishId")
	if !ok {
		return
	}

	if err := h.Restaurants.DeleteDish(owner, dishID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": dishID})
}
