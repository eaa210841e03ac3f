package handlers

import (
	"strconv"

	"food-ordering-api/pkg/resp"
	"food-ordering-api/services"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	Restaurants *services.RestaurantService
}

func NewPublicHandler(restaurants *services.RestaurantService) *PublicHandler {
	return &PublicHandler{Restaurants: restaurants}
}

// ListRestaurants returns all restaurants, promoted ones first
func (h *PublicHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns one restaurant with its menu
func (h *PublicHandler) GetRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	restaurant, err := h.Restaurants.Get(uint(id))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": restaurant})
}

// SearchRestaurants matches restaurants by name
func (h *PublicHandler) SearchRestaurants(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		resp.BadRequest(c, "query parameter required")
		return
	}

	restaurants, err := h.Restaurants.Search(query)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// ListCategories returns every category with its restaurant count
func (h *PublicHandler) ListCategories(c *gin.Context) {
	categories, err := h.Restaurants.ListCategories()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(categories), "categories": categories})
}

// GetCategory returns one category with its restaurants, by slug
func (h *PublicHandler) GetCategory(c *gin.Context) {
	category, restaurants, err := h.Restaurants.CategoryBySlug(c.Param("slug"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"category": category, "restaurants": restaurants})
}

// GetStateMachineInfo documents which roles may set which order statuses
func (h *PublicHandler) GetStateMachineInfo(c *gin.Context) {
	resp.OK(c, gin.H{"rules": statemachine.AllRules()})
}
