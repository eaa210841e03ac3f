package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Public     *handlers.PublicHandler
	Restaurant *handlers.RestaurantHandler
	Order      *handlers.OrderHandler
	Payment    *handlers.PaymentHandler
}

func SetupRoutes(r *gin.Engine, auth *middleware.Auth, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)
		public.POST("/auth/verify-email", h.Auth.VerifyEmail)

		public.GET("/restaurants", h.Public.ListRestaurants)
		public.GET("/restaurants/:id", h.Public.GetRestaurant)
		public.GET("/search/restaurants", h.Public.SearchRestaurants)
		public.GET("/categories", h.Public.ListCategories)
		public.GET("/categories/:slug", h.Public.GetCategory)

		public.GET("/state-machine", h.Public.GetStateMachineInfo)
	}

	// ── Any authenticated user ─────────────────────────────────────
	any := r.Group("/api")
	any.Use(auth.Authorize(models.RoleAny))
	{
		any.GET("/profile", h.Auth.Profile)
		any.PUT("/profile", h.Auth.EditProfile)

		any.GET("/orders", h.Order.ListOrders)
		any.GET("/orders/:id", h.Order.GetOrder)
	}

	// ── Customer routes ────────────────────────────────────────────
	client := r.Group("/api")
	client.Use(auth.Authorize(models.RoleClient))
	{
		client.POST("/orders", h.Order.PlaceOrder)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	owner := r.Group("/api/owner")
	owner.Use(auth.Authorize(models.RoleOwner))
	{
		owner.POST("/restaurants", h.Restaurant.CreateRestaurant)
		owner.PUT("/restaurants/:id", h.Restaurant.UpdateRestaurant)
		owner.DELETE("/restaurants/:id", h.Restaurant.DeleteRestaurant)

		owner.POST("/dishes", h.Restaurant.AddDish)
		owner.PUT("/dishes/:dishId", h.Restaurant.UpdateDish)
		owner.DELETE("/dishes/:dishId", h.Restaurant.DeleteDish)

		owner.POST("/payments", h.Payment.CreatePayment)
		owner.GET("/payments", h.Payment.ListPayments)
	}

	// ── Status transitions: owner or driver per the state machine ──
	transition := r.Group("/api")
	transition.Use(auth.Authorize(models.RoleOwner, models.RoleDelivery))
	{
		transition.PUT("/orders/:id/status", h.Order.SetOrderStatus)
	}

	// ── Driver routes ──────────────────────────────────────────────
	driver := r.Group("/api/driver")
	driver.Use(auth.Authorize(models.RoleDelivery))
	{
		driver.PUT("/orders/:id/take", h.Order.TakeOrder)
	}
}
