package services

import (
	"log"
	"time"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/repository"
)

// promotionDays is how long one payment promotes a restaurant.
const promotionDays = 7

type PaymentService struct {
	Payments    *repository.PaymentRepository
	Restaurants *repository.RestaurantRepository
}

func NewPaymentService(
	payments *repository.PaymentRepository,
	restaurants *repository.RestaurantRepository,
) *PaymentService {
	return &PaymentService{Payments: payments, Restaurants: restaurants}
}

type CreatePaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	RestaurantID  uint   `json:"restaurant_id" binding:"required"`
}

// Create records a promotion payment and marks the restaurant promoted for
// the next seven days.
func (s *PaymentService) Create(owner models.User, req CreatePaymentRequest) (*models.Payment, error) {
	restaurant, err := s.Restaurants.FindAndValidate(req.RestaurantID, owner)
	if err != nil {
		return nil, err
	}

	until := time.Now().AddDate(0, 0, promotionDays)
	restaurant.IsPromoted = true
	restaurant.PromotedUntil = &until
	if err := s.Restaurants.Save(restaurant); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot create payment")
	}

	payment := models.Payment{
		TransactionID: req.TransactionID,
		UserID:        owner.ID,
		RestaurantID:  restaurant.ID,
	}
	if err := s.Payments.Create(&payment); err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot create payment")
	}
	return &payment, nil
}

func (s *PaymentService) List(user models.User) ([]models.Payment, error) {
	payments, err := s.Payments.ListByUser(user.ID)
	if err != nil {
		return nil, apperr.E(apperr.Persistence, "Cannot get payments")
	}
	return payments, nil
}

// ExpirePromotions deactivates promotions whose window has passed and
// returns how many were cleared. Runs from the daily sweep.
func (s *PaymentService) ExpirePromotions(now time.Time) (int, error) {
	expired, err := s.Restaurants.ListExpiredPromotions(now)
	if err != nil {
		return 0, err
	}
	for i := range expired {
		expired[i].IsPromoted = false
		expired[i].PromotedUntil = nil
		if err := s.Restaurants.Save(&expired[i]); err != nil {
			return i, err
		}
	}
	if len(expired) > 0 {
		log.Printf("expired %d restaurant promotions", len(expired))
	}
	return len(expired), nil
}
