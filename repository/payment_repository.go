package repository

import (
	"food-ordering-api/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) ListByUser(userID uint) ([]models.Payment, error) {
	var out []models.Payment
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&out).Error
	return out, err
}
