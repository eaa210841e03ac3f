package repository

import (
	"food-ordering-api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *models.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Save(u *models.User) error {
	return r.DB.Save(u).Error
}

// ReplaceVerification drops any pending verification for the user and
// stores a fresh one.
func (r *UserRepository) ReplaceVerification(v *models.Verification) error {
	if err := r.DB.Where("user_id = ?", v.UserID).Delete(&models.Verification{}).Error; err != nil {
		return err
	}
	return r.DB.Create(v).Error
}

// FindVerification loads a verification by code together with its user.
func (r *UserRepository) FindVerification(code string) (*models.Verification, error) {
	var v models.Verification
	if err := r.DB.Preload("User").Where("code = ?", code).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *UserRepository) DeleteVerification(id uint) error {
	return r.DB.Delete(&models.Verification{}, id).Error
}
