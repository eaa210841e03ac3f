package services

import (
	"errors"
	"log"

	"food-ordering-api/apperr"
	"food-ordering-api/mail"
	"food-ordering-api/models"
	"food-ordering-api/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Users  *repository.UserRepository
	Mailer mail.Sender
}

func NewUserService(users *repository.UserRepository, mailer mail.Sender) *UserService {
	return &UserService{Users: users, Mailer: mailer}
}

type CreateAccountRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type EditProfileRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

var accountRoles = map[models.UserRole]bool{
	models.RoleClient:   true,
	models.RoleOwner:    true,
	models.RoleDelivery: true,
}

// CreateAccount registers a new user and starts email verification. Mail
// delivery failures are logged, never returned.
func (s *UserService) CreateAccount(req CreateAccountRequest) (*models.User, error) {
	if !accountRoles[req.Role] {
		return nil, apperr.E(apperr.Validation, "Invalid role. Must be: Client, Owner or Delivery")
	}

	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, apperr.E(apperr.Validation, "There is a user with that email already")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.E(apperr.Persistence, "Couldn't create account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.E(apperr.Persistence, "Couldn't create account")
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.Users.Create(&user); err != nil {
		return nil, apperr.E(apperr.Persistence, "Couldn't create account")
	}

	s.startVerification(&user)
	return &user, nil
}

// Login checks credentials and returns the user. Token generation happens
// at the handler so the service stays independent of the JWT layer.
func (s *UserService) Login(req LoginRequest) (*models.User, error) {
	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotAuthorized, "Check your email and password")
		}
		return nil, apperr.E(apperr.Persistence, "Couldn't log in")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.E(apperr.NotAuthorized, "Check your email and password")
	}
	return user, nil
}

func (s *UserService) Profile(id uint) (*models.User, error) {
	user, err := s.Users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "User not found")
		}
		return nil, apperr.E(apperr.Persistence, "Couldn't load profile")
	}
	return user, nil
}

// EditProfile updates email and/or password. A changed email resets the
// verified flag and issues a fresh verification code.
func (s *UserService) EditProfile(user models.User, req EditProfileRequest) (*models.User, error) {
	emailChanged := false
	if req.Email != "" && req.Email != user.Email {
		if _, err := s.Users.FindByEmail(req.Email); err == nil {
			return nil, apperr.E(apperr.Validation, "There is a user with that email already")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.Persistence, "Couldn't update profile")
		}
		user.Email = req.Email
		user.Verified = false
		emailChanged = true
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.E(apperr.Persistence, "Couldn't update profile")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.Users.Save(&user); err != nil {
		return nil, apperr.E(apperr.Persistence, "Couldn't update profile")
	}
	// Only an email change invalidates the mailed code; a password-only
	// edit must not reissue verification.
	if emailChanged {
		s.startVerification(&user)
	}
	return &user, nil
}

// VerifyEmail marks a user verified and consumes the code.
func (s *UserService) VerifyEmail(code string) error {
	verification, err := s.Users.FindVerification(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.E(apperr.NotFound, "Verification not found")
		}
		return apperr.E(apperr.Persistence, "Couldn't verify email")
	}

	user := verification.User
	user.Verified = true
	if err := s.Users.Save(&user); err != nil {
		return apperr.E(apperr.Persistence, "Couldn't verify email")
	}
	if err := s.Users.DeleteVerification(verification.ID); err != nil {
		return apperr.E(apperr.Persistence, "Couldn't verify email")
	}
	return nil
}

func (s *UserService) startVerification(user *models.User) {
	verification := models.Verification{
		Code:   uuid.NewString(),
		UserID: user.ID,
	}
	if err := s.Users.ReplaceVerification(&verification); err != nil {
		log.Printf("verification for %s: %v", user.Email, err)
		return
	}
	if s.Mailer == nil {
		return
	}
	if err := s.Mailer.SendVerification(user.Email, verification.Code); err != nil {
		log.Printf("verification mail to %s: %v", user.Email, err)
	}
}
