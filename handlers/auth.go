package handlers

import (
	"food-ordering-api/middleware"
	"food-ordering-api/pkg/resp"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *services.UserService
	Auth  *middleware.Auth
}

func NewAuthHandler(users *services.UserService, auth *middleware.Auth) *AuthHandler {
	return &AuthHandler{Users: users, Auth: auth}
}

// Register creates a new account and returns a token for it
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Users.CreateAccount(req)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	token, err := h.Auth.GenerateToken(user.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	resp.Created(c, gin.H{"token": token, "user": user})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Users.Login(req)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	token, err := h.Auth.GenerateToken(user.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// Profile returns the authenticated user's own record
func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	profile, err := h.Users.Profile(user.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": profile})
}

// EditProfile updates email and/or password
func (h *AuthHandler) EditProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req services.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := h.Users.EditProfile(user, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": updated})
}

type verifyEmailRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyEmail consumes a verification code
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Users.VerifyEmail(req.Code); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"verified": true})
}
