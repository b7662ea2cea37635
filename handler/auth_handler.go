package handler

import (
	"instituteapi/dto"
	"instituteapi/middleware"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *usecase.UserService
}

func NewAuthHandler(users *usecase.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err, "User")
		return
	}
	utils.Created(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.users.Login(c.Request.Context(), usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		TOTPCode:  req.TOTPCode,
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err, "User")
		return
	}

	utils.SuccessMessage(c, "Login successful", dto.LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.Me(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	utils.Success(c, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, expiresAt := middleware.CurrentToken(c)
	if err := h.users.Logout(c.Request.Context(), token, expiresAt); err != nil {
		utils.Log().Error().Err(err).Msg("failed to revoke token")
		utils.InternalError(c, "Failed to logout")
		return
	}
	utils.SuccessMessage(c, "Successfully logged out", nil)
}

func (h *AuthHandler) List(c *gin.Context) {
	res, err := h.users.List(c.Request.Context(), pageParams(c))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	respondPage(c, res)
}
