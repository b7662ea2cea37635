package handler

import (
	"instituteapi/dto"
	"instituteapi/middleware"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

func (h *AuthHandler) SetupTwoFactor(c *gin.Context) {
	setup, err := h.users.SetupTwoFactor(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "User")
		return
	}
	utils.SuccessMessage(c, "Scan the QR code, then confirm with a code", dto.TwoFactorSetupResponse{
		Secret:     setup.Secret,
		OTPAuthURL: setup.URL,
		QRCode:     setup.QRCode,
	})
}

func (h *AuthHandler) EnableTwoFactor(c *gin.Context) {
	var req dto.TwoFactorCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.users.EnableTwoFactor(c.Request.Context(), middleware.CurrentUserID(c), req.Code); err != nil {
		respondError(c, err, "User")
		return
	}
	utils.SuccessMessage(c, "2FA enabled successfully", nil)
}

func (h *AuthHandler) DisableTwoFactor(c *gin.Context) {
	var req dto.TwoFactorCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.users.DisableTwoFactor(c.Request.Context(), middleware.CurrentUserID(c), req.Code); err != nil {
		respondError(c, err, "User")
		return
	}
	utils.SuccessMessage(c, "2FA disabled successfully", nil)
}
