package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/settings"
	"authorsite-backend/internal/shared/response"
)

type SettingsHandler struct {
	service settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// GetAuthor - GET /author
func (h *SettingsHandler) GetAuthor(c *gin.Context) {
	profile, err := h.service.GetAuthorProfile(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetHero - GET /hero
func (h *SettingsHandler) GetHero(c *gin.Context) {
	hero, err := h.service.GetHero(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, hero)
}

// Login - POST /admin/login
func (h *SettingsHandler) Login(c *gin.Context) {
	var req settings.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, settings.ToHTTPStatus(err), settings.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, res)
}

// ChangePassword - POST /admin/change-password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req settings.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), &req); err != nil {
		response.ErrorResponse(c, settings.ToHTTPStatus(err), settings.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// UpdateAuthor - PUT /admin/author
func (h *SettingsHandler) UpdateAuthor(c *gin.Context) {
	var req settings.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.service.ReplaceAuthorProfile(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, settings.ToHTTPStatus(err), settings.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateHero - PUT /admin/hero
func (h *SettingsHandler) UpdateHero(c *gin.Context) {
	var req settings.UpdateHeroRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hero, err := h.service.ReplaceHero(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, settings.ToHTTPStatus(err), settings.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, hero)
}
