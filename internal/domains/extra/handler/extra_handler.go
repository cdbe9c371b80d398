package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"authorsite-backend/internal/domains/extra"
	"authorsite-backend/internal/shared/response"
)

type ExtraHandler struct {
	service extra.Service
}

func NewExtraHandler(svc extra.Service) *ExtraHandler {
	return &ExtraHandler{service: svc}
}

// ListPublic - GET /extras (active only)
func (h *ExtraHandler) ListPublic(c *gin.Context) {
	extras, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, extras)
}

// ListAll - GET /admin/extras (includes inactive)
func (h *ExtraHandler) ListAll(c *gin.Context) {
	extras, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, extras)
}

// Create - POST /admin/extras
func (h *ExtraHandler) Create(c *gin.Context) {
	var req extra.CreateExtraRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, extra.ToHTTPStatus(err), extra.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update - PUT /admin/extras/:id
func (h *ExtraHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid extra id")
		return
	}

	var req extra.UpdateExtraRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, extra.ToHTTPStatus(err), extra.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /admin/extras/:id
func (h *ExtraHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid extra id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, extra.ToHTTPStatus(err), extra.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Extra deleted"})
}
