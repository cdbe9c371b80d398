package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"authorsite-backend/internal/domains/faq"
	"authorsite-backend/internal/shared/response"
)

type FaqHandler struct {
	service faq.Service
}

func NewFaqHandler(svc faq.Service) *FaqHandler {
	return &FaqHandler{service: svc}
}

// List - GET /faqs
func (h *FaqHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// Create - POST /admin/faqs
func (h *FaqHandler) Create(c *gin.Context) {
	var req faq.CreateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, faq.ToHTTPStatus(err), faq.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update - PUT /admin/faqs/:id
func (h *FaqHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid faq id")
		return
	}

	var req faq.UpdateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, faq.ToHTTPStatus(err), faq.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /admin/faqs/:id
func (h *FaqHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid faq id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, faq.ToHTTPStatus(err), faq.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "FAQ deleted"})
}
