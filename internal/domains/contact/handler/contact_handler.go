package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/contact"
	"authorsite-backend/internal/shared/export"
	"authorsite-backend/internal/shared/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit - POST /contact/inquiry
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.CreateInquiryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inquiry, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, contact.ToHTTPStatus(err), contact.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, inquiry)
}

// List - GET /admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	inquiries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, inquiries)
}

// Export - GET /admin/contacts/export?format=csv|xlsx
func (h *ContactHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		response.BadRequest(c, "format must be csv or xlsx")
		return
	}

	inquiries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	table := export.Table{
		Headers: []string{"Name", "Email", "Subject", "Message", "Status", "Submitted At"},
		Rows:    make([][]string, 0, len(inquiries)),
	}
	for _, i := range inquiries {
		table.Rows = append(table.Rows, []string{
			i.Name,
			i.Email,
			i.Subject,
			i.Message,
			i.Status,
			i.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}

	filename := fmt.Sprintf("contact_inquiries_%s", time.Now().UTC().Format("2006-01-02"))

	var data []byte
	var contentType string
	switch format {
	case "xlsx":
		data, err = export.ToXLSX(table, "Inquiries")
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename += ".xlsx"
	default:
		data, err = export.ToCSV(table)
		contentType = "text/csv"
		filename += ".csv"
	}
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			response.NotFound(c, "no inquiries to export")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
