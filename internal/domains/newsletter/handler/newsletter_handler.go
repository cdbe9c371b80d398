package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/newsletter"
	"authorsite-backend/internal/shared/export"
	"authorsite-backend/internal/shared/response"
)

type NewsletterHandler struct {
	service newsletter.Service
}

func NewNewsletterHandler(svc newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{service: svc}
}

// Subscribe - POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, newsletter.ToHTTPStatus(err), newsletter.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, sub)
}

// List - GET /admin/newsletters
func (h *NewsletterHandler) List(c *gin.Context) {
	subscribers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, subscribers)
}

// Export - GET /admin/newsletters/export?format=csv|xlsx
func (h *NewsletterHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		response.BadRequest(c, "format must be csv or xlsx")
		return
	}

	subscribers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	table := export.Table{
		Headers: []string{"Email", "Subscribed At", "Active"},
		Rows:    make([][]string, 0, len(subscribers)),
	}
	for _, s := range subscribers {
		table.Rows = append(table.Rows, []string{
			s.Email,
			s.SubscribedAt.UTC().Format(time.RFC3339),
			strconv.FormatBool(s.Active),
		})
	}

	filename := fmt.Sprintf("newsletter_subscribers_%s", time.Now().UTC().Format("2006-01-02"))

	var data []byte
	var contentType string
	switch format {
	case "xlsx":
		data, err = export.ToXLSX(table, "Subscribers")
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename += ".xlsx"
	default:
		data, err = export.ToCSV(table)
		contentType = "text/csv"
		filename += ".csv"
	}
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			response.NotFound(c, "no subscribers to export")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
