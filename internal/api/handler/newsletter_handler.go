package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// NewsletterHandler serves newsletter signups.
type NewsletterHandler struct {
	newsletterSvc service.NewsletterService
}

// NewNewsletterHandler creates the NewsletterHandler.
func NewNewsletterHandler(newsletterSvc service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterSvc: newsletterSvc}
}

// Subscribe relays a signup to the mailing provider.
// POST /api/v1/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid email")
		return
	}

	if err := h.newsletterSvc.Subscribe(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrNewsletterDisabled) {
			response.Error(c, http.StatusServiceUnavailable, "newsletter signup unavailable")
			return
		}
		response.InternalError(c, "")
		return
	}
	response.Success(c)
}
