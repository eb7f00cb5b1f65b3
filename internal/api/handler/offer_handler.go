package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// OfferHandler serves the job board.
type OfferHandler struct {
	offerSvc service.OfferService
}

// NewOfferHandler creates the OfferHandler.
func NewOfferHandler(offerSvc service.OfferService) *OfferHandler {
	return &OfferHandler{offerSvc: offerSvc}
}

// Create posts a job offer.
// POST /api/v1/offers
func (h *OfferHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid offer payload")
		return
	}
	req.OwnerID = userID

	offer, err := h.offerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, offer)
}

// List returns the board, newest first.
// GET /api/v1/offers
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.offerSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, offers)
}
