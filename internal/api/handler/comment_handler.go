package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// CommentHandler serves the comment feed.
type CommentHandler struct {
	commentSvc service.CommentService
}

// NewCommentHandler creates the CommentHandler.
func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// Add posts a comment on a project.
// POST /api/v1/comments
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid comment payload")
		return
	}
	req.UserID = userID

	comment, err := h.commentSvc.Add(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadProjectID):
			response.BadRequest(c, "invalid project id")
		case errors.Is(err, service.ErrProjectNotFound):
			response.NotFound(c, "project not found")
		default:
			response.InternalError(c, "")
		}
		return
	}
	response.OK(c, comment)
}

// List returns the global comment feed, newest first.
// GET /api/v1/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, comments)
}
