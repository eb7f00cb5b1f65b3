package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// MeetupHandler serves the community event board.
type MeetupHandler struct {
	meetupSvc service.MeetupService
}

// NewMeetupHandler creates the MeetupHandler.
func NewMeetupHandler(meetupSvc service.MeetupService) *MeetupHandler {
	return &MeetupHandler{meetupSvc: meetupSvc}
}

// List returns upcoming meetups.
// GET /api/v1/meetups
func (h *MeetupHandler) List(c *gin.Context) {
	meetups, err := h.meetupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, meetups)
}

// Get returns one meetup and counts the view.
// GET /api/v1/meetups/:id
func (h *MeetupHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	meetup, err := h.meetupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMeetupNotFound) {
			response.NotFound(c, "meetup not found")
			return
		}
		response.InternalError(c, "")
		return
	}
	response.OK(c, meetup)
}

// Join enrols the caller in a meetup.
// POST /api/v1/meetups/:id/join
func (h *MeetupHandler) Join(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.meetupSvc.Join(c.Request.Context(), &dto.JoinMeetupRequest{MeetupID: id, UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMeetupNotFound):
			response.NotFound(c, "meetup not found")
		case errors.Is(err, service.ErrAlreadyJoined):
			response.Conflict(c, "already joined")
		default:
			response.InternalError(c, "")
		}
		return
	}
	response.Success(c)
}
