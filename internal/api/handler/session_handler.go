package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// SessionHandler serves recorded class sessions.
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler creates the SessionHandler.
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// List returns every recorded session, newest first.
// GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessionSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, sessions)
}

// Create stores a session with an optional cover image.
// POST /api/v1/sessions  (multipart/form-data)
func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var form dto.CreateSessionForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "invalid session form")
		return
	}
	form.OwnerID = userID

	var session *dto.SessionResponse
	var err error
	if fileHeader, ferr := c.FormFile("cover"); ferr == nil {
		f, oerr := fileHeader.Open()
		if oerr != nil {
			response.BadRequest(c, "unreadable cover file")
			return
		}
		defer f.Close()
		session, err = h.sessionSvc.Create(c.Request.Context(), &form,
			fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	} else {
		session, err = h.sessionSvc.Create(c.Request.Context(), &form, "", "", nil)
	}
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.BadRequest(c, "unknown course")
			return
		}
		response.InternalError(c, "")
		return
	}
	response.OK(c, session)
}

// UploadVideo attaches a recording to a session. The route carries its
// own body limit sized for video uploads.
// POST /api/v1/sessions/:id/video  (multipart/form-data)
func (h *SessionHandler) UploadVideo(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		response.BadRequest(c, "missing video file")
		return
	}
	if fileHeader.Size > service.MaxVideoSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "video exceeds the 500MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unreadable video file")
		return
	}
	defer file.Close()

	result, err := h.sessionSvc.UploadVideo(c.Request.Context(), id,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadVideoType):
			response.BadRequest(c, "unsupported video type")
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, "session not found")
		default:
			response.InternalError(c, "")
		}
		return
	}
	response.OK(c, result)
}
