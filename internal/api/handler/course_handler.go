package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// CourseHandler serves the study programme catalog.
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// List returns every course.
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, courses)
}
