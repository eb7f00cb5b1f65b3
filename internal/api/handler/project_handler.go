package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// ProjectHandler serves the project showcase.
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler creates the ProjectHandler.
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// List returns every public project.
// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, projects)
}

// Get returns one project by its obfuscated id.
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectSvc.GetByPublicID(c.Request.Context(), c.Param("id"))
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
	response.OK(c, project)
}

// Create stores a project with an optional cover image.
// POST /api/v1/projects  (multipart/form-data)
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var form dto.CreateProjectForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "invalid project form")
		return
	}
	form.OwnerID = userID

	var (
		cover     multipart.File
		coverName string
		coverType string
	)
	if fileHeader, err := c.FormFile("cover"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(c, "unreadable cover file")
			return
		}
		defer f.Close()
		cover = f
		coverName = fileHeader.Filename
		coverType = fileHeader.Header.Get("Content-Type")
	}

	var body *dto.CreateProjectResponse
	var err error
	if cover != nil {
		body, err = h.projectSvc.Create(c.Request.Context(), &form, coverName, coverType, cover)
	} else {
		body, err = h.projectSvc.Create(c.Request.Context(), &form, "", "", nil)
	}
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.BadRequest(c, "unknown course")
			return
		}
		response.InternalError(c, "")
		return
	}
	response.OK(c, body)
}

// Comments returns the comment feed of one project.
// GET /api/v1/projects/:id/comments
func (h *ProjectHandler) Comments(c *gin.Context) {
	comments, err := h.projectSvc.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBadProjectID) {
			response.BadRequest(c, "invalid project id")
			return
		}
		response.InternalError(c, "")
		return
	}
	response.OK(c, comments)
}
