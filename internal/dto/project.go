package dto

// ── Projects module DTOs ──

// CreateProjectForm: multipart form for project creation. The cover file
// travels alongside these fields.
type CreateProjectForm struct {
	Title       string `form:"title"       binding:"required,min=1,max=200"`
	Description string `form:"description"`
	Visibility  string `form:"visibility"  binding:"omitempty,oneof=public private"`
	CourseID    int64  `form:"course_id"   binding:"required,gt=0"`
	OwnerID     int64  `form:"-"` // assigned from the authenticated user

}

// ProjectResponse: showcase card payload. ID is the obfuscated public
// form; the numeric id never leaves the server for projects.
type ProjectResponse struct {
	PublicID    string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Visibility  string             `json:"visibility"`
	CoverURL    *string            `json:"cover_url,omitempty"`
	CourseID    int64              `json:"course_id"`
	CourseName  string             `json:"course_name,omitempty"`
	Owner       *UserBasicResponse `json:"owner,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

// CreateProjectResponse: creation result.
type CreateProjectResponse struct {
	PublicID string  `json:"id"`
	CoverURL *string `json:"cover_url,omitempty"`
}
