package dto

// ── Recorded-sessions module DTOs ──

// CreateSessionForm: multipart form for creating a recorded session.
// Cover and video files travel alongside; either may instead arrive as an
// already-hosted URL.
type CreateSessionForm struct {
	Title       string `form:"title"       binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"required,min=1"`
	Tag         string `form:"tag"         binding:"required,min=1,max=60"`
	Teacher     string `form:"teacher"     binding:"required,min=1,max=120"`
	HeldOn      string `form:"held_on"     binding:"omitempty,datetime=2006-01-02"`
	CourseID    int64  `form:"course_id"   binding:"required,gt=0"`
	OwnerID     int64  `form:"-"` // assigned from the authenticated user

	CoverURL    string `form:"cover_url"`
	VideoURL    string `form:"video_url"`
}

// SessionResponse: session card.
type SessionResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tag         string  `json:"tag"`
	Teacher     string  `json:"teacher"`
	HeldOn      string  `json:"held_on"`
	CoverURL    *string `json:"cover_url,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// UploadVideoResponse: result of a video upload.
type UploadVideoResponse struct {
	OK    bool   `json:"ok"`
	Video string `json:"video"`
}
