package dto

// ── Comments module DTOs ──

// AddCommentRequest: new comment payload.
type AddCommentRequest struct {
	ProjectID string `json:"project_id" binding:"required"` // obfuscated public id
	UserID    int64  `json:"user_id"`
	Body      string `json:"body" binding:"required,min=1"`
}

// CommentResponse: feed entry.
type CommentResponse struct {
	ID        int64              `json:"id"`
	Body      string             `json:"body"`
	User      *UserBasicResponse `json:"user,omitempty"`
	CreatedAt string             `json:"created_at"`
}
