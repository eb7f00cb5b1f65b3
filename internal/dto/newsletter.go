package dto

// ── Newsletter module DTOs ──

// SubscribeRequest: newsletter signup payload.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
