package dto

// ── Job-offers module DTOs ──

// CreateOfferRequest: new job posting payload. CourseID defaults to the
// general course when omitted.
type CreateOfferRequest struct {
	Title       string  `json:"title"       binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"required,min=1"`
	Salary      float64 `json:"salary"      binding:"required,gt=0"`
	Deadline    string  `json:"deadline"    binding:"omitempty,datetime=2006-01-02"`
	OwnerID     int64   `json:"owner_id"`
}

// OfferResponse: board entry.
type OfferResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Salary      float64            `json:"salary"`
	Deadline    *string            `json:"deadline,omitempty"`
	Owner       *UserBasicResponse `json:"owner,omitempty"`
	CreatedAt   string             `json:"created_at"`
}
