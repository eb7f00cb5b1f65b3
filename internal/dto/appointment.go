package dto

// ── Appointments module DTOs ──

// BookAppointmentRequest: booking payload. OwnerID zero or missing means
// "not authenticated" and is rejected with 401.
type BookAppointmentRequest struct {
	Day         string `json:"day"         binding:"required,datetime=2006-01-02"`
	Time        string `json:"time"        binding:"required"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

// CancelAppointmentRequest: cancellation payload.
type CancelAppointmentRequest struct {
	ID     int64 `json:"id" binding:"required,gt=0"`
	UserID int64 `json:"user_id"`
}
