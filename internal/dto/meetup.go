package dto

// ── Meetups module DTOs ──

// JoinMeetupRequest: enrolment payload.
type JoinMeetupRequest struct {
	MeetupID int64 `json:"meetup_id" binding:"required,gt=0"`
	UserID   int64 `json:"user_id"`
}

// MeetupResponse: event card. Views is the persisted counter plus the
// live Redis delta.
type MeetupResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Place       string `json:"place,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	Views       int64  `json:"views"`
	Attendees   int    `json:"attendees"`
	CreatedAt   string `json:"created_at"`
}
