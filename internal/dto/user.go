package dto

// ── Users module DTOs ──

// UpdateUserRequest: partial profile update; nil fields are untouched.
type UpdateUserRequest struct {
	FirstName          *string `json:"first_name" binding:"omitempty,min=1,max=80"`
	LastName           *string `json:"last_name"  binding:"omitempty,min=1,max=120"`
	AvatarURL          *string `json:"avatar_url"`
	HeaderURL          *string `json:"header_url"`
	Phone              *string `json:"phone"      binding:"omitempty,max=30"`
	Bio                *string `json:"bio"`
	Gender             *string `json:"gender"     binding:"omitempty,max=20"`
	AllowNotifications *bool   `json:"allow_notifications"`
}

// UserResponse: full profile.
type UserResponse struct {
	ID                 int64   `json:"id"`
	PublicID           string  `json:"public_id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	BirthDate          *string `json:"birth_date,omitempty"`
	CourseID           *int64  `json:"course_id,omitempty"`
	CourseName         string  `json:"course_name,omitempty"`
	AvatarURL          *string `json:"avatar_url,omitempty"`
	HeaderURL          *string `json:"header_url,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	AllowNotifications bool    `json:"allow_notifications"`
}

// UserBasicResponse: the reduced profile shown next to offers, comments
// and project cards.
type UserBasicResponse struct {
	ID        int64   `json:"id"`
	PublicID  string  `json:"public_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// UploadImageResponse: result of an avatar/header upload.
type UploadImageResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
