package model

import "time"

// Session: recorded class session ("reunión"), table sessions.
type Session struct {
	ID          int64     `gorm:"primaryKey"                 json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"not null"                   json:"description"`
	Tag         string    `gorm:"type:varchar(60);not null"  json:"tag"`
	Teacher     string    `gorm:"type:varchar(120);not null" json:"teacher"`
	HeldOn      string    `gorm:"type:date;not null"         json:"held_on"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	VideoURL    *string   `json:"video_url,omitempty"`
	CourseID    int64     `gorm:"not null" json:"course_id"`
	OwnerID     int64     `gorm:"not null" json:"owner_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Session) TableName() string { return "sessions" }
