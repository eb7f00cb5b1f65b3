package model

import "time"

// User: portal account, table users.
type User struct {
	ID                 int64      `gorm:"primaryKey"                     json:"id"`
	FirstName          string     `gorm:"type:varchar(80);not null"      json:"first_name"`
	LastName           string     `gorm:"type:varchar(120);not null"     json:"last_name"`
	Email              string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash       string     `gorm:"type:varchar(100);not null"     json:"-"`
	BirthDate          *string    `gorm:"type:date"                      json:"birth_date,omitempty"`
	CourseID           *int64     `json:"course_id,omitempty"`
	AvatarURL          *string    `json:"avatar_url,omitempty"`
	HeaderURL          *string    `json:"header_url,omitempty"`
	Phone              *string    `gorm:"type:varchar(30)"               json:"phone,omitempty"`
	Bio                *string    `json:"bio,omitempty"`
	Gender             *string    `gorm:"type:varchar(20)"               json:"gender,omitempty"`
	AllowNotifications bool       `gorm:"not null;default:true"          json:"allow_notifications"`
	CreatedAt          time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
