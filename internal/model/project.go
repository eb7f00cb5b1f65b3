package model

import "time"

// Project visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Project: student project showcase entry, table projects.
type Project struct {
	ID          int64     `gorm:"primaryKey"                 json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `json:"description"`
	Visibility  string    `gorm:"type:varchar(10);not null;default:public" json:"visibility"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	CourseID    int64     `gorm:"not null" json:"course_id"`
	OwnerID     int64     `gorm:"not null" json:"owner_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Owner  *User   `gorm:"foreignKey:OwnerID"  json:"owner,omitempty"`
}

// TableName sets the table name.
func (Project) TableName() string { return "projects" }
