package model

import "time"

// Offer: job-board posting, table offers.
type Offer struct {
	ID          int64     `gorm:"primaryKey"                 json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"not null"                   json:"description"`
	Salary      float64   `gorm:"type:numeric(10,2);not null" json:"salary"`
	Deadline    *string   `gorm:"type:date"                  json:"deadline,omitempty"`
	CourseID    int64     `gorm:"not null"                   json:"course_id"`
	OwnerID     int64     `gorm:"not null"                   json:"owner_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// TableName sets the table name.
func (Offer) TableName() string { return "offers" }
