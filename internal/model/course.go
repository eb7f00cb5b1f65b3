package model

import "time"

// Course: study programme catalog, table courses.
type Course struct {
	ID        int64     `gorm:"primaryKey"                 json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Course) TableName() string { return "courses" }
