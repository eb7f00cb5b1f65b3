package model

import "time"

// Meetup: "quedada" community event, table meetups.
// Views holds the persisted counter; the live counter lives in Redis and
// is added on read.
type Meetup struct {
	ID          int64      `gorm:"primaryKey"                 json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `json:"description"`
	Place       string     `gorm:"type:varchar(200)"          json:"place"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	Views       int64      `gorm:"not null;default:0"         json:"views"`
	OwnerID     *int64     `json:"owner_id,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Attendees []MeetupAttendee `gorm:"foreignKey:MeetupID" json:"attendees,omitempty"`
}

// TableName sets the table name.
func (Meetup) TableName() string { return "meetups" }

// MeetupAttendee: enrolment row, table meetup_attendees.
type MeetupAttendee struct {
	MeetupID  int64     `gorm:"primaryKey" json:"meetup_id"`
	UserID    int64     `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (MeetupAttendee) TableName() string { return "meetup_attendees" }
