package model

import "time"

// Appointment: a booked secretary's-office slot ("cita"), table appointments.
//
// Day is a calendar date (YYYY-MM-DD) and StartTime a time of day
// (HH:MM:SS as stored by Postgres). Both are kept as strings because slot
// matching is defined at minute granularity over the textual form; see
// internal/scheduling.
type Appointment struct {
	ID          int64     `gorm:"primaryKey"         json:"id"`
	Day         string    `gorm:"type:date;not null" json:"day"`
	StartTime   string    `gorm:"type:time;not null" json:"time"`
	Description string    `gorm:"not null"           json:"description"`
	OwnerID     int64     `gorm:"not null"           json:"owner_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Appointment) TableName() string { return "appointments" }
