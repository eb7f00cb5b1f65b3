package model

import "time"

// Comment entity types.
const (
	CommentEntityProject = "proyecto"
)

// Comment: comment on a portal entity, table comments.
// EntityType/EntityID form a polymorphic reference; projects are the only
// commentable entity today.
type Comment struct {
	ID         int64     `gorm:"primaryKey"                json:"id"`
	UserID     int64     `gorm:"not null"                  json:"user_id"`
	EntityType string    `gorm:"type:varchar(30);not null" json:"entity_type"`
	EntityID   int64     `gorm:"not null"                  json:"entity_id"`
	Body       string    `gorm:"not null"                  json:"body"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Comment) TableName() string { return "comments" }
