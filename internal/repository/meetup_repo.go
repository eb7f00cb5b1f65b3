package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
)

// MeetupRepository is the meetups data-access interface.
type MeetupRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Meetup, error)
	List(ctx context.Context) ([]model.Meetup, error)
	AddAttendee(ctx context.Context, meetupID, userID int64) error
	AddViews(ctx context.Context, id int64, n int64) error
}

type meetupRepo struct {
	db *gorm.DB
}

// NewMeetupRepo creates the GORM-backed MeetupRepository.
func NewMeetupRepo(db *gorm.DB) MeetupRepository {
	return &meetupRepo{db: db}
}

func (r *meetupRepo) GetByID(ctx context.Context, id int64) (*model.Meetup, error) {
	var meetup model.Meetup
	err := r.db.WithContext(ctx).
		Preload("Attendees").
		Where("id = ?", id).
		First(&meetup).Error
	if err != nil {
		return nil, err
	}
	return &meetup, nil
}

func (r *meetupRepo) List(ctx context.Context) ([]model.Meetup, error) {
	var meetups []model.Meetup
	err := r.db.WithContext(ctx).
		Preload("Attendees").
		Order("starts_at ASC NULLS LAST").
		Find(&meetups).Error
	return meetups, err
}

// AddAttendee enrols a user. The composite primary key makes re-joining
// idempotent at the store level; duplicates surface as gorm.ErrDuplicatedKey.
func (r *meetupRepo) AddAttendee(ctx context.Context, meetupID, userID int64) error {
	return r.db.WithContext(ctx).
		Create(&model.MeetupAttendee{MeetupID: meetupID, UserID: userID}).Error
}

// AddViews folds Redis-accumulated views into the persisted counter.
func (r *meetupRepo) AddViews(ctx context.Context, id int64, n int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Meetup{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", n)).Error
}
