package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
)

// SessionRepository is the recorded-sessions data-access interface.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	UpdateVideoURL(ctx context.Context, id int64, url string) error
	UpdateCoverURL(ctx context.Context, id int64, url string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates the GORM-backed SessionRepository.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Order("held_on DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) UpdateVideoURL(ctx context.Context, id int64, url string) error {
	return r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("video_url", url).Error
}

func (r *sessionRepo) UpdateCoverURL(ctx context.Context, id int64, url string) error {
	return r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("cover_url", url).Error
}
