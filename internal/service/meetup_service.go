package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/redis"
)

// ── Meetups module errors ──

var (
	ErrMeetupNotFound = errors.New("meetup not found")
	ErrAlreadyJoined  = errors.New("user already joined this meetup")
)

// MeetupService handles the community event board.
type MeetupService interface {
	List(ctx context.Context) ([]dto.MeetupResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MeetupResponse, error)
	Join(ctx context.Context, req *dto.JoinMeetupRequest) error
}

type meetupService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewMeetupService creates the MeetupService. rdb may be nil; view
// counting then degrades to the persisted counter only.
func NewMeetupService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) MeetupService {
	return &meetupService{repo: repo, rdb: rdb, logger: logger}
}

func (s *meetupService) List(ctx context.Context) ([]dto.MeetupResponse, error) {
	meetups, err := s.repo.Meetup.List(ctx)
	if err != nil {
		s.logger.Error("listing meetups", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MeetupResponse, 0, len(meetups))
	for i := range meetups {
		result = append(result, *s.toMeetupResponse(ctx, &meetups[i]))
	}
	return result, nil
}

// GetByID loads a meetup and counts the read as a view.
func (s *meetupService) GetByID(ctx context.Context, id int64) (*dto.MeetupResponse, error) {
	meetup, err := s.repo.Meetup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetupNotFound
		}
		s.logger.Error("loading meetup", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp := s.toMeetupResponse(ctx, meetup)
	if s.rdb != nil {
		if n, err := s.rdb.IncrementViews(ctx, id); err == nil {
			resp.Views = meetup.Views + n
		} else {
			s.logger.Warn("counting meetup view", zap.Int64("id", id), zap.Error(err))
		}
	}
	return resp, nil
}

func (s *meetupService) Join(ctx context.Context, req *dto.JoinMeetupRequest) error {
	if _, err := s.repo.Meetup.GetByID(ctx, req.MeetupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeetupNotFound
		}
		return err
	}

	if err := s.repo.Meetup.AddAttendee(ctx, req.MeetupID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyJoined
		}
		s.logger.Error("joining meetup", zap.Int64("meetup_id", req.MeetupID), zap.Error(err))
		return err
	}
	return nil
}

func (s *meetupService) toMeetupResponse(ctx context.Context, meetup *model.Meetup) *dto.MeetupResponse {
	resp := &dto.MeetupResponse{
		ID:          meetup.ID,
		Title:       meetup.Title,
		Description: meetup.Description,
		Place:       meetup.Place,
		Views:       meetup.Views,
		Attendees:   len(meetup.Attendees),
		CreatedAt:   meetup.CreatedAt.Format(time.RFC3339),
	}
	if meetup.StartsAt != nil {
		resp.StartsAt = meetup.StartsAt.Format(time.RFC3339)
	}
	if s.rdb != nil {
		if n, err := s.rdb.GetViews(ctx, meetup.ID); err == nil {
			resp.Views = meetup.Views + n
		}
	}
	return resp
}
