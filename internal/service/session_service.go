package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/storage"
)

// ── Recorded-sessions module errors ──

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrBadVideoType    = errors.New("unsupported video type")
)

// MaxVideoSize caps recorded-session uploads at 500 MB.
const MaxVideoSize int64 = 500 << 20

// videoTypes lists the accepted upload content types.
var videoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"video/quicktime": true,
}

// SessionService handles recorded class sessions and their video uploads.
type SessionService interface {
	Create(ctx context.Context, form *dto.CreateSessionForm, coverName, coverType string, cover io.Reader) (*dto.SessionResponse, error)
	List(ctx context.Context) ([]dto.SessionResponse, error)
	UploadVideo(ctx context.Context, id int64, fileName, contentType string, body io.Reader) (*dto.UploadVideoResponse, error)
}

type sessionService struct {
	repo   *repository.Repository
	store  storage.Uploader
	logger *zap.Logger
}

// NewSessionService creates the SessionService.
func NewSessionService(repo *repository.Repository, store storage.Uploader, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, store: store, logger: logger}
}

func (s *sessionService) Create(ctx context.Context, form *dto.CreateSessionForm, coverName, coverType string, cover io.Reader) (*dto.SessionResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, form.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	heldOn := form.HeldOn
	if heldOn == "" {
		heldOn = time.Now().Format("2006-01-02")
	}

	session := &model.Session{
		Title:       form.Title,
		Description: form.Description,
		Tag:         form.Tag,
		Teacher:     form.Teacher,
		HeldOn:      heldOn,
		CourseID:    form.CourseID,
		OwnerID:     form.OwnerID,
		CreatedAt:   time.Now(),
	}
	if form.CoverURL != "" {
		url := form.CoverURL
		session.CoverURL = &url
	}
	if form.VideoURL != "" {
		url := form.VideoURL
		session.VideoURL = &url
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("creating session", zap.Error(err))
		return nil, err
	}

	if cover != nil {
		ext := strings.TrimPrefix(path.Ext(coverName), ".")
		if ext == "" {
			ext = "bin"
		}
		objectPath := fmt.Sprintf("%d/portada.%s", session.ID, ext)

		if err := s.store.Upload(ctx, storage.BucketVideos, objectPath, coverType, cover); err != nil {
			s.logger.Error("uploading session cover", zap.Int64("id", session.ID), zap.Error(err))
			return nil, err
		}
		url := s.store.PublicURL(storage.BucketVideos, objectPath)
		if err := s.repo.Session.UpdateCoverURL(ctx, session.ID, url); err != nil {
			return nil, err
		}
		session.CoverURL = &url
	}

	return s.toSessionResponse(session), nil
}

func (s *sessionService) List(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.Session.List(ctx)
	if err != nil {
		s.logger.Error("listing sessions", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *s.toSessionResponse(&sessions[i]))
	}
	return result, nil
}

// UploadVideo stores a session recording. The caller enforces MaxVideoSize
// on the request body; the content-type whitelist is checked here.
func (s *sessionService) UploadVideo(ctx context.Context, id int64, fileName, contentType string, body io.Reader) (*dto.UploadVideoResponse, error) {
	if !videoTypes[contentType] {
		return nil, ErrBadVideoType
	}

	if _, err := s.repo.Session.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "mp4"
	}
	objectPath := fmt.Sprintf("%d/video.%s", id, ext)

	if err := s.store.Upload(ctx, storage.BucketVideos, objectPath, contentType, body); err != nil {
		s.logger.Error("uploading session video", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	url := s.store.PublicURL(storage.BucketVideos, objectPath)
	if err := s.repo.Session.UpdateVideoURL(ctx, id, url); err != nil {
		s.logger.Error("assigning session video", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.UploadVideoResponse{OK: true, Video: url}, nil
}

func (s *sessionService) toSessionResponse(session *model.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:          session.ID,
		Title:       session.Title,
		Description: session.Description,
		Tag:         session.Tag,
		Teacher:     session.Teacher,
		HeldOn:      session.HeldOn,
		CoverURL:    session.CoverURL,
		VideoURL:    session.VideoURL,
		CreatedAt:   session.CreatedAt.Format(time.RFC3339),
	}
}
