package service

import (
	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/events"
	"github.com/Maca31/IFPhub/pkg/hashid"
	"github.com/Maca31/IFPhub/pkg/jwt"
	"github.com/Maca31/IFPhub/pkg/redis"
	"github.com/Maca31/IFPhub/pkg/storage"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth        AuthService
	User        UserService
	Course      CourseService
	Project     ProjectService
	Comment     CommentService
	Offer       OfferService
	Meetup      MeetupService
	Session     SessionService
	Appointment AppointmentService
	Newsletter  NewsletterService
	Export      ExportService
}

// NewService wires the service implementations.
// rdb and producer may be nil; the dependent features degrade gracefully.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	store storage.Uploader,
	producer *events.Producer,
	codec *hashid.Codec,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, store, codec, logger),
		Course:      NewCourseService(repo, logger),
		Project:     NewProjectService(repo, store, codec, logger),
		Comment:     NewCommentService(repo, codec, logger),
		Offer:       NewOfferService(repo, codec, logger),
		Meetup:      NewMeetupService(repo, rdb, logger),
		Session:     NewSessionService(repo, store, logger),
		Appointment: NewAppointmentService(repo, producer, logger, nil),
		Newsletter:  NewNewsletterService(&cfg.Newsletter, logger),
		Export:      NewExportService(repo, logger),
	}
}
