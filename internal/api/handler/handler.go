package handler

import "github.com/Maca31/IFPhub/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Course      *CourseHandler
	Project     *ProjectHandler
	Comment     *CommentHandler
	Offer       *OfferHandler
	Meetup      *MeetupHandler
	Session     *SessionHandler
	Appointment *AppointmentHandler
	Export      *ExportHandler
	Newsletter  *NewsletterHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, svc.User),
		User:        NewUserHandler(svc.User),
		Course:      NewCourseHandler(svc.Course),
		Project:     NewProjectHandler(svc.Project),
		Comment:     NewCommentHandler(svc.Comment),
		Offer:       NewOfferHandler(svc.Offer),
		Meetup:      NewMeetupHandler(svc.Meetup),
		Session:     NewSessionHandler(svc.Session),
		Appointment: NewAppointmentHandler(svc.Appointment),
		Export:      NewExportHandler(svc.Export),
		Newsletter:  NewNewsletterHandler(svc.Newsletter),
	}
}
