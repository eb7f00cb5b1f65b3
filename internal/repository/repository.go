package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User        UserRepository
	Course      CourseRepository
	Project     ProjectRepository
	Comment     CommentRepository
	Offer       OfferRepository
	Meetup      MeetupRepository
	Session     SessionRepository
	Appointment AppointmentRepository
}

// NewRepository wires the GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Course:      NewCourseRepo(db),
		Project:     NewProjectRepo(db),
		Comment:     NewCommentRepo(db),
		Offer:       NewOfferRepo(db),
		Meetup:      NewMeetupRepo(db),
		Session:     NewSessionRepo(db),
		Appointment: NewAppointmentRepo(db),
	}
}
