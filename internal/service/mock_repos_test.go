package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdateImageURL(_ context.Context, id int64, column, url string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v := url
	switch column {
	case "avatar_url":
		u.AvatarURL = &v
	case "header_url":
		u.HeaderURL = &v
	}
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[int64]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses: map[int64]*model.Course{
			1: {ID: 1, Name: "General"},
			2: {ID: 2, Name: "DAW"},
		},
	}
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[int64]*model.Project
	nextID   int64
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[int64]*model.Project), nextID: 1}
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	if project.ID == 0 {
		project.ID = m.nextID
		m.nextID++
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id int64) (*model.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectRepo) List(_ context.Context) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		if p.Visibility == model.VisibilityPublic {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProjectRepo) UpdateCoverURL(_ context.Context, id int64, url string) error {
	p, ok := m.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v := url
	p.CoverURL = &v
	return nil
}

// ── Mock CommentRepository ──

type mockCommentRepo struct {
	comments map[int64]*model.Comment
	nextID   int64
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int64]*model.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	if comment.ID == 0 {
		comment.ID = m.nextID
		m.nextID++
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) List(_ context.Context) ([]model.Comment, error) {
	result := make([]model.Comment, 0, len(m.comments))
	for _, c := range m.comments {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCommentRepo) ListByEntity(_ context.Context, entityType string, entityID int64) ([]model.Comment, error) {
	var result []model.Comment
	for _, c := range m.comments {
		if c.EntityType == entityType && c.EntityID == entityID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock OfferRepository ──

type mockOfferRepo struct {
	offers map[int64]*model.Offer
	nextID int64
}

func newMockOfferRepo() *mockOfferRepo {
	return &mockOfferRepo{offers: make(map[int64]*model.Offer), nextID: 1}
}

func (m *mockOfferRepo) Create(_ context.Context, offer *model.Offer) error {
	if offer.ID == 0 {
		offer.ID = m.nextID
		m.nextID++
	}
	m.offers[offer.ID] = offer
	return nil
}

func (m *mockOfferRepo) List(_ context.Context) ([]model.Offer, error) {
	result := make([]model.Offer, 0, len(m.offers))
	for _, o := range m.offers {
		result = append(result, *o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ── Mock MeetupRepository ──

type mockMeetupRepo struct {
	meetups   map[int64]*model.Meetup
	attendees map[int64][]model.MeetupAttendee
}

func newMockMeetupRepo() *mockMeetupRepo {
	return &mockMeetupRepo{
		meetups:   make(map[int64]*model.Meetup),
		attendees: make(map[int64][]model.MeetupAttendee),
	}
}

func (m *mockMeetupRepo) GetByID(_ context.Context, id int64) (*model.Meetup, error) {
	meetup, ok := m.meetups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *meetup
	copied.Attendees = m.attendees[id]
	return &copied, nil
}

func (m *mockMeetupRepo) List(_ context.Context) ([]model.Meetup, error) {
	result := make([]model.Meetup, 0, len(m.meetups))
	for id, meetup := range m.meetups {
		copied := *meetup
		copied.Attendees = m.attendees[id]
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockMeetupRepo) AddAttendee(_ context.Context, meetupID, userID int64) error {
	for _, a := range m.attendees[meetupID] {
		if a.UserID == userID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.attendees[meetupID] = append(m.attendees[meetupID], model.MeetupAttendee{MeetupID: meetupID, UserID: userID})
	return nil
}

func (m *mockMeetupRepo) AddViews(_ context.Context, id int64, n int64) error {
	meetup, ok := m.meetups[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	meetup.Views += n
	return nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[int64]*model.Session
	nextID   int64
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[int64]*model.Session), nextID: 1}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	if session.ID == 0 {
		session.ID = m.nextID
		m.nextID++
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id int64) (*model.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) List(_ context.Context) ([]model.Session, error) {
	result := make([]model.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].HeldOn > result[j].HeldOn })
	return result, nil
}

func (m *mockSessionRepo) UpdateVideoURL(_ context.Context, id int64, url string) error {
	s, ok := m.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v := url
	s.VideoURL = &v
	return nil
}

func (m *mockSessionRepo) UpdateCoverURL(_ context.Context, id int64, url string) error {
	s, ok := m.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v := url
	s.CoverURL = &v
	return nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appointments map[int64]*model.Appointment
	nextID       int64
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*model.Appointment), nextID: 1}
}

// Create mirrors the unique index over (day, start_time).
func (m *mockAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	for _, a := range m.appointments {
		if a.Day == appointment.Day && a.StartTime == appointment.StartTime {
			return gorm.ErrDuplicatedKey
		}
	}
	if appointment.ID == 0 {
		appointment.ID = m.nextID
		m.nextID++
	}
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*model.Appointment, error) {
	if a, ok := m.appointments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) List(_ context.Context, day string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if day == "" || a.Day == day {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id int64) error {
	delete(m.appointments, id)
	return nil
}

// newMockRepository wires every mock into the aggregate.
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:        newMockUserRepo(),
		Course:      newMockCourseRepo(),
		Project:     newMockProjectRepo(),
		Comment:     newMockCommentRepo(),
		Offer:       newMockOfferRepo(),
		Meetup:      newMockMeetupRepo(),
		Session:     newMockSessionRepo(),
		Appointment: newMockAppointmentRepo(),
	}
}
