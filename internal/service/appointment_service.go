package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/internal/scheduling"
	"github.com/Maca31/IFPhub/pkg/events"
)

// AppointmentService handles the secretary's-office slot bookings.
//
// The pure slot logic lives in internal/scheduling; this service adds the
// store, the event stream and the calendar export around it. The clock is
// injected so the temporal rules stay testable.
type AppointmentService interface {
	List(ctx context.Context, day string) ([]model.Appointment, error)
	Availability(ctx context.Context, day string) ([]scheduling.SlotStatus, error)
	Agenda(ctx context.Context, userID int64) ([]scheduling.AgendaEntry, error)
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*model.Appointment, error)
	Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error
	ICS(ctx context.Context, id int64) ([]byte, error)
}

type appointmentService struct {
	repo     *repository.Repository
	producer *events.Producer
	logger   *zap.Logger
	now      func() time.Time
}

// NewAppointmentService creates the AppointmentService. now may be nil, in
// which case time.Now is used.
func NewAppointmentService(repo *repository.Repository, producer *events.Producer, logger *zap.Logger, now func() time.Time) AppointmentService {
	if now == nil {
		now = time.Now
	}
	return &appointmentService{repo: repo, producer: producer, logger: logger, now: now}
}

func (s *appointmentService) List(ctx context.Context, day string) ([]model.Appointment, error) {
	appointments, err := s.repo.Appointment.List(ctx, day)
	if err != nil {
		s.logger.Error("listing appointments", zap.Error(err))
		return nil, &scheduling.PersistenceError{Err: err}
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return appointments, nil
}

func (s *appointmentService) Availability(ctx context.Context, day string) ([]scheduling.SlotStatus, error) {
	appointments, err := s.repo.Appointment.List(ctx, day)
	if err != nil {
		s.logger.Error("loading day occupancy", zap.String("day", day), zap.Error(err))
		return nil, &scheduling.PersistenceError{Err: err}
	}
	return scheduling.AvailabilityForDay(day, appointments, s.now()), nil
}

func (s *appointmentService) Agenda(ctx context.Context, userID int64) ([]scheduling.AgendaEntry, error) {
	if userID <= 0 {
		return []scheduling.AgendaEntry{}, nil
	}

	appointments, err := s.repo.Appointment.List(ctx, "")
	if err != nil {
		s.logger.Error("loading agenda", zap.Int64("user_id", userID), zap.Error(err))
		return nil, &scheduling.PersistenceError{Err: err}
	}

	now := s.now()
	return scheduling.AgendaForUser(appointments, userID, now.Format("2006-01-02"), now), nil
}

// Book creates an appointment. The availability check here is advisory:
// the unique index over (day, start_time) is what actually guarantees one
// booking per slot, and its violation maps to ErrSlotTaken.
func (s *appointmentService) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*model.Appointment, error) {
	if err := scheduling.ValidateBooking(req.OwnerID, req.Description); err != nil {
		return nil, err
	}

	slotStart := scheduling.NormalizeTime(req.Time)
	if !scheduling.IsCatalogStart(slotStart) {
		return nil, scheduling.ErrInvalidInput
	}

	now := s.now()
	sameDay, err := s.repo.Appointment.List(ctx, req.Day)
	if err != nil {
		return nil, &scheduling.PersistenceError{Err: err}
	}
	for _, status := range scheduling.AvailabilityForDay(req.Day, sameDay, now) {
		if status.Slot.Start != slotStart {
			continue
		}
		if status.Past {
			return nil, scheduling.ErrAlreadyPast
		}
		if status.Occupied {
			return nil, scheduling.ErrSlotTaken
		}
	}

	appointment := &model.Appointment{
		Day:         req.Day,
		StartTime:   scheduling.NormalizeToStored(slotStart),
		Description: req.Description,
		OwnerID:     req.OwnerID,
		CreatedAt:   now,
	}

	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, scheduling.ErrSlotTaken
		}
		s.logger.Error("booking appointment", zap.String("day", req.Day), zap.String("time", slotStart), zap.Error(err))
		return nil, &scheduling.PersistenceError{Err: err}
	}

	s.producer.Publish(ctx, events.TypeAppointmentBooked, appointment.ID, appointment)

	return appointment, nil
}

func (s *appointmentService) Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error {
	appointment, err := s.repo.Appointment.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduling.ErrNotFound
		}
		return &scheduling.PersistenceError{Err: err}
	}

	if err := scheduling.ValidateCancellation(appointment, req.UserID, s.now()); err != nil {
		return err
	}

	if err := s.repo.Appointment.Delete(ctx, req.ID); err != nil {
		s.logger.Error("cancelling appointment", zap.Int64("id", req.ID), zap.Error(err))
		return &scheduling.PersistenceError{Err: err}
	}

	s.producer.Publish(ctx, events.TypeAppointmentCancelled, appointment.ID, appointment)

	return nil
}

// ICS renders one appointment as an iCalendar file so it can be added to
// an external calendar.
func (s *appointmentService) ICS(ctx context.Context, id int64) ([]byte, error) {
	appointment, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, &scheduling.PersistenceError{Err: err}
	}

	loc := s.now().Location()
	start, err := time.ParseInLocation("2006-01-02 15:04",
		appointment.Day+" "+scheduling.NormalizeTime(appointment.StartTime), loc)
	if err != nil {
		return nil, scheduling.ErrInvalidInput
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//IFPhub//Appointments//ES")

	event := cal.AddEvent(fmt.Sprintf("appointment-%d@ifphub", appointment.ID))
	event.SetCreatedTime(appointment.CreatedAt)
	event.SetDtStampTime(s.now())
	event.SetStartAt(start)
	event.SetEndAt(start.Add(time.Hour))
	event.SetSummary("Cita secretaría")
	event.SetDescription(appointment.Description)

	return []byte(cal.Serialize()), nil
}
