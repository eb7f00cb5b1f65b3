package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/scheduling"
)

// Monday 2025-06-02 at 10:00. Slots 08:00 and 09:00 are already past at
// this instant; 10:00 onward are bookable.
var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func setupTestAppointmentService() (AppointmentService, *mockAppointmentRepo) {
	repo := newMockRepository()
	apptRepo := repo.Appointment.(*mockAppointmentRepo)
	svc := NewAppointmentService(repo, nil, zap.NewNop(), func() time.Time { return testNow })
	return svc, apptRepo
}

func seedAppointment(repo *mockAppointmentRepo, day, startTime string, ownerID int64) *model.Appointment {
	a := &model.Appointment{
		Day:         day,
		StartTime:   startTime,
		Description: "Tutoria",
		OwnerID:     ownerID,
	}
	_ = repo.Create(context.Background(), a)
	return a
}

// ── Booking ──

func TestBook_Success(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	appointment, err := svc.Book(context.Background(), &dto.BookAppointmentRequest{
		Day:         "2025-06-02",
		Time:        "11:00",
		Description: "Matricula - dudas",
		OwnerID:     7,
	})

	if err != nil {
		t.Fatalf("Book should succeed, got: %v", err)
	}
	if appointment.ID == 0 {
		t.Error("expected a persisted id")
	}
	if appointment.StartTime != "11:00:00" {
		t.Errorf("expected stored time 11:00:00, got %s", appointment.StartTime)
	}
}

func TestBook_Unauthenticated(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	_, err := svc.Book(context.Background(), &dto.BookAppointmentRequest{
		Day:         "2025-06-02",
		Time:        "11:00",
		Description: "Matricula",
		OwnerID:     0,
	})

	if !errors.Is(err, scheduling.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got: %v", err)
	}
}

func TestBook_EmptyDescription(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	_, err := svc.Book(context.Background(), &dto.BookAppointmentRequest{
		Day:         "2025-06-02",
		Time:        "11:00",
		Description: "   ",
		OwnerID:     7,
	})

	if !errors.Is(err, scheduling.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestBook_NonCatalogSlot(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	_, err := svc.Book(context.Background(), &dto.BookAppointmentRequest{
		Day:         "2025-06-02",
		Time:        "11:30",
		Description: "Matricula",
		OwnerID:     7,
	})

	if !errors.Is(err, scheduling.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for non-catalog time, got: %v", err)
	}
}

func TestBook_PastSlot(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	_, err := svc.Book(context.Background(), &dto.BookAppointmentRequest{
		Day:         "2025-06-02",
		Time:        "08:00",
		Description: "Matricula",
		OwnerID:     7,
	})

	if !errors.Is(err, scheduling.ErrAlreadyPast) {
		t.Errorf("expected ErrAlreadyPast, got: %v", err)
	}
}

func TestBook_SlotTaken(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	seedAppointment(apptRepo, "2025-06-02", "11:00:00", 3)

	_, err := svc.Book(context.Background(), &dto.BookAppointmentRequest{
		Day:         "2025-06-02",
		Time:        "11:00",
		Description: "Matricula",
		OwnerID:     7,
	})

	if !errors.Is(err, scheduling.ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got: %v", err)
	}
}

// ── Availability ──

func TestAvailability_OccupiedAndPastFlags(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	seedAppointment(apptRepo, "2025-06-02", "12:00:00", 3)

	statuses, err := svc.Availability(context.Background(), "2025-06-02")
	if err != nil {
		t.Fatalf("Availability should succeed: %v", err)
	}
	if len(statuses) != len(scheduling.Catalog) {
		t.Fatalf("expected %d slots, got %d", len(scheduling.Catalog), len(statuses))
	}

	byStart := make(map[string]scheduling.SlotStatus)
	for _, st := range statuses {
		byStart[st.Slot.Start] = st
	}

	if !byStart["08:00"].Past || byStart["08:00"].Available {
		t.Error("08:00 should be past and unavailable at 10:00")
	}
	if !byStart["12:00"].Occupied || byStart["12:00"].Available {
		t.Error("12:00 should be occupied and unavailable")
	}
	if !byStart["14:00"].Available {
		t.Error("14:00 should be available")
	}
}

// ── Agenda ──

func TestAgenda_FiltersAndOrders(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	seedAppointment(apptRepo, "2025-06-10", "09:00:00", 7)
	seedAppointment(apptRepo, "2025-06-09", "14:00:00", 7)
	seedAppointment(apptRepo, "2025-06-09", "08:00:00", 99) // someone else's

	entries, err := svc.Agenda(context.Background(), 7)
	if err != nil {
		t.Fatalf("Agenda should succeed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Day != "2025-06-09" || entries[1].Day != "2025-06-10" {
		t.Errorf("entries out of order: %s then %s", entries[0].Day, entries[1].Day)
	}
}

func TestAgenda_UnauthenticatedIsEmpty(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	seedAppointment(apptRepo, "2025-06-10", "09:00:00", 7)

	entries, err := svc.Agenda(context.Background(), 0)
	if err != nil {
		t.Fatalf("Agenda should not fail for anonymous callers: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty agenda, got %d entries", len(entries))
	}
}

// ── Cancellation ──

func TestCancel_Success(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	a := seedAppointment(apptRepo, "2025-06-10", "09:00:00", 7)

	err := svc.Cancel(context.Background(), &dto.CancelAppointmentRequest{ID: a.ID, UserID: 7})
	if err != nil {
		t.Fatalf("Cancel should succeed: %v", err)
	}
	if _, err := apptRepo.GetByID(context.Background(), a.ID); err == nil {
		t.Error("appointment should be gone after cancellation")
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	err := svc.Cancel(context.Background(), &dto.CancelAppointmentRequest{ID: 404, UserID: 7})
	if !errors.Is(err, scheduling.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCancel_OtherOwnersAppointment(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	a := seedAppointment(apptRepo, "2025-06-10", "09:00:00", 3)

	err := svc.Cancel(context.Background(), &dto.CancelAppointmentRequest{ID: a.ID, UserID: 7})
	if !errors.Is(err, scheduling.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}
	if _, err := apptRepo.GetByID(context.Background(), a.ID); err != nil {
		t.Error("appointment should survive a forbidden cancellation")
	}
}

func TestCancel_AlreadyPast(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	a := seedAppointment(apptRepo, "2025-06-02", "08:00:00", 7)

	err := svc.Cancel(context.Background(), &dto.CancelAppointmentRequest{ID: a.ID, UserID: 7})
	if !errors.Is(err, scheduling.ErrAlreadyPast) {
		t.Errorf("expected ErrAlreadyPast, got: %v", err)
	}
}

// ── Calendar export ──

func TestICS_RendersEvent(t *testing.T) {
	svc, apptRepo := setupTestAppointmentService()
	a := seedAppointment(apptRepo, "2025-06-10", "09:00:00", 7)

	data, err := svc.ICS(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("ICS should succeed: %v", err)
	}

	out := string(data)
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:", "END:VCALENDAR"} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar output missing %q", want)
		}
	}
}

func TestICS_NotFound(t *testing.T) {
	svc, _ := setupTestAppointmentService()

	_, err := svc.ICS(context.Background(), 404)
	if !errors.Is(err, scheduling.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}
