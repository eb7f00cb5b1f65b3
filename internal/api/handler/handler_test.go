package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/scheduling"
	"github.com/Maca31/IFPhub/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AppointmentService ──

type mockAppointmentService struct {
	listResult         []model.Appointment
	listErr            error
	availabilityResult []scheduling.SlotStatus
	availabilityErr    error
	agendaResult       []scheduling.AgendaEntry
	agendaErr          error
	bookResult         *model.Appointment
	bookErr            error
	bookCalls          int
	cancelErr          error
	icsResult          []byte
	icsErr             error
}

func (m *mockAppointmentService) List(_ context.Context, _ string) ([]model.Appointment, error) {
	return m.listResult, m.listErr
}
func (m *mockAppointmentService) Availability(_ context.Context, _ string) ([]scheduling.SlotStatus, error) {
	return m.availabilityResult, m.availabilityErr
}
func (m *mockAppointmentService) Agenda(_ context.Context, _ int64) ([]scheduling.AgendaEntry, error) {
	return m.agendaResult, m.agendaErr
}
func (m *mockAppointmentService) Book(_ context.Context, _ *dto.BookAppointmentRequest) (*model.Appointment, error) {
	m.bookCalls++
	return m.bookResult, m.bookErr
}
func (m *mockAppointmentService) Cancel(_ context.Context, _ *dto.CancelAppointmentRequest) error {
	return m.cancelErr
}
func (m *mockAppointmentService) ICS(_ context.Context, _ int64) ([]byte, error) {
	return m.icsResult, m.icsErr
}

// ── Helpers ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseError(w *httptest.ResponseRecorder) response.ErrorBody {
	var body response.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

// pinClock fixes the handler clock for the test and restores it after.
func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	restore := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = restore })
}

func appointmentRouter(mock *mockAppointmentService) *gin.Engine {
	h := NewAppointmentHandler(mock)
	r := gin.New()
	r.GET("/appointments", h.List)
	r.POST("/appointments", h.Book)
	r.DELETE("/appointments", h.Cancel)
	r.GET("/appointments/availability", h.Availability)
	r.GET("/appointments/:id/ics", h.ICS)
	return r
}

// ── Listing ──

// Listings are a bare JSON array, not an envelope.
func TestAppointmentHandler_List_BareArray(t *testing.T) {
	mock := &mockAppointmentService{
		listResult: []model.Appointment{
			{ID: 1, Day: "2025-06-02", StartTime: "09:00:00", Description: "Tutoria", OwnerID: 7},
		},
	}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/appointments?day=2025-06-02", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := strings.TrimSpace(w.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Errorf("expected a bare array, got: %s", body)
	}

	var appointments []model.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appointments); err != nil {
		t.Fatalf("body should decode as an array: %v", err)
	}
	if len(appointments) != 1 || appointments[0].StartTime != "09:00:00" {
		t.Errorf("unexpected payload: %+v", appointments)
	}
}

// ── Booking ──

func TestAppointmentHandler_Book_Success(t *testing.T) {
	pinClock(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	mock := &mockAppointmentService{
		bookResult: &model.Appointment{ID: 5, Day: "2025-06-02", StartTime: "11:00:00", Description: "Matricula", OwnerID: 7},
	}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointments", jsonBody(dto.BookAppointmentRequest{
		Day: "2025-06-02", Time: "11:00", Description: "Matricula", OwnerID: 7,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var appointment model.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appointment); err != nil {
		t.Fatalf("body should decode as an appointment: %v", err)
	}
	if appointment.ID != 5 {
		t.Errorf("expected id 5, got %d", appointment.ID)
	}
}

func TestAppointmentHandler_Book_Unauthenticated(t *testing.T) {
	pinClock(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	mock := &mockAppointmentService{bookErr: scheduling.ErrUnauthenticated}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointments", jsonBody(dto.BookAppointmentRequest{
		Day: "2025-06-02", Time: "11:00", Description: "Matricula",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if parseError(w).Error != "must sign in" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestAppointmentHandler_Book_SlotTaken(t *testing.T) {
	pinClock(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	mock := &mockAppointmentService{bookErr: scheduling.ErrSlotTaken}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointments", jsonBody(dto.BookAppointmentRequest{
		Day: "2025-06-02", Time: "11:00", Description: "Matricula", OwnerID: 7,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestAppointmentHandler_Book_BadJSON(t *testing.T) {
	mock := &mockAppointmentService{}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointments", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// Weekends and elapsed days are rejected before the service runs; they are
// not selectable in the calendar, so a payload naming one is bad input.
func TestAppointmentHandler_Book_NonBookableDay(t *testing.T) {
	pinClock(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	mock := &mockAppointmentService{}
	r := appointmentRouter(mock)

	for _, day := range []string{"2025-06-07", "2025-05-30"} { // Saturday, past Friday
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/appointments", jsonBody(dto.BookAppointmentRequest{
			Day: day, Time: "11:00", Description: "Matricula", OwnerID: 7,
		}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("day %s: expected 400, got %d", day, w.Code)
		}
		if parseError(w).Error != "day is not bookable" {
			t.Errorf("day %s: unexpected error body: %s", day, w.Body.String())
		}
	}
	if mock.bookCalls != 0 {
		t.Errorf("service should not be reached, got %d calls", mock.bookCalls)
	}
}

// ── Cancellation ──

func TestAppointmentHandler_Cancel_Success(t *testing.T) {
	mock := &mockAppointmentService{}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/appointments", jsonBody(dto.CancelAppointmentRequest{
		ID: 5, UserID: 7,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var ack map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil || !ack["success"] {
		t.Errorf(`expected {"success":true}, got: %s`, w.Body.String())
	}
}

func TestAppointmentHandler_Cancel_Forbidden(t *testing.T) {
	mock := &mockAppointmentService{cancelErr: scheduling.ErrForbidden}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/appointments", jsonBody(dto.CancelAppointmentRequest{
		ID: 5, UserID: 8,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

// ── Availability ──

func TestAppointmentHandler_Availability_WeekendRejected(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	mock := &mockAppointmentService{}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	// 2025-06-07 is a Saturday.
	r.ServeHTTP(w, httptest.NewRequest("GET", "/appointments/availability?day=2025-06-07", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a weekend day, got %d", w.Code)
	}
}

func TestAppointmentHandler_Availability_Success(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	mock := &mockAppointmentService{
		availabilityResult: scheduling.AvailabilityForDay("2025-06-03", nil, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)),
	}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/appointments/availability?day=2025-06-03", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var statuses []scheduling.SlotStatus
	if err := json.Unmarshal(w.Body.Bytes(), &statuses); err != nil {
		t.Fatalf("body should decode as slot statuses: %v", err)
	}
	if len(statuses) != len(scheduling.Catalog) {
		t.Errorf("expected %d slots, got %d", len(scheduling.Catalog), len(statuses))
	}
}

// ── Weekly export ──

type mockExportService struct {
	sheet    *bytes.Buffer
	filename string
	err      error
	gotWeek  string
}

func (m *mockExportService) WeeklySheet(_ context.Context, week string) (*bytes.Buffer, string, error) {
	m.gotWeek = week
	return m.sheet, m.filename, m.err
}

func exportRouter(mock *mockExportService) *gin.Engine {
	h := NewExportHandler(mock)
	r := gin.New()
	r.GET("/appointments/export", h.WeeklySheet)
	return r
}

func TestExportHandler_WeeklySheet_WeekParam(t *testing.T) {
	mock := &mockExportService{
		sheet:    bytes.NewBufferString("xlsx-bytes"),
		filename: "citas-2025-06-02.xlsx",
	}
	r := exportRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/appointments/export?week=2025-06-05", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.gotWeek != "2025-06-05" {
		t.Errorf("expected the week query param to reach the service, got %q", mock.gotWeek)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "citas-2025-06-02.xlsx") {
		t.Errorf("expected the sheet filename in the disposition, got %s", cd)
	}
}

func TestExportHandler_WeeklySheet_BadWeek(t *testing.T) {
	mock := &mockExportService{err: scheduling.ErrInvalidInput}
	r := exportRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/appointments/export?week=junk", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ── Calendar download ──

func TestAppointmentHandler_ICS_ContentType(t *testing.T) {
	mock := &mockAppointmentService{icsResult: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}
	r := appointmentRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/appointments/5/ics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("expected text/calendar, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ".ics") {
		t.Errorf("expected an attachment filename, got %s", cd)
	}
}
