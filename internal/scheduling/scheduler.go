// Package scheduling computes slot availability and user agendas for the
// secretary's-office appointment feature.
//
// Everything here is a pure, synchronous computation over immutable input
// snapshots: a day, a list of appointments and a "now" instant supplied by
// the caller. The package performs no I/O, holds no mutable state and never
// logs, so concurrent callers need no coordination.
//
// The availability view is advisory. The authoritative uniqueness guarantee
// for a (day, slot) pair lives in the database's unique index; callers must
// treat the store's conflict error, not CanBook, as the final arbiter.
package scheduling

import (
	"sort"
	"strings"
	"time"

	"github.com/Maca31/IFPhub/internal/model"
)

// Agenda entry statuses.
const (
	StatusPast    = "past"
	StatusPending = "pending"
)

// SlotStatus is the availability of one catalog slot on a given day.
// Exactly one of the three user-facing states holds: available,
// occupied (takes precedence when a slot is both occupied and past),
// or past-and-not-occupied.
type SlotStatus struct {
	Slot      Slot   `json:"slot"`
	Day       string `json:"day"`
	Occupied  bool   `json:"occupied"`
	Past      bool   `json:"past"`
	Available bool   `json:"available"`
}

// AgendaEntry is an appointment tagged with its temporal status.
type AgendaEntry struct {
	model.Appointment
	Status string `json:"status"` // "past" | "pending"
}

// NormalizeTime truncates HH:MM:SS to HH:MM. Slot matching is defined only
// at minute granularity, so this truncation is load-bearing.
func NormalizeTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// NormalizeToStored appends seconds to an HH:MM value, matching the form
// the store persists.
func NormalizeToStored(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}

// combine builds the instant at which day (YYYY-MM-DD) and t (HH:MM)
// begin, in the reference location. ok is false when either part does not
// parse.
func combine(day, t string, loc *time.Location) (time.Time, bool) {
	if day == "" || t == "" {
		return time.Time{}, false
	}
	instant, err := time.ParseInLocation("2006-01-02 15:04", day+" "+NormalizeTime(t), loc)
	if err != nil {
		return time.Time{}, false
	}
	return instant, true
}

// AvailabilityForDay computes the status of every catalog slot for one
// day. The appointments list may be unfiltered; only entries on the given
// day count. Results come back in catalog order and the function is total:
// it never fails, whatever the inputs.
func AvailabilityForDay(day string, appointments []model.Appointment, now time.Time) []SlotStatus {
	occupied := make(map[string]bool)
	for _, a := range appointments {
		if a.Day != day {
			continue
		}
		if t := NormalizeTime(a.StartTime); t != "" {
			occupied[t] = true
		}
	}

	statuses := make([]SlotStatus, 0, len(Catalog))
	for _, slot := range Catalog {
		isOccupied := occupied[slot.Start]

		isPast := false
		if start, ok := combine(day, slot.Start, now.Location()); ok {
			isPast = start.Before(now)
		}

		statuses = append(statuses, SlotStatus{
			Slot:      slot,
			Day:       day,
			Occupied:  isOccupied,
			Past:      isPast,
			Available: !isOccupied && !isPast,
		})
	}

	return statuses
}

// CanBook reports whether the slot starting at slotStart (HH:MM) is
// currently bookable on the given day: not occupied and not started.
// Booking a slot exactly at now is permitted; there is no buffer window.
// Advisory only; the store's unique constraint has the final word.
func CanBook(slotStart, day string, appointments []model.Appointment, now time.Time) bool {
	slotStart = NormalizeTime(slotStart)
	for _, status := range AvailabilityForDay(day, appointments, now) {
		if status.Slot.Start == slotStart {
			return status.Available
		}
	}
	return false
}

// AgendaForUser returns the chronological agenda of one user: their
// appointments ordered ascending by (day, normalized time), each tagged
// past or pending relative to now.
//
// defaultDay substitutes for a missing day value on malformed rows. When a
// date/time pair does not parse, ordering falls back to lexicographic
// comparison of the concatenated day+time strings rather than failing;
// malformed stored rows must not take the agenda down with them.
//
// A non-positive userID means "not authenticated" and yields an empty
// agenda, never an error.
func AgendaForUser(appointments []model.Appointment, userID int64, defaultDay string, now time.Time) []AgendaEntry {
	if userID <= 0 {
		return []AgendaEntry{}
	}

	mine := make([]model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.OwnerID == userID {
			mine = append(mine, a)
		}
	}

	dayOf := func(a model.Appointment) string {
		if a.Day == "" {
			return defaultDay
		}
		return a.Day
	}

	sort.SliceStable(mine, func(i, j int) bool {
		dayI, dayJ := dayOf(mine[i]), dayOf(mine[j])
		instantI, okI := combine(dayI, mine[i].StartTime, now.Location())
		instantJ, okJ := combine(dayJ, mine[j].StartTime, now.Location())
		if !okI || !okJ {
			keyI := dayI + NormalizeTime(mine[i].StartTime)
			keyJ := dayJ + NormalizeTime(mine[j].StartTime)
			return strings.Compare(keyI, keyJ) < 0
		}
		return instantI.Before(instantJ)
	})

	entries := make([]AgendaEntry, 0, len(mine))
	for _, a := range mine {
		status := StatusPending
		if instant, ok := combine(dayOf(a), a.StartTime, now.Location()); ok && instant.Before(now) {
			status = StatusPast
		}
		entries = append(entries, AgendaEntry{Appointment: a, Status: status})
	}

	return entries
}

// ValidateBooking checks the pure booking preconditions: an authenticated
// owner and a usable description. Slot-occupancy conflicts are left to the
// store.
func ValidateBooking(ownerID int64, description string) error {
	if ownerID <= 0 {
		return ErrUnauthenticated
	}
	if strings.TrimSpace(description) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateCancellation checks that userID may cancel the appointment now:
// the caller must own it and its instant must not have elapsed. The past
// check is re-validated here rather than trusted from the UI.
func ValidateCancellation(a *model.Appointment, userID int64, now time.Time) error {
	if userID <= 0 {
		return ErrUnauthenticated
	}
	if a == nil {
		return ErrNotFound
	}
	if a.OwnerID != userID {
		return ErrForbidden
	}
	if instant, ok := combine(a.Day, a.StartTime, now.Location()); ok && instant.Before(now) {
		return ErrAlreadyPast
	}
	return nil
}

// IsBookableDay applies the calendar-level policy: a day is selectable
// only if it is today or later and not a weekend. This is a precondition
// on day values handed to the scheduler, checked at the HTTP boundary.
func IsBookableDay(day string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", day, now.Location())
	if err != nil {
		return false
	}
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}
