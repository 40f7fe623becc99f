// Package schedule holds the clinic opening-hours policy and the hourly
// slot grid derived from it. Everything here is pure calendar arithmetic;
// availability against booked appointments is the query layer's concern.
package schedule

import "time"

const (
	OpeningHour         = 8
	WeekdayClosingHour  = 18
	SaturdayClosingHour = 12
)

// Policy evaluates timestamps against the clinic's wall clock. Appointment
// instants are stored in UTC, so every check converts into the clinic
// location first; otherwise a slot near midnight can land on the wrong day.
type Policy struct {
	loc *time.Location
}

func NewPolicy(loc *time.Location) *Policy {
	if loc == nil {
		loc = time.UTC
	}
	return &Policy{loc: loc}
}

func (p *Policy) Location() *time.Location {
	return p.loc
}

// IsBusinessHour reports whether a slot starting at t may be booked.
// Mon-Fri 8:00-18:00, Sat 8:00-12:00, Sun closed. Closing hours are
// exclusive: the slot starting exactly at closing time is not bookable.
func (p *Policy) IsBusinessHour(t time.Time) bool {
	local := t.In(p.loc)
	hour := local.Hour()

	switch local.Weekday() {
	case time.Saturday:
		return hour >= OpeningHour && hour < SaturdayClosingHour
	case time.Sunday:
		return false
	default:
		return hour >= OpeningHour && hour < WeekdayClosingHour
	}
}

// SlotCandidates returns the bookable slot start times for the calendar day
// containing t, ascending. The candidate grid is the weekday window [8,18);
// the policy check trims Saturday down to [8,12) and empties Sunday.
func (p *Policy) SlotCandidates(day time.Time) []time.Time {
	local := day.In(p.loc)
	year, month, date := local.Date()

	candidates := make([]time.Time, 0, WeekdayClosingHour-OpeningHour)
	for hour := OpeningHour; hour < WeekdayClosingHour; hour++ {
		slot := time.Date(year, month, date, hour, 0, 0, 0, p.loc)
		if p.IsBusinessHour(slot) {
			candidates = append(candidates, slot)
		}
	}
	return candidates
}

// DayRange widens a calendar day to the inclusive instant range
// [00:00:00, 23:59:59.999999999] in the clinic location, for filtering
// stored appointments by day.
func (p *Policy) DayRange(day time.Time) (time.Time, time.Time) {
	local := day.In(p.loc)
	year, month, date := local.Date()

	start := time.Date(year, month, date, 0, 0, 0, 0, p.loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
