package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot is one bookable window of the day. Start and End are wall-clock
// strings without a date component; reservations store these verbatim.
type TimeSlot struct {
	Name  string
	Label string
	Start string
	End   string
}

// The slot windows must not overlap. Add more slots here as needed.
var timeSlots = []TimeSlot{
	{Name: "morning", Label: "9:00 - 12:00", Start: "9:00", End: "12:00"},
	{Name: "afternoon", Label: "13:00 - 17:00", Start: "13:00", End: "17:00"},
	{Name: "evening", Label: "18:00 - 23:59", Start: "18:00", End: "23:59"},
}

var parkingSpots = []string{"1", "2", "3"}

// Resolve looks up a slot by name.
func Resolve(name string) (TimeSlot, bool) {
	for _, s := range timeSlots {
		if s.Name == name {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// Slots returns the catalog in booking order.
func Slots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// Spots returns all bookable spot ids.
func Spots() []string {
	out := make([]string, len(parkingSpots))
	copy(out, parkingSpots)
	return out
}

func SpotExists(id string) bool {
	for _, s := range parkingSpots {
		if s == id {
			return true
		}
	}
	return false
}

// MinuteOfDay parses a wall-clock string like "9:00" or "13:05" into minutes
// since midnight. Slot boundaries use a single-digit hour, so this accepts
// both "9:00" and "09:00".
func MinuteOfDay(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	return h*60 + m, nil
}
