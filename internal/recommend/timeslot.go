package recommend

import "time"

// TimeSlot buckets a session start hour into the three booking windows.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"   // start hour < 12
	SlotAfternoon TimeSlot = "Afternoon" // 12 <= start hour < 17
	SlotEvening   TimeSlot = "Evening"   // start hour >= 17
)

func ParseTimeSlot(s string) (TimeSlot, bool) {
	switch TimeSlot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return TimeSlot(s), true
	}
	return "", false
}

// SlotForHour buckets a 24h start hour into its time slot.
func SlotForHour(hour int) TimeSlot {
	switch {
	case hour < 12:
		return SlotMorning
	case hour < 17:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

// SlotFilter selects either every session or only those in one slot.
type SlotFilter struct {
	slot TimeSlot
	any  bool
}

func ForSlot(s TimeSlot) SlotFilter { return SlotFilter{slot: s} }
func AnySlot() SlotFilter           { return SlotFilter{any: true} }

func (f SlotFilter) allows(s TimeSlot) bool {
	return f.any || f.slot == s
}

// slotFilterFor maps a member's stored preference to a filter; anything that
// is not a known slot name means no restriction.
func slotFilterFor(pref string) SlotFilter {
	if s, ok := ParseTimeSlot(pref); ok {
		return ForSlot(s)
	}
	return AnySlot()
}

// startHour extracts the hour from an "HH:MM" session start time.
func startHour(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}
