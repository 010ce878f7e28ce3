package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/smartgym/backend/internal/models"
)

const (
	weeklyPoolSize   = 15 // wider recommendation pool to fill a full week
	maxEntriesPerDay = 3
)

// ScheduleEntry is one planned session in the weekly schedule.
type ScheduleEntry struct {
	ScheduleID uint   `json:"schedule_id"`
	ClassName  string `json:"class_name"`
	Time       string `json:"time"`
	Room       string `json:"room"`
	Instructor string `json:"instructor"`
	Difficulty string `json:"difficulty"`
	Duration   int    `json:"duration"`
	Capacity   string `json:"capacity"` // "registered/max"
	SpotsLeft  int    `json:"spots_left"`
	MatchScore int    `json:"match_score"`
}

// WeeklySchedule expands the member's recommendations into a day-keyed
// session plan: only sessions on preferred days (an empty preference means
// any day) in the preferred time slot, at most three per day, each day
// sorted by start time. Days without entries are omitted; an unknown member
// yields an empty map.
func (e *Engine) WeeklySchedule(ctx context.Context, memberID uint) map[string][]ScheduleEntry {
	week := map[string][]ScheduleEntry{}

	var m models.Member
	if err := e.db.First(&m, memberID).Error; err != nil {
		return week
	}

	var preferredDays []string
	if m.PreferredDays != "" {
		for _, d := range strings.Split(m.PreferredDays, ",") {
			preferredDays = append(preferredDays, strings.TrimSpace(d))
		}
	}
	dayAllowed := func(day string) bool {
		if len(preferredDays) == 0 {
			return true
		}
		for _, d := range preferredDays {
			if d == day {
				return true
			}
		}
		return false
	}

	// A member without a recognized slot preference matches no session.
	memberSlot, hasSlot := ParseTimeSlot(m.PreferredTimeSlot)

	for _, rec := range e.Recommendations(ctx, memberID, weeklyPoolSize) {
		var cls models.Class
		if err := e.db.Where("class_name = ?", rec.ClassName).First(&cls).Error; err != nil {
			continue
		}

		var sessions []models.ClassSchedule
		if err := e.db.Where("class_id = ?", cls.ClassID).Order("schedule_id").Find(&sessions).Error; err != nil {
			continue
		}

		for _, s := range sessions {
			if !dayAllowed(s.DayOfWeek) {
				continue
			}
			hour, ok := startHour(s.StartTime)
			if !ok || !hasSlot || SlotForHour(hour) != memberSlot {
				continue
			}

			registered, err := e.activeCount(s.ScheduleID)
			if err != nil {
				continue
			}

			week[s.DayOfWeek] = append(week[s.DayOfWeek], ScheduleEntry{
				ScheduleID: s.ScheduleID,
				ClassName:  rec.ClassName,
				Time:       s.StartTime + "-" + s.EndTime,
				Room:       s.RoomLocation,
				Instructor: rec.Instructor,
				Difficulty: rec.Difficulty,
				Duration:   rec.Duration,
				Capacity:   fmt.Sprintf("%d/%d", registered, cls.MaxCapacity),
				SpotsLeft:  cls.MaxCapacity - registered,
				MatchScore: rec.MatchPercentage,
			})
		}
	}

	for day, entries := range week {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Time < entries[j].Time
		})
		if len(entries) > maxEntriesPerDay {
			entries = entries[:maxEntriesPerDay]
		}
		week[day] = entries
	}
	return week
}
