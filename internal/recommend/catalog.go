package recommend

import (
	"github.com/smartgym/backend/internal/models"
)

// activeStatuses are the registration states that occupy a spot.
var activeStatuses = []string{models.StatusRegistered, models.StatusAttended}

// ClassSummary is the catalog view of a class as exposed to the scorer, the
// fallback ranker, and the model's get_available_classes tool.
type ClassSummary struct {
	ClassID            uint   `json:"class_id"`
	Name               string `json:"name"`
	Instructor         string `json:"instructor"`
	Difficulty         string `json:"difficulty"`
	Duration           int    `json:"duration"`
	RequiredMembership string `json:"required_membership"`
	Description        string `json:"description"`
	MaxCapacity        int    `json:"max_capacity"`
}

// SessionInfo is one scheduled session with its live remaining capacity.
type SessionInfo struct {
	Day            string   `json:"day"`
	Time           string   `json:"time"`
	TimeSlot       TimeSlot `json:"time_slot"`
	Room           string   `json:"room"`
	SpotsAvailable int      `json:"spots_available"`
	Capacity       int      `json:"capacity"`
}

// AccessibleClasses returns every class the filter's tier may book, in
// catalog order.
func (e *Engine) AccessibleClasses(f TierFilter) ([]ClassSummary, error) {
	var classes []models.Class
	if err := e.db.Order("class_id").Find(&classes).Error; err != nil {
		return nil, err
	}

	out := make([]ClassSummary, 0, len(classes))
	for _, c := range classes {
		if !f.allows(Tier(c.RequiredMembership)) {
			continue
		}
		out = append(out, ClassSummary{
			ClassID:            c.ClassID,
			Name:               c.ClassName,
			Instructor:         c.InstructorName,
			Difficulty:         c.DifficultyLevel,
			Duration:           c.DurationMinutes,
			RequiredMembership: c.RequiredMembership,
			Description:        c.Description,
			MaxCapacity:        c.MaxCapacity,
		})
	}
	return out, nil
}

// ClassSessions returns the sessions of a class that pass the slot filter,
// each with its remaining capacity. An unknown class yields no sessions.
func (e *Engine) ClassSessions(classID uint, f SlotFilter) ([]SessionInfo, error) {
	var class models.Class
	if err := e.db.First(&class, classID).Error; err != nil {
		return []SessionInfo{}, nil
	}

	var sessions []models.ClassSchedule
	if err := e.db.Where("class_id = ?", classID).Order("schedule_id").Find(&sessions).Error; err != nil {
		return nil, err
	}

	out := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		hour, ok := startHour(s.StartTime)
		if !ok {
			continue
		}
		slot := SlotForHour(hour)
		if !f.allows(slot) {
			continue
		}

		registered, err := e.activeCount(s.ScheduleID)
		if err != nil {
			return nil, err
		}
		out = append(out, SessionInfo{
			Day:            s.DayOfWeek,
			Time:           s.StartTime + "-" + s.EndTime,
			TimeSlot:       slot,
			Room:           s.RoomLocation,
			SpotsAvailable: class.MaxCapacity - registered,
			Capacity:       class.MaxCapacity,
		})
	}
	return out, nil
}

// activeCount counts registrations occupying a spot in the session.
func (e *Engine) activeCount(scheduleID uint) (int, error) {
	var n int64
	err := e.db.Model(&models.ClassRegistration{}).
		Where("schedule_id = ? AND attendance_status IN ?", scheduleID, activeStatuses).
		Count(&n).Error
	return int(n), err
}
