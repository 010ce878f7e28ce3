package recommend

import (
	"errors"

	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

// ErrMemberNotFound is returned by MemberProfile for an unknown member id.
var ErrMemberNotFound = errors.New("member not found")

// Profile is a member's identity, preferences, and attendance history,
// assembled fresh per request and never persisted.
type Profile struct {
	MemberID             uint     `json:"member_id"`
	Name                 string   `json:"name"`
	MembershipLevel      Tier     `json:"membership_level"`
	PreferredTime        TimeSlot `json:"preferred_time"`
	PreferredDays        string   `json:"preferred_days"`
	PastClasses          []string `json:"past_classes"`
	TotalClassesAttended int      `json:"total_classes_attended"`
}

// MemberProfile builds the profile for a member, including the names of all
// classes they have attended in registration order.
func (e *Engine) MemberProfile(memberID uint) (*Profile, error) {
	var m models.Member
	if err := e.db.First(&m, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	past, err := e.attendedClassNames(memberID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		MemberID:             m.MemberID,
		Name:                 m.FirstName + " " + m.LastName,
		MembershipLevel:      Tier(m.MembershipLevel),
		PreferredTime:        TimeSlot(m.PreferredTimeSlot),
		PreferredDays:        m.PreferredDays,
		PastClasses:          past,
		TotalClassesAttended: len(past),
	}, nil
}

// attendedClassNames lists the class names behind a member's Attended
// registrations, ordered by registration id so the sequence is stable.
func (e *Engine) attendedClassNames(memberID uint) ([]string, error) {
	names := []string{}
	err := e.db.Table("class_registrations AS r").
		Joins("JOIN class_schedules s ON s.schedule_id = r.schedule_id").
		Joins("JOIN classes c ON c.class_id = s.class_id").
		Where("r.member_id = ? AND r.attendance_status = ?", memberID, models.StatusAttended).
		Order("r.registration_id").
		Pluck("c.class_name", &names).Error
	return names, err
}
