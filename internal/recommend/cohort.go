package recommend

import (
	"sort"

	"github.com/smartgym/backend/internal/models"
)

const (
	cohortLimit     = 10
	popularClassesN = 5
)

// CohortPreferences ranks the classes most attended by members who share the
// querying member's tier and preferred time slot.
type CohortPreferences struct {
	PopularClasses      []string `json:"popular_classes"`
	SimilarMembersCount int      `json:"similar_members_count"`
}

// SimilarMemberPreferences finds up to ten other members with the same tier
// and time-slot preference, tallies the classes they attended, and returns
// the top five names by frequency. Ties keep first-encountered order; an
// unknown member yields an empty result.
func (e *Engine) SimilarMemberPreferences(memberID uint) CohortPreferences {
	var m models.Member
	if err := e.db.First(&m, memberID).Error; err != nil {
		return CohortPreferences{PopularClasses: []string{}}
	}

	var similar []models.Member
	if err := e.db.
		Where("membership_level = ? AND preferred_time_slot = ? AND member_id <> ?",
			m.MembershipLevel, m.PreferredTimeSlot, memberID).
		Order("member_id").
		Limit(cohortLimit).
		Find(&similar).Error; err != nil {
		return CohortPreferences{PopularClasses: []string{}}
	}

	counts := map[string]int{}
	names := []string{}
	for _, s := range similar {
		attended, err := e.attendedClassNames(s.MemberID)
		if err != nil {
			return CohortPreferences{PopularClasses: []string{}}
		}
		for _, name := range attended {
			if _, seen := counts[name]; !seen {
				names = append(names, name)
			}
			counts[name]++
		}
	}

	// Stable sort on frequency only; no secondary key.
	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})
	if len(names) > popularClassesN {
		names = names[:popularClassesN]
	}

	return CohortPreferences{
		PopularClasses:      names,
		SimilarMembersCount: len(similar),
	}
}
