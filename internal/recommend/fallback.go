package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// fallbackRecommendations is the deterministic path: score every accessible
// class the member has not attended yet, keep those with a positive score
// and at least one session in their preferred slot, and rank by percentage.
func (e *Engine) fallbackRecommendations(memberID uint, topN int) []Recommendation {
	profile, err := e.MemberProfile(memberID)
	if err != nil {
		return []Recommendation{}
	}

	classes, err := e.AccessibleClasses(ForTier(profile.MembershipLevel))
	if err != nil {
		return []Recommendation{}
	}

	past := make(map[string]bool, len(profile.PastClasses))
	for _, name := range profile.PastClasses {
		past[name] = true
	}

	slot := slotFilterFor(string(profile.PreferredTime))
	recs := []Recommendation{}
	for _, cls := range classes {
		if past[cls.Name] {
			continue
		}

		score := e.MatchScore(memberID, cls.ClassID)
		sessions, err := e.ClassSessions(cls.ClassID, slot)
		if err != nil || score.Score <= 0 || len(sessions) == 0 {
			continue
		}

		previews := make([]string, 0, 2)
		for _, s := range sessions[:min(2, len(sessions))] {
			previews = append(previews, s.Day+" "+s.Time)
		}

		recs = append(recs, Recommendation{
			ClassName:       cls.Name,
			Instructor:      cls.Instructor,
			Difficulty:      cls.Difficulty,
			Duration:        cls.Duration,
			MatchPercentage: score.Percentage,
			SchedulePreview: strings.Join(previews, ", "),
			SpotsAvailable:  sessions[0].SpotsAvailable,
			Reasons: []string{
				fmt.Sprintf("Matches your %s membership level", profile.MembershipLevel),
				fmt.Sprintf("Available during your preferred %s time slot", profile.PreferredTime),
				fmt.Sprintf("%s difficulty appropriate for your experience", cls.Difficulty),
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})
	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}
