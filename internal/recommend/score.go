package recommend

import (
	"github.com/smartgym/backend/internal/models"
)

// ScoreBreakdown is a 0-100 compatibility score between a member and a
// class, with the contribution of each factor.
type ScoreBreakdown struct {
	Score      int            `json:"score"`
	Factors    map[string]int `json:"factors"`
	Percentage int            `json:"percentage"`
}

// MatchScore computes the compatibility score from three additive factors:
// difficulty fit (max 30), membership access (max 25), and preferred-time
// availability (max 35). If either id does not resolve it fails closed to a
// zero score so the orchestrator can call it speculatively.
func (e *Engine) MatchScore(memberID, classID uint) ScoreBreakdown {
	var member models.Member
	var class models.Class
	if e.db.First(&member, memberID).Error != nil || e.db.First(&class, classID).Error != nil {
		return ScoreBreakdown{Factors: map[string]int{}}
	}

	tier := Tier(member.MembershipLevel)
	factors := map[string]int{}

	difficulty := 0
	switch {
	case tier == TierStandard && class.DifficultyLevel == "Beginner":
		difficulty = 30
	case tier == TierPremium && (class.DifficultyLevel == "Beginner" || class.DifficultyLevel == "Intermediate"):
		difficulty = 30
	case tier == TierPlatinum:
		difficulty = 25
	}
	factors["difficulty_match"] = difficulty

	access := 0
	switch {
	case Tier(class.RequiredMembership) == TierStandard:
		access = 25
	case Tier(class.RequiredMembership) == TierPremium && (tier == TierPremium || tier == TierPlatinum):
		access = 25
	}
	factors["membership_access"] = access

	timeScore := 0
	if sessions, err := e.ClassSessions(classID, slotFilterFor(member.PreferredTimeSlot)); err == nil && len(sessions) > 0 {
		timeScore = 35
	}
	factors["time_availability"] = timeScore

	total := difficulty + access + timeScore
	return ScoreBreakdown{
		Score:      total,
		Factors:    factors,
		Percentage: min(100, total),
	}
}
