package handlers

import (
	"net/http"
)

const defaultTopN = 4

func (a *API) MemberRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "memberID")
	if !ok {
		return
	}
	topN := queryInt(r, "top_n", defaultTopN)
	if topN == 0 {
		topN = defaultTopN
	}

	recs := a.Engine.Recommendations(r.Context(), id, topN)
	writeJSON(w, http.StatusOK, map[string]any{
		"member_id":       id,
		"recommendations": recs,
		"total_found":     len(recs),
	})
}

func (a *API) MemberWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "memberID")
	if !ok {
		return
	}
	schedule := a.Engine.WeeklySchedule(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]any{
		"member_id":       id,
		"weekly_schedule": schedule,
		"total_days":      len(schedule),
	})
}
