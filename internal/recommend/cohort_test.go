package recommend

import (
	"testing"

	"github.com/smartgym/backend/internal/models"
)

func TestSimilarMemberPreferences(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	me := addMember(t, gdb, "Jane", "Doe", "Premium", "Morning", "")
	peer1 := addMember(t, gdb, "Amy", "Jones", "Premium", "Morning", "")
	peer2 := addMember(t, gdb, "Dan", "Moore", "Premium", "Morning", "")
	// Different slot: not part of the cohort.
	addMember(t, gdb, "Tom", "White", "Premium", "Evening", "")

	yoga := addClass(t, gdb, "Yoga", "Beginner", "Standard", 20)
	spin := addClass(t, gdb, "Spin", "Intermediate", "Standard", 25)
	ys := addSession(t, gdb, yoga.ClassID, "Monday", "06:00", "07:00")
	ss := addSession(t, gdb, spin.ClassID, "Tuesday", "09:00", "10:00")

	addRegistration(t, gdb, peer1.MemberID, ys.ScheduleID, models.StatusAttended)
	addRegistration(t, gdb, peer1.MemberID, ss.ScheduleID, models.StatusAttended)
	addRegistration(t, gdb, peer2.MemberID, ss.ScheduleID, models.StatusAttended)
	// The querying member's own attendance must not influence the tally.
	addRegistration(t, gdb, me.MemberID, ys.ScheduleID, models.StatusAttended)

	got := e.SimilarMemberPreferences(me.MemberID)
	if got.SimilarMembersCount != 2 {
		t.Fatalf("cohort size = %d, want 2", got.SimilarMembersCount)
	}
	if len(got.PopularClasses) != 2 || got.PopularClasses[0] != "Spin" {
		t.Fatalf("popular = %v, want Spin first (2 vs 1)", got.PopularClasses)
	}
}

func TestSimilarMemberPreferencesCohortCap(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	me := addMember(t, gdb, "Jane", "Doe", "Standard", "Evening", "")
	for i := 0; i < 12; i++ {
		addMember(t, gdb, "Peer", string(rune('A'+i)), "Standard", "Evening", "")
	}

	got := e.SimilarMemberPreferences(me.MemberID)
	if got.SimilarMembersCount != 10 {
		t.Fatalf("cohort size = %d, want capped at 10", got.SimilarMembersCount)
	}
}

func TestSimilarMemberPreferencesUnknownMember(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	got := e.SimilarMemberPreferences(404)
	if got.SimilarMembersCount != 0 || len(got.PopularClasses) != 0 {
		t.Fatalf("unknown member must yield empty cohort, got %+v", got)
	}
	if got.PopularClasses == nil {
		t.Fatal("popular classes must be an empty slice, not nil")
	}
}
