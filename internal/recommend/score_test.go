package recommend

import "testing"

func TestMatchScoreStandardBeginner(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	m := addMember(t, gdb, "Jane", "Doe", "Standard", "Morning", "")
	cls := addClass(t, gdb, "Yoga", "Beginner", "Standard", 20)
	addSession(t, gdb, cls.ClassID, "Monday", "06:00", "07:00")

	got := e.MatchScore(m.MemberID, cls.ClassID)
	if got.Score != 90 || got.Percentage != 90 {
		t.Fatalf("score = %d (%d%%), want 90", got.Score, got.Percentage)
	}
	if got.Factors["difficulty_match"] != 30 ||
		got.Factors["membership_access"] != 25 ||
		got.Factors["time_availability"] != 35 {
		t.Fatalf("factors = %v", got.Factors)
	}
}

func TestMatchScorePlatinumFlatDifficulty(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	m := addMember(t, gdb, "Alex", "Rodriguez", "Platinum", "Evening", "")
	cls := addClass(t, gdb, "Olympic Lifting", "Advanced", "Platinum", 8)
	addSession(t, gdb, cls.ClassID, "Friday", "18:30", "19:30")

	got := e.MatchScore(m.MemberID, cls.ClassID)
	// Platinum difficulty fit is a flat 25, and a Platinum-only class gives
	// no membership-access points.
	if got.Factors["difficulty_match"] != 25 {
		t.Errorf("difficulty = %d, want 25", got.Factors["difficulty_match"])
	}
	if got.Factors["membership_access"] != 0 {
		t.Errorf("access = %d, want 0", got.Factors["membership_access"])
	}
	if got.Factors["time_availability"] != 35 {
		t.Errorf("time = %d, want 35", got.Factors["time_availability"])
	}
	if got.Score != 60 {
		t.Errorf("total = %d, want 60", got.Score)
	}
}

func TestMatchScoreNoMatchingSession(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	m := addMember(t, gdb, "Jane", "Doe", "Premium", "Morning", "")
	cls := addClass(t, gdb, "HIIT", "Intermediate", "Premium", 20)
	addSession(t, gdb, cls.ClassID, "Monday", "18:30", "19:30")

	got := e.MatchScore(m.MemberID, cls.ClassID)
	if got.Factors["time_availability"] != 0 {
		t.Errorf("evening-only class must give no time points to a morning member, got %d", got.Factors["time_availability"])
	}
	if got.Score != 55 {
		t.Errorf("total = %d, want 55 (30 difficulty + 25 access)", got.Score)
	}
}

func TestMatchScoreUnknownIDs(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	got := e.MatchScore(77, 88)
	if got.Score != 0 || got.Percentage != 0 {
		t.Fatalf("unknown ids must score zero, got %+v", got)
	}
	if got.Factors == nil {
		t.Fatal("factors map must be non-nil")
	}
}
