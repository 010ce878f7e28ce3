package recommend

import (
	"encoding/json"
	"testing"
)

func TestToolCatalog(t *testing.T) {
	tools := toolCatalog()
	if len(tools) != 5 {
		t.Fatalf("catalog has %d tools, want 5", len(tools))
	}
	want := map[string]bool{
		"get_member_profile":             false,
		"get_available_classes":          false,
		"check_class_schedule":           false,
		"calculate_match_score":          false,
		"get_similar_member_preferences": false,
	}
	for _, tool := range tools {
		if tool.Type != "function" {
			t.Errorf("tool %s has type %q", tool.Function.Name, tool.Type)
		}
		if _, known := want[tool.Function.Name]; !known {
			t.Errorf("unexpected tool %q", tool.Function.Name)
		}
		want[tool.Function.Name] = true
		// Every parameter block must be valid JSON.
		var schema map[string]any
		if err := json.Unmarshal(tool.Function.Parameters, &schema); err != nil {
			t.Errorf("tool %s parameters: %v", tool.Function.Name, err)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q missing from catalog", name)
		}
	}
}

func TestCallToolDispatch(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	m := addMember(t, gdb, "Jane", "Doe", "Premium", "Morning", "")
	cls := addClass(t, gdb, "Yoga", "Beginner", "Standard", 20)
	addSession(t, gdb, cls.ClassID, "Monday", "06:00", "07:00")

	got, err := e.callTool("get_member_profile", `{"member_id": 1}`)
	if err != nil {
		t.Fatalf("get_member_profile: %v", err)
	}
	if p, ok := got.(*Profile); !ok || p.MemberID != m.MemberID {
		t.Fatalf("got %T %+v", got, got)
	}

	got, err = e.callTool("calculate_match_score", `{"member_id": 1, "class_id": 1}`)
	if err != nil {
		t.Fatalf("calculate_match_score: %v", err)
	}
	if s, ok := got.(ScoreBreakdown); !ok || s.Score == 0 {
		t.Fatalf("got %T %+v", got, got)
	}
}

func TestCallToolUnknownMemberIsNull(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	got, err := e.callTool("get_member_profile", `{"member_id": 404}`)
	if err != nil {
		t.Fatalf("unknown member must not be an orchestration error: %v", err)
	}
	// Marshals to JSON null, which is what the model reads.
	payload, _ := json.Marshal(got)
	if string(payload) != "null" {
		t.Fatalf("payload = %s, want null", payload)
	}
}

func TestCallToolErrors(t *testing.T) {
	gdb := openTestDB(t)
	e := testEngine(t, gdb, nil)

	if _, err := e.callTool("get_available_classes", `{}`); err == nil {
		t.Error("missing membership_level must error")
	}
	if _, err := e.callTool("get_member_profile", `not json`); err == nil {
		t.Error("undecodable arguments must error")
	}
	if _, err := e.callTool("summon_trainer", `{}`); err == nil {
		t.Error("unknown tool must error")
	}
}
