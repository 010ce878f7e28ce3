package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Tool is one entry of the tool catalog advertised to the model.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// The five tools map 1:1 onto the engine primitives.
func toolCatalog() []Tool {
	return []Tool{
		{Type: "function", Function: ToolFunction{
			Name:        "get_member_profile",
			Description: "Get member's fitness profile including preferences, membership level, and class history",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"member_id": {"type": "integer", "description": "The member's ID"}
				},
				"required": ["member_id"]
			}`),
		}},
		{Type: "function", Function: ToolFunction{
			Name:        "get_available_classes",
			Description: "Get all gym classes the member can access based on their membership level",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"membership_level": {"type": "string", "description": "Standard, Premium, or Platinum"}
				},
				"required": ["membership_level"]
			}`),
		}},
		{Type: "function", Function: ToolFunction{
			Name:        "check_class_schedule",
			Description: "Check when a specific class is offered and if it matches member's preferred time",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"class_id": {"type": "integer", "description": "The class ID"},
					"preferred_time": {"type": "string", "description": "Morning, Afternoon, or Evening"}
				},
				"required": ["class_id"]
			}`),
		}},
		{Type: "function", Function: ToolFunction{
			Name:        "calculate_match_score",
			Description: "Calculate how well a class matches the member's profile and preferences",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"member_id": {"type": "integer"},
					"class_id": {"type": "integer"}
				},
				"required": ["member_id", "class_id"]
			}`),
		}},
		{Type: "function", Function: ToolFunction{
			Name:        "get_similar_member_preferences",
			Description: "Find what classes similar members with same membership level and time preference enjoy",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"member_id": {"type": "integer"}
				},
				"required": ["member_id"]
			}`),
		}},
	}
}

// Typed argument records, one per tool, decoded from the model's
// JSON-encoded arguments.
type profileArgs struct {
	MemberID uint `json:"member_id"`
}

type classesArgs struct {
	MembershipLevel string `json:"membership_level"`
}

type scheduleArgs struct {
	ClassID       uint   `json:"class_id"`
	PreferredTime string `json:"preferred_time"`
}

type scoreArgs struct {
	MemberID uint `json:"member_id"`
	ClassID  uint `json:"class_id"`
}

type similarArgs struct {
	MemberID uint `json:"member_id"`
}

// callTool dispatches a model-requested tool call to the matching engine
// primitive and returns its result for JSON re-encoding. Any error here is
// an orchestration failure and sends the caller to the fallback path.
func (e *Engine) callTool(name, rawArgs string) (any, error) {
	switch name {
	case "get_member_profile":
		var a profileArgs
		if err := json.Unmarshal([]byte(rawArgs), &a); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		p, err := e.MemberProfile(a.MemberID)
		if errors.Is(err, ErrMemberNotFound) {
			return nil, nil // model sees null
		}
		return p, err

	case "get_available_classes":
		var a classesArgs
		if err := json.Unmarshal([]byte(rawArgs), &a); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		if a.MembershipLevel == "" {
			return nil, errors.New("missing required argument membership_level")
		}
		return e.AccessibleClasses(ForTier(Tier(a.MembershipLevel)))

	case "check_class_schedule":
		var a scheduleArgs
		if err := json.Unmarshal([]byte(rawArgs), &a); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		return e.ClassSessions(a.ClassID, slotFilterFor(a.PreferredTime))

	case "calculate_match_score":
		var a scoreArgs
		if err := json.Unmarshal([]byte(rawArgs), &a); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		return e.MatchScore(a.MemberID, a.ClassID), nil

	case "get_similar_member_preferences":
		var a similarArgs
		if err := json.Unmarshal([]byte(rawArgs), &a); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		return e.SimilarMemberPreferences(a.MemberID), nil
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}
