package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// Recommendation is one entry of the ranked recommendation list, identical
// in shape for both the tool-assisted and the deterministic path.
type Recommendation struct {
	ClassName       string   `json:"class_name"`
	Instructor      string   `json:"instructor"`
	Difficulty      string   `json:"difficulty"`
	Duration        int      `json:"duration"`
	MatchPercentage int      `json:"match_percentage"`
	SchedulePreview string   `json:"schedule_preview"`
	SpotsAvailable  int      `json:"spots_available"`
	Reasons         []string `json:"reasons"`
}

const systemPrompt = `You are an expert fitness AI that provides personalized, evidence-based gym class recommendations.

Your recommendations should be:
1. Technically informed - reference physiological adaptation, training principles, periodization
2. Data-driven - use match scores, attendance patterns, capacity data
3. Convincing - explain WHY each class benefits their specific goals
4. Progressive - consider their experience level and past classes

Use available tools to gather data, then provide recommendations in JSON format.`

func userPrompt(memberID uint, topN int) string {
	return fmt.Sprintf(`Analyze member %d's profile and recommend the top %d classes.

Use the tools to:
1. Get their profile and history
2. Find accessible classes
3. Check schedules for time compatibility
4. Calculate match scores
5. See what similar members enjoy

Provide exactly %d recommendations from classes they can ACCESS based on their membership level.

Each recommendation should have:
- Technical reasoning (mention adaptation, progressive overload, recovery, etc.)
- Specific data points (match score, schedule details, capacity)
- Convincing explanations tailored to their level and goals

Return ONLY this JSON structure:
{
  "recommendations": [
    {
      "class_name": "string",
      "instructor": "string",
      "difficulty": "string",
      "duration": integer,
      "match_percentage": integer,
      "schedule_preview": "Monday 09:00, Wednesday 09:00",
      "spots_available": integer,
      "reasons": [
        "Technical reason with physiological benefit",
        "Data-driven reason with specific metric",
        "Social proof or progression reason"
      ]
    }
  ]
}`, memberID, topN, topN)
}

// Recommendations produces the ranked recommendation list for a member.
// With a chat client configured it drives the tool-calling loop; any failure
// there is recovered locally by switching to the deterministic fallback, so
// this never fails.
func (e *Engine) Recommendations(ctx context.Context, memberID uint, topN int) []Recommendation {
	if e.chat != nil {
		recs, err := e.toolAssisted(ctx, memberID, topN)
		if err == nil {
			return recs
		}
		e.log.Warn("model recommendation failed, using deterministic fallback",
			zap.Uint("member_id", memberID), zap.Error(err))
	}
	return e.fallbackRecommendations(memberID, topN)
}

// toolAssisted runs the request/respond loop: execute every tool call the
// model asks for, append each result keyed by its call id, and resend until
// the model stops requesting tools, then parse its final answer.
func (e *Engine) toolAssisted(ctx context.Context, memberID uint, topN int) ([]Recommendation, error) {
	tools := toolCatalog()
	messages := []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt(memberID, topN)},
	}

	for round := 0; round < e.maxToolRounds; round++ {
		resp, err := e.chat.CreateChatCompletion(ctx, ChatRequest{
			Model:       e.model,
			Messages:    messages,
			Tools:       tools,
			ToolChoice:  "auto",
			Temperature: e.temperature,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("empty completion response")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return parseRecommendations(msg.Content)
		}

		messages = append(messages, msg)
		for _, tc := range msg.ToolCalls {
			result, err := e.callTool(tc.Function.Name, tc.Function.Arguments)
			if err != nil {
				return nil, fmt.Errorf("tool %s: %w", tc.Function.Name, err)
			}
			payload, err := json.Marshal(result)
			if err != nil {
				return nil, fmt.Errorf("encode result of %s: %w", tc.Function.Name, err)
			}
			e.log.Debug("tool executed", zap.String("tool", tc.Function.Name))
			messages = append(messages, ChatMessage{
				Role:       "tool",
				ToolCallID: tc.ID,
				Content:    string(payload),
			})
		}
	}

	return nil, fmt.Errorf("tool loop did not settle within %d rounds", e.maxToolRounds)
}

// recommendationSchema checks the shape of the model's final answer before
// it is accepted. The recommendations key itself is optional: a valid
// object without it means an empty list, not a failure.
var recommendationSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"properties": {
		"recommendations": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"class_name":       {"type": "string"},
					"instructor":       {"type": "string"},
					"difficulty":       {"type": "string"},
					"duration":         {"type": "integer"},
					"match_percentage": {"type": "integer"},
					"schedule_preview": {"type": "string"},
					"spots_available":  {"type": "integer"},
					"reasons":          {"type": "array", "items": {"type": "string"}}
				},
				"required": ["class_name", "match_percentage", "reasons"]
			}
		}
	}
}`)

// parseRecommendations strips an optional ```json fence, validates the body
// against the schema, and extracts the recommendations array.
func parseRecommendations(content string) ([]Recommendation, error) {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	result, err := gojsonschema.Validate(recommendationSchema, gojsonschema.NewStringLoader(s))
	if err != nil {
		return nil, fmt.Errorf("parse final answer: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			details = append(details, re.String())
		}
		return nil, fmt.Errorf("final answer failed validation: %s", strings.Join(details, "; "))
	}

	var out struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode final answer: %w", err)
	}
	if out.Recommendations == nil {
		return []Recommendation{}, nil
	}
	return out.Recommendations, nil
}
