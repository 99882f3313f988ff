package generation

import (
	"errors"
)

// Validation and lookup failures surfaced to callers. Anything else coming
// out of Generate is a server-side failure.
var (
	ErrMissingField    = errors.New("Missing required fields")
	ErrUnsupportedType = errors.New("Invalid activity type")
)

// Request carries the inputs for one generation call
type Request struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	ProgramID   string `json:"program_id"`
}

// Service produces a structured activity payload for a generation request.
// The mock implementation fabricates content locally; a real provider-backed
// implementation can replace it without touching callers as long as it keeps
// the four payload shapes and the same error contract.
type Service interface {
	Generate(req Request) (interface{}, error)
}

// Payload shapes per activity type. These are the contract boundary for any
// generation provider.

type QuizQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type QuizPayload struct {
	Questions    []QuizQuestion `json:"questions"`
	PassingScore int            `json:"passingScore"`
	TimeLimit    int            `json:"timeLimit"`
}

type SurveyQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Scale    int      `json:"scale,omitempty"`
	Required bool     `json:"required"`
}

type SurveyPayload struct {
	Questions []SurveyQuestion `json:"questions"`
}

type GameQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
	Points   int      `json:"points"`
}

type GamePayload struct {
	GameType        string         `json:"gameType"`
	Rules           string         `json:"rules"`
	Questions       []GameQuestion `json:"questions"`
	TimePerQuestion int            `json:"timePerQuestion"`
	MaxAttempts     int            `json:"maxAttempts"`
}

type DemoStep struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Media   *string `json:"media"`
	Action  string  `json:"action"`
}

type DemoPayload struct {
	Steps              []DemoStep `json:"steps"`
	CompletionCriteria string     `json:"completionCriteria"`
	EstimatedDuration  int        `json:"estimatedDuration"`
}
