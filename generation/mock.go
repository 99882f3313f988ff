package generation

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"arc/models"
)

// MockService fabricates structurally valid payloads in place of a real
// generation provider call. The finalized prompt is built exactly as a
// provider-backed implementation would send it.
type MockService struct {
	db *gorm.DB
}

func NewMockService(db *gorm.DB) *MockService {
	return &MockService{db: db}
}

// Generate validates the request, finalizes the prompt and returns a mock
// payload matching the requested activity type's shape
func (s *MockService) Generate(req Request) (interface{}, error) {
	if req.Type == "" || req.Title == "" || req.Prompt == "" || req.ProgramID == "" {
		return nil, ErrMissingField
	}

	tmpl, ok := PromptTemplate(req.Type)
	if !ok {
		return nil, ErrUnsupportedType
	}

	finalPrompt := buildPrompt(tmpl, req, s.programContext(req.ProgramID))

	log.Printf("Generating %s activity %q (prompt length %d)", req.Type, req.Title, len(finalPrompt))

	return mockPayload(req.Type, req.Title), nil
}

// programContext resolves the program's display text for the prompt. This is
// a secondary lookup; any miss or error degrades to a fixed fallback instead
// of failing generation.
func (s *MockService) programContext(programID string) string {
	var program models.Program
	if err := s.db.Select("name", "handle").Where("id = ?", programID).Take(&program).Error; err != nil {
		return "Unknown program"
	}
	return fmt.Sprintf("%s (%s)", program.Name, program.Handle)
}

// buildPrompt substitutes each placeholder exactly once, in order
func buildPrompt(tmpl string, req Request, programContext string) string {
	prompt := tmpl
	prompt = strings.Replace(prompt, "{title}", req.Title, 1)
	prompt = strings.Replace(prompt, "{description}", req.Description, 1)
	prompt = strings.Replace(prompt, "{prompt}", req.Prompt, 1)
	prompt = strings.Replace(prompt, "{program_context}", programContext, 1)
	return prompt
}

// mockPayload returns illustrative content per activity type. A real
// deployment replaces this step with the provider call and keeps the shapes.
func mockPayload(activityType, title string) interface{} {
	switch activityType {
	case models.ActivityTypeQuiz:
		return &QuizPayload{
			Questions: []QuizQuestion{
				{
					ID:          "q1",
					Question:    fmt.Sprintf("What is the main topic of %q?", title),
					Options:     []string{"Option A", "Option B", "Option C", "Option D"},
					Correct:     0,
					Explanation: "This is the correct answer based on the activity requirements.",
				},
				{
					ID:          "q2",
					Question:    "Which of the following is most important?",
					Options:     []string{"Quality", "Price", "Brand", "Features"},
					Correct:     0,
					Explanation: "Quality is typically the most important factor for customer satisfaction.",
				},
				{
					ID:          "q3",
					Question:    "How would you rate your knowledge on this topic?",
					Options:     []string{"Beginner", "Intermediate", "Advanced", "Expert"},
					Correct:     1,
					Explanation: "Most users fall into the intermediate category after learning basics.",
				},
			},
			PassingScore: 2,
			TimeLimit:    300,
		}

	case models.ActivityTypeSurvey:
		return &SurveyPayload{
			Questions: []SurveyQuestion{
				{
					ID:       "q1",
					Question: fmt.Sprintf("How satisfied are you with %s?", title),
					Type:     "rating",
					Scale:    5,
					Required: true,
				},
				{
					ID:       "q2",
					Question: "What is your primary use case?",
					Type:     "multiple_choice",
					Options:  []string{"Personal use", "Business use", "Educational", "Other"},
					Required: true,
				},
				{
					ID:       "q3",
					Question: "Any additional feedback?",
					Type:     "text",
					Required: false,
				},
			},
		}

	case models.ActivityTypeGame:
		return &GamePayload{
			GameType: "trivia",
			Rules:    "Answer questions correctly to earn points. You have 30 seconds per question.",
			Questions: []GameQuestion{
				{
					ID:       "q1",
					Question: "Quick trivia question about the topic",
					Options:  []string{"Answer A", "Answer B", "Answer C", "Answer D"},
					Correct:  0,
					Points:   10,
				},
			},
			TimePerQuestion: 30,
			MaxAttempts:     3,
		}

	case models.ActivityTypeDemo:
		return &DemoPayload{
			Steps: []DemoStep{
				{
					ID:      "step1",
					Title:   "Introduction",
					Content: fmt.Sprintf("Welcome to the %s demonstration. Let's explore the key features.", title),
					Media:   nil,
					Action:  "Click to continue",
				},
				{
					ID:      "step2",
					Title:   "Main Feature",
					Content: "This is the main feature you'll be using most often.",
					Media:   nil,
					Action:  "Try it out",
				},
				{
					ID:      "step3",
					Title:   "Completion",
					Content: "Congratulations! You've completed the demo.",
					Media:   nil,
					Action:  "Finish",
				},
			},
			CompletionCriteria: "Complete all steps in the demonstration",
			EstimatedDuration:  5,
		}
	}

	return nil
}
