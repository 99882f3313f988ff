package generation

import "arc/models"

// activityPrompts maps an activity type to its prompt template. The
// placeholders {title}, {description}, {prompt} and {program_context} are
// each substituted exactly once when a prompt is finalized. CUSTOM has no
// template; generation for it is unsupported.
var activityPrompts = map[string]string{
	models.ActivityTypeQuiz: `You are an expert at creating engaging quiz questions. Create a quiz based on the following requirements.

Requirements:
- Title: {title}
- Description: {description}
- Instructions: {prompt}
- Program Context: {program_context}

Return a JSON object with this exact structure:
{
  "questions": [
    {
      "id": "q1",
      "question": "Question text here",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct": 0,
      "explanation": "Brief explanation of the correct answer"
    }
  ],
  "passingScore": 3,
  "timeLimit": 300
}

Guidelines:
- Create 3-7 questions unless specified otherwise
- Make questions clear and specific
- Ensure options are plausible but only one is clearly correct
- Include brief explanations for learning
- Set appropriate passing score (usually 60-70% of total)
- Set reasonable time limit in seconds`,

	models.ActivityTypeSurvey: `You are an expert at creating user surveys. Create a survey based on the following requirements.

Requirements:
- Title: {title}
- Description: {description}
- Instructions: {prompt}
- Program Context: {program_context}

Return a JSON object with this exact structure:
{
  "questions": [
    {
      "id": "q1",
      "question": "Question text here",
      "type": "multiple_choice",
      "options": ["Option 1", "Option 2", "Option 3"],
      "required": true
    },
    {
      "id": "q2",
      "question": "Question text here",
      "type": "rating",
      "scale": 5,
      "required": true
    },
    {
      "id": "q3",
      "question": "Question text here",
      "type": "text",
      "required": false
    }
  ]
}

Guidelines:
- Create 3-8 questions unless specified otherwise
- Mix question types: multiple_choice, rating, text, yes_no
- Make questions clear and actionable
- Mark important questions as required
- Use 1-5 or 1-10 rating scales
- Include open-ended questions for detailed feedback`,

	models.ActivityTypeGame: `You are an expert game designer. Create an interactive game based on the following requirements.

Requirements:
- Title: {title}
- Description: {description}
- Instructions: {prompt}
- Program Context: {program_context}

Return a JSON object with this exact structure:
{
  "gameType": "trivia",
  "rules": "Game rules and instructions",
  "questions": [
    {
      "id": "q1",
      "question": "Question text",
      "options": ["A", "B", "C", "D"],
      "correct": 0,
      "points": 10
    }
  ],
  "timePerQuestion": 30,
  "maxAttempts": 3
}

Guidelines:
- Choose appropriate game type (trivia, memory, word, matching)
- Create engaging questions with point values
- Set reasonable time limits
- Include clear rules and instructions
- Make it fun but educational`,

	models.ActivityTypeDemo: `You are an expert at creating product demonstrations. Create an interactive demo based on the following requirements.

Requirements:
- Title: {title}
- Description: {description}
- Instructions: {prompt}
- Program Context: {program_context}

Return a JSON object with this exact structure:
{
  "steps": [
    {
      "id": "step1",
      "title": "Step Title",
      "content": "Step description and instructions",
      "media": null,
      "action": "Click to continue"
    }
  ],
  "completionCriteria": "What defines completion",
  "estimatedDuration": 5
}

Guidelines:
- Create 3-8 clear steps
- Make each step actionable
- Include helpful descriptions
- Set realistic duration in minutes
- Focus on key features or benefits`,
}

// PromptTemplate returns the prompt template for an activity type
func PromptTemplate(activityType string) (string, bool) {
	tmpl, ok := activityPrompts[activityType]
	return tmpl, ok
}
