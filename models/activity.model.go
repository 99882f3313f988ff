package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity types
const (
	ActivityTypeQuiz   = "QUIZ"
	ActivityTypeSurvey = "SURVEY"
	ActivityTypeGame   = "GAME"
	ActivityTypeDemo   = "DEMO"
	ActivityTypeCustom = "CUSTOM"
)

// Activity statuses
const (
	ActivityStatusDraft     = "DRAFT"
	ActivityStatusPublished = "PUBLISHED"
	ActivityStatusArchived  = "ARCHIVED"
)

// Activity is a single quiz/survey/game/demo instance belonging to a program
type Activity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_activities_program_slug" json:"program_id"`
	Program   Program   `gorm:"foreignKey:ProgramID" json:"program,omitempty"`

	Type string `gorm:"not null" json:"type"`
	// Slug is unique per program, not globally
	Slug        string  `gorm:"not null;uniqueIndex:idx_activities_program_slug" json:"slug"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description,omitempty"`

	Config  datatypes.JSON `gorm:"type:jsonb" json:"config"`
	Styling datatypes.JSON `gorm:"type:jsonb" json:"styling"`

	AiGenerated bool    `gorm:"default:false" json:"ai_generated"`
	AiPrompt    *string `json:"ai_prompt,omitempty"`

	Status      string     `gorm:"default:DRAFT" json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`

	PointsValue     int    `gorm:"not null" json:"points_value"`
	ActionTitle     string `gorm:"not null" json:"action_title"`
	CompletionLimit int    `gorm:"default:1" json:"completion_limit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
