package activityController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"arc/database"
	"arc/models"
	activityValidator "arc/validators/activity"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Program{}, &models.Activity{}, &models.ProgramUsage{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/activities", ListActivities)
	app.Post("/activities", activityValidator.CreateActivity(), CreateActivity)
	app.Post("/activities/generate", activityValidator.GenerateActivity(), GenerateActivity)
	app.Get("/activities/:id", GetActivity)
	app.Get("/programs/:id/activities", ListProgramActivities)

	return app, db
}

func createTestProgram(t *testing.T, db *gorm.DB, handle string) models.Program {
	t.Helper()

	program := models.Program{
		Name:          "Demo Program",
		Handle:        handle,
		PerkProgramID: "pgm_demo",
		ApiKey:        "k",
	}
	require.NoError(t, db.Create(&program).Error)
	return program
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(respBody, &env))
	return resp, env
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(respBody, &env))
	return resp, env
}

func TestCreateActivityDefaults(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	resp, env := postJSON(t, app, "/activities", fiber.Map{
		"title":        "Welcome Quiz",
		"type":         models.ActivityTypeQuiz,
		"program_id":   program.ID.String(),
		"points_value": 50,
		"action_title": "Complete the welcome quiz",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	assert.Equal(t, "Activity created successfully", env.Message)

	var created models.Activity
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.ActivityStatusDraft, created.Status)
	assert.Nil(t, created.PublishedAt)
	assert.Equal(t, "welcome-quiz", created.Slug)
	assert.Equal(t, 1, created.CompletionLimit)
	assert.Equal(t, 50, created.PointsValue)
	assert.False(t, created.AiGenerated)
	assert.JSONEq(t, "{}", string(created.Config))

	// Joined program carries display fields only
	assert.Equal(t, "Demo Program", created.Program.Name)
	assert.Equal(t, "demo", created.Program.Handle)
}

func TestCreateActivityPublishedSetsTimestamp(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	before := time.Now().Add(-time.Second)
	_, env := postJSON(t, app, "/activities", fiber.Map{
		"title":        "Launch Survey",
		"type":         models.ActivityTypeSurvey,
		"program_id":   program.ID.String(),
		"points_value": 25,
		"action_title": "Complete the survey",
		"status":       models.ActivityStatusPublished,
	})
	require.True(t, env.Success)

	var created models.Activity
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.ActivityStatusPublished, created.Status)
	require.NotNil(t, created.PublishedAt)
	assert.True(t, created.PublishedAt.After(before))
}

func TestCreateActivityExplicitSlugAndLimit(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	_, env := postJSON(t, app, "/activities", fiber.Map{
		"title":            "Summer Game",
		"type":             models.ActivityTypeGame,
		"program_id":       program.ID.String(),
		"points_value":     10,
		"action_title":     "Play the game",
		"slug":             "summer-2026",
		"completion_limit": 3,
	})
	require.True(t, env.Success)

	var created models.Activity
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "summer-2026", created.Slug)
	assert.Equal(t, 3, created.CompletionLimit)
}

func TestCreateActivitySlugCollisionGetsSuffix(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	body := fiber.Map{
		"title":        "Welcome Quiz",
		"type":         models.ActivityTypeQuiz,
		"program_id":   program.ID.String(),
		"points_value": 50,
		"action_title": "Complete the welcome quiz",
	}

	_, env := postJSON(t, app, "/activities", body)
	require.True(t, env.Success)

	_, env = postJSON(t, app, "/activities", body)
	require.True(t, env.Success)

	var second models.Activity
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.NotEqual(t, "welcome-quiz", second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "welcome-quiz-"))
}

func TestCreateActivitySameSlugDifferentPrograms(t *testing.T) {
	app, db := setupTestApp(t)
	first := createTestProgram(t, db, "first")
	second := createTestProgram(t, db, "second")

	for _, program := range []models.Program{first, second} {
		_, env := postJSON(t, app, "/activities", fiber.Map{
			"title":        "Welcome Quiz",
			"type":         models.ActivityTypeQuiz,
			"program_id":   program.ID.String(),
			"points_value": 50,
			"action_title": "Complete the welcome quiz",
		})
		require.True(t, env.Success)

		var created models.Activity
		require.NoError(t, json.Unmarshal(env.Data, &created))
		// Slug uniqueness is scoped per program, so both keep the clean slug
		assert.Equal(t, "welcome-quiz", created.Slug)
	}
}

func TestCreateActivityMissingFields(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing title", fiber.Map{"type": "QUIZ", "program_id": program.ID.String(), "points_value": 1, "action_title": "a"}},
		{"missing type", fiber.Map{"title": "T", "program_id": program.ID.String(), "points_value": 1, "action_title": "a"}},
		{"missing program_id", fiber.Map{"title": "T", "type": "QUIZ", "points_value": 1, "action_title": "a"}},
		{"missing points_value", fiber.Map{"title": "T", "type": "QUIZ", "program_id": program.ID.String(), "action_title": "a"}},
		{"missing action_title", fiber.Map{"title": "T", "type": "QUIZ", "program_id": program.ID.String(), "points_value": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := postJSON(t, app, "/activities", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, env.Success)
		})
	}
}

func TestCreateActivityZeroPointsAllowed(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	resp, env := postJSON(t, app, "/activities", fiber.Map{
		"title":        "Free Demo",
		"type":         models.ActivityTypeDemo,
		"program_id":   program.ID.String(),
		"points_value": 0,
		"action_title": "Watch the demo",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestListActivitiesNewestFirstWithProgram(t *testing.T) {
	app, db := setupTestApp(t)
	program := createTestProgram(t, db, "demo")

	older := models.Activity{
		ProgramID: program.ID, Type: models.ActivityTypeQuiz, Slug: "older",
		Title: "Older", PointsValue: 1, ActionTitle: "a", CompletionLimit: 1,
	}
	require.NoError(t, db.Create(&older).Error)
	newer := models.Activity{
		ProgramID: program.ID, Type: models.ActivityTypeDemo, Slug: "newer",
		Title: "Newer", PointsValue: 1, ActionTitle: "a", CompletionLimit: 1,
	}
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Model(&older).Update("created_at", older.CreatedAt.Add(-time.Minute)).Error)

	resp, env := getJSON(t, app, "/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities []models.Activity
	require.NoError(t, json.Unmarshal(env.Data, &activities))
	require.Len(t, activities, 2)
	assert.Equal(t, "newer", activities[0].Slug)
	assert.Equal(t, "demo", activities[0].Program.Handle)
	assert.Equal(t, "Demo Program", activities[0].Program.Name)
}

func TestGetActivityNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, env := getJSON(t, app, "/activities/3b241101-e2bb-4255-8caf-4136c566a962")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestGenerateActivityUnknownProgramStillSucceeds(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, env := postJSON(t, app, "/activities/generate", fiber.Map{
		"type":       models.ActivityTypeQuiz,
		"title":      "T",
		"prompt":     "p",
		"program_id": "missing-id",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	assert.Equal(t, "Activity generated successfully", env.Message)

	var payload struct {
		Questions    []json.RawMessage `json:"questions"`
		PassingScore int               `json:"passingScore"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Len(t, payload.Questions, 3)
	assert.Equal(t, 2, payload.PassingScore)
}

func TestGenerateActivityUnsupportedType(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, env := postJSON(t, app, "/activities/generate", fiber.Map{
		"type":       models.ActivityTypeCustom,
		"title":      "T",
		"prompt":     "p",
		"program_id": "missing-id",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid activity type", env.Error)
}

func TestGenerateActivityMissingFields(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, env := postJSON(t, app, "/activities/generate", fiber.Map{
		"type":  models.ActivityTypeQuiz,
		"title": "T",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Missing required fields", env.Error)
}

func TestListProgramActivities(t *testing.T) {
	app, db := setupTestApp(t)
	mine := createTestProgram(t, db, "mine")
	other := createTestProgram(t, db, "other")

	require.NoError(t, db.Create(&models.Activity{
		ProgramID: mine.ID, Type: models.ActivityTypeQuiz, Slug: "quiz",
		Title: "Quiz", PointsValue: 1, ActionTitle: "a", CompletionLimit: 1,
	}).Error)
	require.NoError(t, db.Create(&models.Activity{
		ProgramID: other.ID, Type: models.ActivityTypeQuiz, Slug: "quiz",
		Title: "Quiz", PointsValue: 1, ActionTitle: "a", CompletionLimit: 1,
	}).Error)

	resp, env := getJSON(t, app, "/programs/"+mine.ID.String()+"/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities []models.Activity
	require.NoError(t, json.Unmarshal(env.Data, &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, mine.ID, activities[0].ProgramID)
}
