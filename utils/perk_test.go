package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc/config"
)

func newPerkTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.AppConfig = &config.Config{
		PerkApiURL:     server.URL,
		PerkApiTimeout: 5,
	}
	return server
}

func TestPerkClientPing(t *testing.T) {
	var gotPath, gotAuth string
	newPerkTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})

	perk := NewPerkClient("pgm_1", "secret-key")
	require.NoError(t, perk.Ping())
	assert.Equal(t, "/programs/pgm_1", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
}

func TestPerkClientPingBadStatus(t *testing.T) {
	newPerkTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	perk := NewPerkClient("pgm_1", "wrong-key")
	err := perk.Ping()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPerkClientGetParticipant(t *testing.T) {
	newPerkTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/programs/pgm_1/participants/user-7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PerkParticipant{
			ID:            "user-7",
			Email:         "user@example.com",
			PointsBalance: 150,
		})
	})

	perk := NewPerkClient("pgm_1", "k")
	participant, err := perk.GetParticipant("user-7")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", participant.Email)
	assert.Equal(t, 150, participant.PointsBalance)
}

func TestPerkClientAwardPoints(t *testing.T) {
	var got PerkPointsRequest
	newPerkTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/programs/pgm_1/points", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	perk := NewPerkClient("pgm_1", "k")
	err := perk.AwardPoints(PerkPointsRequest{
		ParticipantID: "user-7",
		Points:        50,
		ActionTitle:   "Complete the welcome quiz",
		ActionSource:  "arc",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, got.Points)
	assert.Equal(t, "user-7", got.ParticipantID)
}
