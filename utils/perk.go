package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"arc/config"
)

// PerkClient talks to the external Perk rewards-ledger API using one
// program's stored credentials. The CRUD core only stores the credentials;
// this client is the boundary a full deployment awards points through.
type PerkClient struct {
	client    *resty.Client
	programID string
}

// PerkParticipant is a participant record in the rewards ledger
type PerkParticipant struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	PointsBalance int    `json:"points_balance"`
	Tier          string `json:"tier,omitempty"`
}

// PerkPointsRequest awards points for a completed activity action
type PerkPointsRequest struct {
	ParticipantID         string `json:"participant_id"`
	Points                int    `json:"points"`
	ActionTitle           string `json:"action_title"`
	ActionSource          string `json:"action_source"`
	ActionCompletionLimit int    `json:"action_completion_limit,omitempty"`
}

// NewPerkClient builds a client for one program's credentials
func NewPerkClient(perkProgramID, apiKey string) *PerkClient {
	client := resty.New().
		SetBaseURL(config.AppConfig.PerkApiURL).
		SetTimeout(time.Duration(config.AppConfig.PerkApiTimeout) * time.Second).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")

	return &PerkClient{client: client, programID: perkProgramID}
}

// Ping checks that the stored credentials can reach the program record
func (p *PerkClient) Ping() error {
	resp, err := p.client.R().Get("/programs/" + p.programID)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("perk API returned status %d", resp.StatusCode())
	}
	return nil
}

// GetParticipant fetches a participant from the rewards ledger
func (p *PerkClient) GetParticipant(participantID string) (*PerkParticipant, error) {
	resp, err := p.client.R().
		Get(fmt.Sprintf("/programs/%s/participants/%s", p.programID, participantID))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("perk API returned status %d", resp.StatusCode())
	}

	var participant PerkParticipant
	if err := json.Unmarshal(resp.Body(), &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

// AwardPoints credits points to a participant for an activity completion
func (p *PerkClient) AwardPoints(req PerkPointsRequest) error {
	resp, err := p.client.R().
		SetBody(req).
		Post(fmt.Sprintf("/programs/%s/points", p.programID))
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return fmt.Errorf("perk API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
