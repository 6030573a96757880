package response

import (
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase"
)

type CampaignResponse struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	GoalAmount  float64   `json:"goal_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCampaign(c entities.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID,
		CampaignID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
		GoalAmount:  c.GoalAmount,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCampaigns(items []entities.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCampaign(c))
	}
	return out
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromAuthToken(t usecase.AuthToken) LoginResponse {
	return LoginResponse{
		AccessToken: t.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   t.ExpiresAt,
	}
}
