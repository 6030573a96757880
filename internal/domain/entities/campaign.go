package entities

import "time"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusClosed CampaignStatus = "closed"
)

// Campaign is a giving drive shown on the giving page (building fund,
// missions trip, ...). Contributions reference it by name through
// PaymentRecord.CampaignName.
//
// Storage model (DynamoDB):
//   - PK: id
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	GoalAmount  float64        `json:"goal_amount"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
