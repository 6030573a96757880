package interfaces

import (
	"context"

	"church_giving/internal/domain/entities"
)

// ICampaignRepository abstracts DynamoDB persistence for Campaign.
type ICampaignRepository interface {
	Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	ListByStatus(ctx context.Context, status entities.CampaignStatus) ([]entities.Campaign, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.CampaignStatus) (entities.Campaign, error)
}
