package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"church_giving/internal/domain/entities"
	"church_giving/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCampaignAlreadyExists = errors.New("an active campaign with this name already exists")
	ErrInvalidCampaignID     = errors.New("invalid campaign id")
	ErrInvalidCampaignName   = errors.New("invalid campaign name")
	ErrInvalidCampaignGoal   = errors.New("invalid campaign goal amount")
)

// ICampaignUseCase manages the giving campaigns offered on the giving page.
//
// Campaigns are informational: a contribution names its campaign as free
// text and initiation never checks it against this store.
type ICampaignUseCase interface {
	Create(ctx context.Context, name, description string, goalAmount float64) (entities.Campaign, error)
	Close(ctx context.Context, id string) (entities.Campaign, error)
	Reopen(ctx context.Context, id string) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	ListActive(ctx context.Context) ([]entities.Campaign, error)
}

type CampaignUseCase struct {
	repo interfaces.ICampaignRepository
}

var _ ICampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo interfaces.ICampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

func (u *CampaignUseCase) Create(ctx context.Context, name, description string, goalAmount float64) (entities.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Campaign{}, ErrInvalidCampaignName
	}
	if goalAmount <= 0 {
		return entities.Campaign{}, ErrInvalidCampaignGoal
	}

	// Names are what givers type; keep them unique among active campaigns.
	if err := u.ensureNameFree(ctx, name, ""); err != nil {
		return entities.Campaign{}, err
	}

	now := time.Now().UTC()
	c := entities.Campaign{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		GoalAmount:  goalAmount,
		Status:      entities.CampaignStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CampaignUseCase) Close(ctx context.Context, id string) (entities.Campaign, error) {
	return u.updateStatusByID(ctx, id, entities.CampaignStatusClosed)
}

func (u *CampaignUseCase) Reopen(ctx context.Context, id string) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if current.Status == entities.CampaignStatusActive {
		return current, nil
	}
	if err := u.ensureNameFree(ctx, current.Name, current.ID); err != nil {
		return entities.Campaign{}, err
	}
	return u.updateStatusByID(ctx, id, entities.CampaignStatusActive)
}

func (u *CampaignUseCase) updateStatusByID(ctx context.Context, id string, status entities.CampaignStatus) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Campaign{}, err
	}
	if updated.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return updated, nil
}

func (u *CampaignUseCase) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if c.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) ListActive(ctx context.Context) ([]entities.Campaign, error) {
	return u.repo.ListByStatus(ctx, entities.CampaignStatusActive)
}

func (u *CampaignUseCase) ensureNameFree(ctx context.Context, name, exceptID string) error {
	active, err := u.repo.ListByStatus(ctx, entities.CampaignStatusActive)
	if err != nil {
		return err
	}
	for _, c := range active {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return ErrCampaignAlreadyExists
		}
	}
	return nil
}
