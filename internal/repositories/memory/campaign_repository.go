// Package memory provides ephemeral in-memory implementations of the
// repository interfaces, used when the primary document store is not
// configured. Contents do not survive a process restart.
package memory

import (
	"context"
	"sync"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure CampaignRepository implements the interface
var _ repositories.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository keeps campaigns in process memory
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns []*models.Campaign
}

// NewCampaignRepository creates a new in-memory CampaignRepository
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: []*models.Campaign{}}
}

func cloneCampaign(c *models.Campaign) *models.Campaign {
	out := *c
	out.Rules = append([]models.SegmentRule(nil), c.Rules...)
	return &out
}

// Create stores a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	r.campaigns = append(r.campaigns, cloneCampaign(campaign))
	return nil
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if c.ID == id {
			return cloneCampaign(c), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindAll returns all campaigns ordered by creation time, newest first.
// Insertion order breaks ties, so the order is stable within one process.
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Campaign, 0, len(r.campaigns))
	for i := len(r.campaigns) - 1; i >= 0; i-- {
		out = append(out, cloneCampaign(r.campaigns[i]))
	}
	// Insertion already tracks createdAt, but an explicit sort keeps the
	// contract honest if callers ever backdate records.
	stableSortByCreatedAtDesc(out)
	return out, nil
}

func stableSortByCreatedAtDesc(campaigns []*models.Campaign) {
	// Insertion sort: the slice is near-sorted and stays stable.
	for i := 1; i < len(campaigns); i++ {
		for j := i; j > 0 && campaigns[j].CreatedAt.After(campaigns[j-1].CreatedAt); j-- {
			campaigns[j], campaigns[j-1] = campaigns[j-1], campaigns[j]
		}
	}
}

// Update replaces a stored campaign
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.campaigns {
		if c.ID == campaign.ID {
			r.campaigns[i] = cloneCampaign(campaign)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a campaign by ID
func (r *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.campaigns {
		if c.ID == id {
			r.campaigns = append(r.campaigns[:i], r.campaigns[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count counts all campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.campaigns)), nil
}
