package memory

import (
	"context"
	"testing"
	"time"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCampaignRepositoryFindAllOrdersByCreatedAt(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	base := time.Now()

	// Inserted out of creation order on purpose.
	require.NoError(t, repo.Create(ctx, &models.Campaign{Name: "middle", CreatedAt: base.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.Campaign{Name: "oldest", CreatedAt: base.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.Campaign{Name: "newest", CreatedAt: base}))

	campaigns, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "newest", campaigns[0].Name)
	assert.Equal(t, "middle", campaigns[1].Name)
	assert.Equal(t, "oldest", campaigns[2].Name)
}

func TestCampaignRepositoryIsolatesStoredRecords(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	campaign := &models.Campaign{
		Name:  "original",
		Rules: []models.SegmentRule{{ID: "rule-1", Field: "city", Operator: "eq", Value: "Mumbai"}},
	}
	require.NoError(t, repo.Create(ctx, campaign))

	// Mutating the caller's copy must not leak into the store.
	campaign.Name = "mutated"
	campaign.Rules[0].Value = "Pune"

	stored, err := repo.FindByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Name)
	assert.Equal(t, "Mumbai", stored.Rules[0].Value)
}

func TestCampaignRepositoryNotFound(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	id := primitive.NewObjectID()

	_, err := repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, &models.Campaign{ID: id}), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), apperrors.ErrNotFound)
}

func TestCampaignRepositoryCount(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, &models.Campaign{Name: "one"}))
	require.NoError(t, repo.Create(ctx, &models.Campaign{Name: "two"}))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
