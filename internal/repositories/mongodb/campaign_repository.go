package mongodb

import (
	"context"
	"errors"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure CampaignRepository implements the interface
var _ repositories.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository handles MongoDB operations for Campaign
type CampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{
		collection: db.Collection("campaigns"),
	}
}

// Create inserts a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, campaign)
	return err
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// FindAll retrieves all campaigns ordered by creation time, newest first.
// Ties on createdAt fall back to _id so the order is stable.
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}
	return campaigns, nil
}

// Update replaces an existing campaign document. Timestamps are owned by the
// service layer, not rewritten here.
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": campaign.ID}, campaign)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete deletes a campaign by ID
func (r *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count counts all campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
