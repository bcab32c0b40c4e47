package services

import (
	"context"
	"time"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"github.com/engagecrm/engage-backend/internal/segment"
	"github.com/engagecrm/engage-backend/pkg/delivery"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateCampaignRequest is the input to CreateCampaign. AudienceSize may be
// omitted, in which case the audience is computed by evaluating the rules
// against the customer collection. SentCount/FailedCount may be supplied to
// bypass the delivery simulation.
type CreateCampaignRequest struct {
	Name         string               `json:"name"`
	SegmentName  string               `json:"segmentName"`
	Rules        []models.SegmentRule `json:"rules"`
	RuleLogic    string               `json:"ruleLogic"`
	Message      string               `json:"message"`
	Status       string               `json:"status"`
	AudienceSize *int                 `json:"audienceSize"`
	SentCount    *int                 `json:"sentCount"`
	FailedCount  *int                 `json:"failedCount"`
}

// UpdateCampaignRequest carries a partial update. Nil fields keep their
// stored values.
type UpdateCampaignRequest struct {
	Name         *string              `json:"name"`
	SegmentName  *string              `json:"segmentName"`
	Rules        []models.SegmentRule `json:"rules"`
	RuleLogic    *string              `json:"ruleLogic"`
	Message      *string              `json:"message"`
	Status       *string              `json:"status"`
	AudienceSize *int                 `json:"audienceSize"`
	SentCount    *int                 `json:"sentCount"`
	FailedCount  *int                 `json:"failedCount"`
}

// CampaignService owns the campaign lifecycle: validation, the status state
// machine, and the derived send-metrics rule.
type CampaignService struct {
	campaignRepo repositories.CampaignRepository
	customerRepo repositories.CustomerRepository
	simulator    delivery.Simulator
	log          *zap.Logger
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	customerRepo repositories.CustomerRepository,
	simulator delivery.Simulator,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		simulator:    simulator,
		log:          log,
	}
}

// CreateCampaign validates the request, resolves the audience, applies the
// Sent-derivation rule when applicable, and persists the campaign.
func (s *CampaignService) CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*models.Campaign, error) {
	if req.Status == "" {
		req.Status = models.CampaignStatusDraft
	}

	ve := &apperrors.ValidationError{}
	if req.Name == "" {
		ve.Add("name", "name is required")
	}
	if req.Message == "" {
		ve.Add("message", "message is required")
	}
	if len(req.Rules) == 0 {
		ve.Add("rules", "at least one segment rule is required")
	}
	validateRules(ve, req.Rules)
	if !models.IsValidRuleLogic(req.RuleLogic) {
		ve.Add("ruleLogic", "ruleLogic must be AND or OR")
	}
	if !models.IsValidCampaignStatus(req.Status) {
		ve.Add("status", "unknown campaign status")
	}
	if req.AudienceSize != nil && *req.AudienceSize < 0 {
		ve.Add("audienceSize", "audienceSize must not be negative")
	}
	if req.SentCount != nil && *req.SentCount < 0 {
		ve.Add("sentCount", "sentCount must not be negative")
	}
	if req.FailedCount != nil && *req.FailedCount < 0 {
		ve.Add("failedCount", "failedCount must not be negative")
	}
	if !ve.Empty() {
		return nil, ve
	}

	audienceSize := 0
	if req.AudienceSize != nil {
		audienceSize = *req.AudienceSize
	} else {
		computed, err := s.computeAudience(ctx, req.Rules, req.RuleLogic)
		if err != nil {
			return nil, err
		}
		audienceSize = computed
	}

	now := time.Now()
	campaign := &models.Campaign{
		Name:         req.Name,
		SegmentName:  req.SegmentName,
		Rules:        req.Rules,
		RuleLogic:    req.RuleLogic,
		Message:      req.Message,
		Status:       req.Status,
		AudienceSize: audienceSize,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := applyCounts(campaign, req.SentCount, req.FailedCount, s.simulator, true); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		s.log.Error("failed to create campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (s *CampaignService) GetCampaign(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

// ListCampaigns returns all campaigns, newest first
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx)
}

// UpdateCampaign applies a partial update. Fields absent from the request
// keep their stored values; changed fields are re-validated against the same
// rules as creation. UpdatedAt is set unconditionally. The Sent-derivation
// rule fires only on a write whose effective status is Sent while the stored
// status was not, so an unrelated update never re-rolls the counts.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id primitive.ObjectID, req *UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &apperrors.ValidationError{}
	if req.Name != nil && *req.Name == "" {
		ve.Add("name", "name is required")
	}
	if req.Message != nil && *req.Message == "" {
		ve.Add("message", "message is required")
	}
	if req.Rules != nil && len(req.Rules) == 0 {
		ve.Add("rules", "at least one segment rule is required")
	}
	validateRules(ve, req.Rules)
	if req.RuleLogic != nil && !models.IsValidRuleLogic(*req.RuleLogic) {
		ve.Add("ruleLogic", "ruleLogic must be AND or OR")
	}
	if req.Status != nil {
		if !models.IsValidCampaignStatus(*req.Status) {
			ve.Add("status", "unknown campaign status")
		} else if *req.Status == models.CampaignStatusDraft &&
			campaign.Status != models.CampaignStatusDraft &&
			models.IsTerminalCampaignStatus(campaign.Status) {
			ve.Add("status", "campaign cannot return to Draft from "+campaign.Status)
		}
	}
	if req.AudienceSize != nil && *req.AudienceSize < 0 {
		ve.Add("audienceSize", "audienceSize must not be negative")
	}
	if req.SentCount != nil && *req.SentCount < 0 {
		ve.Add("sentCount", "sentCount must not be negative")
	}
	if req.FailedCount != nil && *req.FailedCount < 0 {
		ve.Add("failedCount", "failedCount must not be negative")
	}
	if !ve.Empty() {
		return nil, ve
	}

	wasSent := campaign.Status == models.CampaignStatusSent

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.SegmentName != nil {
		campaign.SegmentName = *req.SegmentName
	}
	if req.Rules != nil {
		campaign.Rules = req.Rules
	}
	if req.RuleLogic != nil {
		campaign.RuleLogic = *req.RuleLogic
	}
	if req.Message != nil {
		campaign.Message = *req.Message
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}
	if req.AudienceSize != nil {
		campaign.AudienceSize = *req.AudienceSize
	}

	if err := applyCounts(campaign, req.SentCount, req.FailedCount, s.simulator, !wasSent); err != nil {
		return nil, err
	}

	campaign.UpdatedAt = time.Now()

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		s.log.Error("failed to update campaign", zap.String("id", id.Hex()), zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// DeleteCampaign permanently removes a campaign
func (s *CampaignService) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	return s.campaignRepo.Delete(ctx, id)
}

// computeAudience evaluates the segment rules over the customer collection.
func (s *CampaignService) computeAudience(ctx context.Context, rules []models.SegmentRule, logic string) (int, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to load customers for audience computation", zap.Error(err))
		return 0, err
	}
	return segment.CountMatches(customers, rules, logic), nil
}

// applyCounts sets sentCount/failedCount on a write. Caller-supplied counts
// are trusted as-is once they satisfy sentCount + failedCount <= audienceSize.
// When both are absent and the write moves the campaign into Sent
// (enteringSent), the counts are derived through the simulator; a zero
// audience always derives to zero.
func applyCounts(campaign *models.Campaign, sentCount, failedCount *int, sim delivery.Simulator, enteringSent bool) error {
	if sentCount != nil {
		campaign.SentCount = *sentCount
	}
	if failedCount != nil {
		campaign.FailedCount = *failedCount
	}

	if sentCount == nil && failedCount == nil &&
		campaign.Status == models.CampaignStatusSent && enteringSent {
		if campaign.AudienceSize == 0 {
			campaign.SentCount = 0
			campaign.FailedCount = 0
		} else {
			campaign.SentCount, campaign.FailedCount = sim.Simulate(campaign.AudienceSize)
		}
	}

	if campaign.SentCount+campaign.FailedCount > campaign.AudienceSize {
		return apperrors.NewValidationError("sentCount",
			"sentCount + failedCount must not exceed audienceSize")
	}
	return nil
}

// validateRules checks each rule's operator and field presence.
func validateRules(ve *apperrors.ValidationError, rules []models.SegmentRule) {
	for _, rule := range rules {
		if rule.Field == "" {
			ve.Add("rules", "every rule needs a field")
			return
		}
		if !models.IsValidRuleOperator(rule.Operator) {
			ve.Add("rules", "unknown rule operator: "+rule.Operator)
			return
		}
	}
}
