package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign statuses.
const (
	CampaignStatusDraft     = "Draft"
	CampaignStatusScheduled = "Scheduled"
	CampaignStatusSent      = "Sent"
	CampaignStatusFailed    = "Failed"
	CampaignStatusArchived  = "Archived"
	CampaignStatusCancelled = "Cancelled"
)

// Rule logic combinators applied across a campaign's rule list.
const (
	RuleLogicAnd = "AND"
	RuleLogicOr  = "OR"
)

// Segment rule operators.
const (
	OperatorEq         = "eq"
	OperatorNeq        = "neq"
	OperatorGt         = "gt"
	OperatorLt         = "lt"
	OperatorGte        = "gte"
	OperatorLte        = "lte"
	OperatorContains   = "contains"
	OperatorStartsWith = "startsWith"
	OperatorEndsWith   = "endsWith"
)

// Campaign represents a marketing campaign targeting a rule-defined segment
type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	SegmentName  string             `bson:"segmentName,omitempty" json:"segmentName,omitempty"`
	Rules        []SegmentRule      `bson:"rules" json:"rules"`
	RuleLogic    string             `bson:"ruleLogic" json:"ruleLogic"`
	Message      string             `bson:"message" json:"message"`
	Status       string             `bson:"status" json:"status"`
	AudienceSize int                `bson:"audienceSize" json:"audienceSize"`
	SentCount    int                `bson:"sentCount" json:"sentCount"`
	FailedCount  int                `bson:"failedCount" json:"failedCount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SegmentRule represents a single filter condition on a customer attribute
type SegmentRule struct {
	ID       string `bson:"id" json:"id"`
	Field    string `bson:"field" json:"field"`
	Operator string `bson:"operator" json:"operator"`
	Value    string `bson:"value" json:"value"`
}

// IsValidCampaignStatus checks if the campaign status is valid
func IsValidCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSent,
		CampaignStatusFailed, CampaignStatusArchived, CampaignStatusCancelled:
		return true
	}
	return false
}

// IsTerminalCampaignStatus checks if the status is one from which a campaign
// may never be reinstated to Draft.
func IsTerminalCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusSent, CampaignStatusArchived, CampaignStatusCancelled:
		return true
	}
	return false
}

// IsValidRuleLogic checks if the combinator is valid
func IsValidRuleLogic(logic string) bool {
	return logic == RuleLogicAnd || logic == RuleLogicOr
}

// IsValidRuleOperator checks if the segment rule operator is valid
func IsValidRuleOperator(op string) bool {
	switch op {
	case OperatorEq, OperatorNeq, OperatorGt, OperatorLt, OperatorGte,
		OperatorLte, OperatorContains, OperatorStartsWith, OperatorEndsWith:
		return true
	}
	return false
}
