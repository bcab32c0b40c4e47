package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/pkg/genai"
	"go.uber.org/zap"
)

// TranslatedSegment is the parsed result of a natural-language segment
// description.
type TranslatedSegment struct {
	Rules     []models.SegmentRule `json:"rules"`
	RuleLogic string               `json:"ruleLogic"`
	RawText   string               `json:"rawText"`
}

// AIService wraps the generative text gateway and adds the defensive parsing
// the raw model output needs before it can feed the campaign engine.
type AIService struct {
	client genai.Client
	log    *zap.Logger
}

// NewAIService creates a new AIService
func NewAIService(client genai.Client, log *zap.Logger) *AIService {
	return &AIService{client: client, log: log}
}

// SuggestMessages returns message variants for a campaign objective
func (s *AIService) SuggestMessages(ctx context.Context, objective string) ([]string, error) {
	if objective == "" {
		return nil, apperrors.NewValidationError("objective", "objective is required")
	}
	return s.client.SuggestMessages(ctx, objective)
}

// SummarizePerformance returns a prose summary of campaign figures
func (s *AIService) SummarizePerformance(ctx context.Context, stats genai.PerformanceStats) (string, error) {
	if stats.Name == "" {
		return "", apperrors.NewValidationError("name", "campaign name is required")
	}
	return s.client.SummarizePerformance(ctx, stats)
}

// SuggestMarketingTips returns short marketing tips
func (s *AIService) SuggestMarketingTips(ctx context.Context, count int) ([]string, error) {
	return s.client.SuggestMarketingTips(ctx, count)
}

// ruleLine matches "field operator value" with either mnemonic or symbolic
// operators. The model output is free text, so leading bullets and numbering
// are stripped before matching.
var ruleLine = regexp.MustCompile(`^(\w+)\s+(eq|neq|gt|lt|gte|lte|contains|startsWith|endsWith|>=|<=|!=|=|==|>|<)\s+(.+)$`)

var symbolOperators = map[string]string{
	">":  models.OperatorGt,
	"<":  models.OperatorLt,
	">=": models.OperatorGte,
	"<=": models.OperatorLte,
	"=":  models.OperatorEq,
	"==": models.OperatorEq,
	"!=": models.OperatorNeq,
}

// TranslateSegment asks the model to express the description as filter
// rules, then parses the text tolerantly. When nothing in the response can
// be read as a rule the raw text is surfaced in the error so the failure is
// visible rather than silent.
func (s *AIService) TranslateSegment(ctx context.Context, description string) (*TranslatedSegment, error) {
	if description == "" {
		return nil, apperrors.NewValidationError("description", "description is required")
	}

	raw, err := s.client.TranslateSegment(ctx, description)
	if err != nil {
		return nil, err
	}

	rules, logic := parseRuleText(raw)
	if len(rules) == 0 {
		s.log.Warn("segment translation produced no parseable rules", zap.String("raw", raw))
		return nil, fmt.Errorf("%w: no rules could be parsed from %q",
			apperrors.ErrInvalidResponseShape, raw)
	}

	return &TranslatedSegment{Rules: rules, RuleLogic: logic, RawText: raw}, nil
}

// parseRuleText extracts rules line by line. Lines that do not match are
// skipped. The combinator defaults to AND; a standalone OR marker switches
// it.
func parseRuleText(raw string) ([]models.SegmentRule, string) {
	logic := models.RuleLogicAnd
	var rules []models.SegmentRule

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. \t")
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "OR") {
			logic = models.RuleLogicOr
			continue
		}

		match := ruleLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		operator := match[2]
		if mapped, ok := symbolOperators[operator]; ok {
			operator = mapped
		}
		if !models.IsValidRuleOperator(operator) {
			continue
		}
		value := strings.Trim(strings.TrimSpace(match[3]), `"'`)
		rules = append(rules, models.SegmentRule{
			ID:       fmt.Sprintf("rule-%d", len(rules)+1),
			Field:    match[1],
			Operator: operator,
			Value:    value,
		})
	}

	return rules, logic
}
