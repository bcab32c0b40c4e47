// Package genai wraps the external text-generation service. Every call is a
// single request/response with no retries; callers surface failures to the
// user instead of crashing the request pipeline.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/engagecrm/engage-backend/internal/apperrors"
)

// PerformanceStats carries the campaign figures passed to SummarizePerformance.
type PerformanceStats struct {
	Name                  string  `json:"name"`
	AudienceSize          int     `json:"audienceSize"`
	MessagesSent          int     `json:"messagesSent"`
	MessagesDelivered     int     `json:"messagesDelivered"`
	HighSpendDeliveryRate float64 `json:"highSpendDeliveryRate"`
}

// Client represents a text-generation service client
type Client interface {
	SuggestMessages(ctx context.Context, objective string) ([]string, error)
	SummarizePerformance(ctx context.Context, stats PerformanceStats) (string, error)
	TranslateSegment(ctx context.Context, description string) (string, error)
	SuggestMarketingTips(ctx context.Context, count int) ([]string, error)
}

// HTTPClient talks to a hosted generation endpoint
type HTTPClient struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewHTTPClient creates a new HTTPClient
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	NumVariants int    `json:"numVariants,omitempty"`
}

type generateResponse struct {
	Candidates []string `json:"candidates"`
}

// generate performs a single prompt call and returns the candidate texts.
func (c *HTTPClient) generate(ctx context.Context, prompt string, numVariants int) ([]string, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt, NumVariants: numVariants})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrInvalidResponseShape, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidResponseShape, err)
	}
	if len(parsed.Candidates) == 0 {
		return nil, fmt.Errorf("%w: empty candidate list", apperrors.ErrInvalidResponseShape)
	}
	return parsed.Candidates, nil
}

// SuggestMessages returns 2-3 message variants for a campaign objective
func (c *HTTPClient) SuggestMessages(ctx context.Context, objective string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Write short marketing messages for this campaign objective: %q. "+
			"Each message may use the {firstName} placeholder.", objective)
	candidates, err := c.generate(ctx, prompt, 3)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates, nil
}

// SummarizePerformance returns a prose summary of campaign delivery figures
func (c *HTTPClient) SummarizePerformance(ctx context.Context, stats PerformanceStats) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize this campaign in two sentences for a marketing manager. "+
			"Campaign %q reached %d customers, %d messages sent, %d delivered, "+
			"high-spend delivery rate %.0f%%.",
		stats.Name, stats.AudienceSize, stats.MessagesSent, stats.MessagesDelivered,
		stats.HighSpendDeliveryRate*100)
	candidates, err := c.generate(ctx, prompt, 1)
	if err != nil {
		return "", err
	}
	return candidates[0], nil
}

// TranslateSegment converts a natural-language audience description into a
// logical rule expression. The output is free text; callers must parse it
// defensively because the model is not guaranteed to honor the format.
func (c *HTTPClient) TranslateSegment(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Convert this audience description into filter rules, one per line, "+
			"in the form: field operator value. Allowed fields: name, email, phone, "+
			"city, status, totalSpend, visits. Allowed operators: eq, neq, gt, lt, "+
			"gte, lte, contains, startsWith, endsWith. Description: %q", description)
	candidates, err := c.generate(ctx, prompt, 1)
	if err != nil {
		return "", err
	}
	return candidates[0], nil
}

// SuggestMarketingTips returns general marketing tips
func (c *HTTPClient) SuggestMarketingTips(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		count = 3
	}
	prompt := fmt.Sprintf("Give %d short, practical marketing tips for a small CRM team.", count)
	candidates, err := c.generate(ctx, prompt, count)
	if err != nil {
		return nil, err
	}
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates, nil
}

// MockClient returns canned responses for development and tests
type MockClient struct{}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{}
}

// SuggestMessages returns canned message variants
func (m *MockClient) SuggestMessages(ctx context.Context, objective string) ([]string, error) {
	return []string{
		fmt.Sprintf("Hi {firstName}, don't miss out: %s. Shop today and save 10%%!", objective),
		fmt.Sprintf("{firstName}, we picked something for you: %s.", objective),
	}, nil
}

// SummarizePerformance returns a canned summary
func (m *MockClient) SummarizePerformance(ctx context.Context, stats PerformanceStats) (string, error) {
	return fmt.Sprintf(
		"Campaign %q reached %d customers; %d of %d messages were delivered. "+
			"High spenders saw a %.0f%% delivery rate.",
		stats.Name, stats.AudienceSize, stats.MessagesDelivered, stats.MessagesSent,
		stats.HighSpendDeliveryRate*100), nil
}

// TranslateSegment returns a canned rule expression
func (m *MockClient) TranslateSegment(ctx context.Context, description string) (string, error) {
	return "totalSpend gt 5000\nvisits lt 3", nil
}

// SuggestMarketingTips returns canned tips
func (m *MockClient) SuggestMarketingTips(ctx context.Context, count int) ([]string, error) {
	tips := []string{
		"Segment inactive customers and win them back with a limited-time offer.",
		"Keep campaign messages under 160 characters for SMS delivery.",
		"A/B test two message variants before sending to the full segment.",
		"Follow up high-spend customers within a week of their last visit.",
	}
	if count > 0 && count < len(tips) {
		tips = tips[:count]
	}
	return tips, nil
}
