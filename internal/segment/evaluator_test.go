package segment

import (
	"testing"

	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func testCustomer() *models.Customer {
	return &models.Customer{
		Name:       "Asha Patel",
		Email:      "asha@example.com",
		City:       "Mumbai",
		Status:     models.CustomerStatusActive,
		TotalSpend: 150,
		Visits:     4,
	}
}

func TestEvaluateRule(t *testing.T) {
	tests := []struct {
		name string
		rule models.SegmentRule
		want bool
	}{
		{"numeric gt match", models.SegmentRule{Field: "totalSpend", Operator: "gt", Value: "100"}, true},
		{"numeric gt no match", models.SegmentRule{Field: "totalSpend", Operator: "gt", Value: "200"}, false},
		{"numeric gte boundary", models.SegmentRule{Field: "totalSpend", Operator: "gte", Value: "150"}, true},
		{"numeric lt", models.SegmentRule{Field: "visits", Operator: "lt", Value: "5"}, true},
		{"numeric eq", models.SegmentRule{Field: "visits", Operator: "eq", Value: "4"}, true},
		{"numeric neq", models.SegmentRule{Field: "visits", Operator: "neq", Value: "4"}, false},
		{"unparseable numeric value fails closed", models.SegmentRule{Field: "totalSpend", Operator: "gt", Value: "sixty"}, false},
		{"string eq", models.SegmentRule{Field: "city", Operator: "eq", Value: "Mumbai"}, true},
		{"string eq is case sensitive", models.SegmentRule{Field: "city", Operator: "eq", Value: "mumbai"}, false},
		{"string neq", models.SegmentRule{Field: "city", Operator: "neq", Value: "Pune"}, true},
		{"string contains", models.SegmentRule{Field: "email", Operator: "contains", Value: "@example"}, true},
		{"string startsWith", models.SegmentRule{Field: "name", Operator: "startsWith", Value: "Asha"}, true},
		{"string endsWith", models.SegmentRule{Field: "email", Operator: "endsWith", Value: ".com"}, true},
		{"missing field fails closed", models.SegmentRule{Field: "loyaltyTier", Operator: "eq", Value: "gold"}, false},
		{"ordering operator on string field fails closed", models.SegmentRule{Field: "city", Operator: "gt", Value: "A"}, false},
		{"substring operator on numeric field fails closed", models.SegmentRule{Field: "totalSpend", Operator: "contains", Value: "15"}, false},
	}

	c := testCustomer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateRule(c, tt.rule))
		})
	}
}

func TestEvaluateCombinators(t *testing.T) {
	c := testCustomer()
	match := models.SegmentRule{Field: "city", Operator: "eq", Value: "Mumbai"}
	noMatch := models.SegmentRule{Field: "totalSpend", Operator: "gt", Value: "1000"}

	assert.True(t, Evaluate(c, []models.SegmentRule{match, match}, models.RuleLogicAnd))
	assert.False(t, Evaluate(c, []models.SegmentRule{match, noMatch}, models.RuleLogicAnd))
	assert.True(t, Evaluate(c, []models.SegmentRule{match, noMatch}, models.RuleLogicOr))
	assert.False(t, Evaluate(c, []models.SegmentRule{noMatch, noMatch}, models.RuleLogicOr))

	// Single rule: the combinator is a no-op
	assert.True(t, Evaluate(c, []models.SegmentRule{match}, models.RuleLogicAnd))
	assert.True(t, Evaluate(c, []models.SegmentRule{match}, models.RuleLogicOr))

	// No rules match nothing
	assert.False(t, Evaluate(c, nil, models.RuleLogicAnd))
}

func TestCountMatches(t *testing.T) {
	customers := []*models.Customer{
		{City: "Mumbai", TotalSpend: 50},
		{City: "Mumbai", TotalSpend: 500},
		{City: "Pune", TotalSpend: 500},
	}

	rules := []models.SegmentRule{{Field: "city", Operator: "eq", Value: "Mumbai"}}
	assert.Equal(t, 2, CountMatches(customers, rules, models.RuleLogicAnd))

	rules = []models.SegmentRule{
		{Field: "city", Operator: "eq", Value: "Mumbai"},
		{Field: "totalSpend", Operator: "gt", Value: "100"},
	}
	assert.Equal(t, 1, CountMatches(customers, rules, models.RuleLogicAnd))
	assert.Equal(t, 3, CountMatches(customers, rules, models.RuleLogicOr))
}
