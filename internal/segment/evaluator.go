// Package segment evaluates campaign segment rules against customer records.
//
// Evaluation fails closed: an unknown field, an operator that does not apply
// to the field's type, or an unparseable numeric operand makes the rule false
// rather than raising an error, so a malformed rule can never silently match
// every customer.
package segment

import (
	"strconv"
	"strings"

	"github.com/engagecrm/engage-backend/internal/models"
)

// fieldKind distinguishes text attributes from numeric ones.
type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
)

type resolvedField struct {
	kind fieldKind
	str  string
	num  float64
}

// resolve looks up a rule field on a customer. The second return value is
// false when the attribute does not exist.
func resolve(c *models.Customer, field string) (resolvedField, bool) {
	switch field {
	case "name":
		return resolvedField{kind: kindString, str: c.Name}, true
	case "email":
		return resolvedField{kind: kindString, str: c.Email}, true
	case "phone":
		return resolvedField{kind: kindString, str: c.Phone}, true
	case "city":
		return resolvedField{kind: kindString, str: c.City}, true
	case "status":
		return resolvedField{kind: kindString, str: c.Status}, true
	case "totalSpend":
		return resolvedField{kind: kindNumber, num: c.TotalSpend}, true
	case "visits":
		return resolvedField{kind: kindNumber, num: float64(c.Visits)}, true
	}
	return resolvedField{}, false
}

// EvaluateRule applies a single rule to a customer.
func EvaluateRule(c *models.Customer, rule models.SegmentRule) bool {
	fv, ok := resolve(c, rule.Field)
	if !ok {
		return false
	}

	if fv.kind == kindNumber {
		operand, err := strconv.ParseFloat(strings.TrimSpace(rule.Value), 64)
		if err != nil {
			return false
		}
		switch rule.Operator {
		case models.OperatorEq:
			return fv.num == operand
		case models.OperatorNeq:
			return fv.num != operand
		case models.OperatorGt:
			return fv.num > operand
		case models.OperatorLt:
			return fv.num < operand
		case models.OperatorGte:
			return fv.num >= operand
		case models.OperatorLte:
			return fv.num <= operand
		}
		return false
	}

	// String comparisons are case-sensitive. Ordering operators have no
	// defined meaning for text attributes.
	switch rule.Operator {
	case models.OperatorEq:
		return fv.str == rule.Value
	case models.OperatorNeq:
		return fv.str != rule.Value
	case models.OperatorContains:
		return strings.Contains(fv.str, rule.Value)
	case models.OperatorStartsWith:
		return strings.HasPrefix(fv.str, rule.Value)
	case models.OperatorEndsWith:
		return strings.HasSuffix(fv.str, rule.Value)
	}
	return false
}

// Evaluate combines all rule results with the given combinator. With a single
// rule the combinator is a no-op. An empty rule list matches nothing.
func Evaluate(c *models.Customer, rules []models.SegmentRule, logic string) bool {
	if len(rules) == 0 {
		return false
	}
	if logic == models.RuleLogicOr {
		for _, rule := range rules {
			if EvaluateRule(c, rule) {
				return true
			}
		}
		return false
	}
	for _, rule := range rules {
		if !EvaluateRule(c, rule) {
			return false
		}
	}
	return true
}

// CountMatches returns the number of customers matching the segment. This is
// the definition of a campaign's audience size.
func CountMatches(customers []*models.Customer, rules []models.SegmentRule, logic string) int {
	count := 0
	for _, c := range customers {
		if Evaluate(c, rules, logic) {
			count++
		}
	}
	return count
}
