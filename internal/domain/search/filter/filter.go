// Package filter models the composed predicate applied to catalog queries:
// a conjunction of tag matches, inclusive numeric ranges, and case-insensitive
// substring clauses spanning one or more fields.
package filter

import "fmt"

// MaxConditions is the maximum number of conditions in one expression.
const MaxConditions = 16

// Expression is a predicate composed as the logical AND of its conditions.
// An empty expression matches the whole catalog.
type Expression struct {
	conditions []Condition
}

// NewExpression validates and creates an Expression.
func NewExpression(conditions ...Condition) (Expression, error) {
	if len(conditions) > MaxConditions {
		return Expression{}, fmt.Errorf("too many conditions (max %d)", MaxConditions)
	}
	return Expression{conditions: conditions}, nil
}

// Conditions returns the AND-composed conditions.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression imposes no constraint.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Condition is a single clause: a tag match, a numeric range, or a substring
// match over one or more text fields (itself an OR sub-clause).
type Condition struct {
	key       string
	keys      []string
	match     string
	term      string
	rangeExpr *Range
}

// NewMatch creates an exact tag match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, rangeExpr: &r}, nil
}

// NewContains creates a case-insensitive substring condition over the given
// text fields. Multiple fields form an OR sub-clause.
func NewContains(term string, keys ...string) (Condition, error) {
	if len(keys) == 0 {
		return Condition{}, fmt.Errorf("at least one field is required")
	}
	for _, k := range keys {
		if k == "" {
			return Condition{}, fmt.Errorf("filter key is required")
		}
	}
	if term == "" {
		return Condition{}, fmt.Errorf("search term is required")
	}
	return Condition{keys: keys, term: term}, nil
}

// Key returns the field name for match and range conditions.
func (c Condition) Key() string { return c.key }

// Keys returns the field names for substring conditions.
func (c Condition) Keys() []string { return c.keys }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Term returns the substring search term.
func (c Condition) Term() string { return c.term }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsMatch reports whether this is a tag match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsRange reports whether this is a numeric range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// IsContains reports whether this is a substring condition.
func (c Condition) IsContains() bool { return c.term != "" }

// Range is an inclusive numeric interval; nil boundaries are unbounded.
type Range struct {
	gte *float64
	lte *float64
}

// NewRangeFilter validates and creates a Range. At least one boundary is
// required, and gte must not exceed lte when both are present.
func NewRangeFilter(gte, lte *float64) (Range, error) {
	if gte == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	if gte != nil && lte != nil && *gte > *lte {
		return Range{}, fmt.Errorf("range lower bound exceeds upper bound")
	}
	return Range{gte: gte, lte: lte}, nil
}

// GTE returns the lower inclusive bound.
func (r Range) GTE() *float64 { return r.gte }

// LTE returns the upper inclusive bound.
func (r Range) LTE() *float64 { return r.lte }
