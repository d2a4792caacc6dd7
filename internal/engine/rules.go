package engine

import (
	"errors"
	"fmt"
	"strings"

	"model-forge/internal/schema"
)

// ErrUnknownStyle marks an unrecognized validation style name. It is
// raised before any derivation work happens.
var ErrUnknownStyle = errors.New("unknown validation style")

// Style selects the validation syntax family emitted into models.
type Style int

const (
	// StyleCurrent emits keyword-form rules: validates :col, presence: true, ...
	StyleCurrent Style = iota
	// StyleLegacy emits macro-form rules: validates_presence_of :col, ...
	StyleLegacy
)

func (s Style) String() string {
	if s == StyleLegacy {
		return "legacy"
	}
	return "current"
}

// ParseStyle resolves a style name from config or flags. The empty
// string means current.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "current":
		return StyleCurrent, nil
	case "legacy":
		return StyleLegacy, nil
	default:
		return 0, fmt.Errorf("%w: %q (want legacy or current)", ErrUnknownStyle, name)
	}
}

type RuleKind int

const (
	RuleLength RuleKind = iota
	RulePresence
	RuleNumericality
	RuleTimeliness
)

// Rule is one style-neutral validation line. The deriver arranges rules
// per style; the renderers only turn a rule into syntax.
type Rule struct {
	Column string
	Kind   RuleKind

	// RuleLength
	Max        int  // 0 = no maximum (unbounded text)
	AllowBlank bool // legacy: skip the length check on blank values

	// RuleNumericality
	Upper       string
	Lower       string
	Scale       int
	OnlyInteger bool

	// RuleTimeliness
	DateOnly bool
	GemNote  bool // first temporal rule announces the gem dependency

	// current style only: inline presence / presence-guarded format
	Presence bool
	Guarded  bool
}

// DeriveRules turns column metadata into the ordered rule sequence for
// the given style.
//
// Legacy groups by rule macro: length rules, then one presence rule per
// required column, then numericality, then date/datetime. Current
// groups by column family (text, numeric, temporal) and folds presence
// into each rule instead.
//
// Columns of an unrecognized family and auto-increment columns produce
// nothing. A numeric column with an unusable precision/scale pair stops
// the whole derivation.
func DeriveRules(columns []*schema.Column, style Style) ([]Rule, error) {
	switch style {
	case StyleLegacy:
		return deriveLegacy(columns)
	case StyleCurrent:
		return deriveCurrent(columns)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(style))
	}
}

func deriveLegacy(columns []*schema.Column) ([]Rule, error) {
	var rules []Rule

	// 1. Length checks for bounded text
	for _, c := range eligible(columns, schema.FamilyText) {
		if c.Length <= 0 {
			continue
		}
		rules = append(rules, Rule{
			Column:     c.Name,
			Kind:       RuleLength,
			Max:        c.Length,
			AllowBlank: c.IsNullable,
		})
	}

	// 2. Standalone presence checks for every required column
	for _, c := range columns {
		if Skip(c) || c.IsNullable {
			continue
		}
		rules = append(rules, Rule{Column: c.Name, Kind: RulePresence})
	}

	// 3. Numericality
	numeric, err := numericRules(columns, false)
	if err != nil {
		return nil, err
	}
	rules = append(rules, numeric...)

	// 4. Date / datetime
	rules = append(rules, temporalRules(columns, false)...)

	return rules, nil
}

func deriveCurrent(columns []*schema.Column) ([]Rule, error) {
	var rules []Rule

	// 1. Text: one combined rule per column. Required columns get an
	// inline presence option; optional ones guard the format check
	// behind the presence predicate instead.
	for _, c := range eligible(columns, schema.FamilyText) {
		rules = append(rules, Rule{
			Column:   c.Name,
			Kind:     RuleLength,
			Max:      c.Length,
			Presence: !c.IsNullable,
			Guarded:  c.IsNullable,
		})
	}

	// 2. Numeric
	numeric, err := numericRules(columns, true)
	if err != nil {
		return nil, err
	}
	rules = append(rules, numeric...)

	// 3. Temporal
	rules = append(rules, temporalRules(columns, true)...)

	return rules, nil
}

func numericRules(columns []*schema.Column, inlinePresence bool) ([]Rule, error) {
	var rules []Rule
	for _, c := range eligible(columns, schema.FamilyNumeric) {
		b, err := ComputeBound(c.Precision, c.Scale)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		rules = append(rules, Rule{
			Column:      c.Name,
			Kind:        RuleNumericality,
			Upper:       b.Upper,
			Lower:       b.Lower,
			Scale:       c.Scale,
			OnlyInteger: b.OnlyInteger,
			Presence:    inlinePresence && !c.IsNullable,
		})
	}
	return rules, nil
}

func temporalRules(columns []*schema.Column, inlinePresence bool) []Rule {
	var rules []Rule
	for _, c := range eligible(columns, schema.FamilyTemporal) {
		rules = append(rules, Rule{
			Column:   c.Name,
			Kind:     RuleTimeliness,
			DateOnly: c.DateOnly(),
			GemNote:  len(rules) == 0,
			Presence: inlinePresence && !c.IsNullable,
		})
	}
	return rules
}

// eligible filters to derivable columns of one family, in schema order.
func eligible(columns []*schema.Column, f schema.Family) []*schema.Column {
	var out []*schema.Column
	for _, c := range columns {
		if Skip(c) || c.Family() != f {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Skip reports columns no rule covers: auto-increment keys are
// database-assigned, unrecognized families have no derivable check.
func Skip(c *schema.Column) bool {
	return c.IsAutoInc || c.Family() == schema.FamilyOther
}
