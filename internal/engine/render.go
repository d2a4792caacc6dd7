package engine

import (
	"fmt"
	"strings"

	"model-forge/internal/schema"
)

// Pattern the format rule uses to insist on non-numeric text content.
const stringFormatPattern = `/\A[a-zA-Z\s]*\z/`

// Input describes one table for artifact generation.
type Input struct {
	ClassName  string
	TableName  string
	PrimaryKey schema.PrimaryKey
	Relations  []string // referenced table names, schema order
	Columns    []*schema.Column
}

// Generator renders the model and spec artifacts for one table. All
// derivation happens in New, so a bad input fails before any artifact
// text exists. A Generator is immutable after construction; rendering
// the same one twice gives byte-identical output.
type Generator struct {
	in        Input
	style     Style
	rules     []Rule
	relations []string
	renderer  styleRenderer
}

func New(in Input, style Style) (*Generator, error) {
	if in.TableName == "" {
		return nil, fmt.Errorf("table name is required")
	}
	if in.ClassName == "" {
		in.ClassName = schema.ClassName(in.TableName)
	}

	rules, err := DeriveRules(in.Columns, style)
	if err != nil {
		return nil, fmt.Errorf("derive rules for %s: %w", in.TableName, err)
	}

	return &Generator{
		in:        in,
		style:     style,
		rules:     rules,
		relations: dedupRelations(in.Relations),
		renderer:  rendererFor(style),
	}, nil
}

func (g *Generator) Rules() []Rule { return g.rules }

// Model renders the class source: header comment, table and key
// declarations, belongs_to lines, then the validation rules with a
// blank line between rule groups.
func (g *Generator) Model() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", headerComment(g.in.TableName))
	fmt.Fprintf(&b, "class %s < ActiveRecord::Base\n", g.in.ClassName)

	var blocks [][]string

	head := []string{fmt.Sprintf("  self.table_name = '%s'", g.in.TableName)}
	head = append(head, g.keyLines()...)
	blocks = append(blocks, head)

	if len(g.relations) > 0 {
		var rel []string
		for _, r := range g.relations {
			rel = append(rel, "  belongs_to :"+r)
		}
		blocks = append(blocks, rel)
	}

	blocks = append(blocks, g.ruleBlocks()...)

	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range block {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("end\n")
	return b.String()
}

func (g *Generator) keyLines() []string {
	switch k := g.in.PrimaryKey.(type) {
	case schema.SingleKey:
		return []string{fmt.Sprintf("  self.primary_key = :%s", k.Name)}
	case schema.CompositeKey:
		return []string{
			"  # Requires the composite_primary_keys gem.",
			"  self.primary_keys = :" + strings.Join(k.Names, ", :"),
		}
	}
	// no primary key: nothing to declare
	return nil
}

func (g *Generator) ruleBlocks() [][]string {
	var blocks [][]string
	var cur []string
	var curKind RuleKind
	for _, r := range g.rules {
		if len(cur) > 0 && r.Kind != curKind {
			blocks = append(blocks, cur)
			cur = nil
		}
		curKind = r.Kind
		if r.GemNote {
			cur = append(cur, "  # Requires the validates_timeliness gem.")
		}
		cur = append(cur, "  "+g.renderer.Rule(r))
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// dedupRelations lower-cases referenced table names and drops repeats
// case-insensitively, keeping first-seen order.
func dedupRelations(refs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range refs {
		lower := strings.ToLower(strings.TrimSpace(r))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, lower)
	}
	return out
}

func headerComment(table string) string {
	return fmt.Sprintf("Auto-generated by model-forge from the '%s' table. Edits will be overwritten.", table)
}

// rubyNumber turns a digit-string bound into a valid Ruby numeric
// literal: ".99" -> "0.99", "-.99" -> "-0.99".
func rubyNumber(s string) string {
	if strings.HasPrefix(s, ".") {
		return "0" + s
	}
	if strings.HasPrefix(s, "-.") {
		return "-0" + s[1:]
	}
	return s
}

// rubyString quotes a literal for Ruby source, switching to double
// quotes when the text itself carries an apostrophe.
func rubyString(s string) string {
	if strings.Contains(s, "'") {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}

// ---------------------------------------------------------------------
// Style renderers
// ---------------------------------------------------------------------

// styleRenderer turns one rule into one model source line.
type styleRenderer interface {
	Rule(r Rule) string
}

func rendererFor(style Style) styleRenderer {
	if style == StyleLegacy {
		return &legacyRenderer{}
	}
	return &currentRenderer{}
}

// Ensure interface implementation
var _ styleRenderer = (*currentRenderer)(nil)
var _ styleRenderer = (*legacyRenderer)(nil)

// currentRenderer emits keyword-form validates lines.
type currentRenderer struct{}

func (cr *currentRenderer) Rule(r Rule) string {
	switch r.Kind {
	case RuleLength:
		var opts []string
		if r.Presence {
			opts = append(opts, "presence: true")
		}
		if r.Max > 0 {
			opts = append(opts, fmt.Sprintf("length: { maximum: %d }", r.Max))
		}
		format := fmt.Sprintf("with: %s, message: %s", stringFormatPattern, rubyString(msgNotString))
		if r.Guarded {
			format += fmt.Sprintf(", if: :%s?", r.Column)
		}
		opts = append(opts, fmt.Sprintf("format: { %s }", format))
		return fmt.Sprintf("validates :%s, %s", r.Column, strings.Join(opts, ", "))

	case RulePresence:
		return fmt.Sprintf("validates :%s, presence: true", r.Column)

	case RuleNumericality:
		var inner []string
		if r.OnlyInteger {
			inner = append(inner, "only_integer: true")
		}
		inner = append(inner, "less_than_or_equal_to: "+rubyNumber(r.Upper))
		inner = append(inner, "greater_than_or_equal_to: "+rubyNumber(r.Lower))
		prefix := ""
		if r.Presence {
			prefix = "presence: true, "
		}
		return fmt.Sprintf("validates :%s, %snumericality: { %s }", r.Column, prefix, strings.Join(inner, ", "))

	case RuleTimeliness:
		kind := "datetime"
		if r.DateOnly {
			kind = "date"
		}
		prefix := ""
		if r.Presence {
			prefix = "presence: true, "
		}
		return fmt.Sprintf("validates :%s, %stimeliness: { type: :%s }", r.Column, prefix, kind)
	}
	return ""
}

// legacyRenderer emits macro-form validates_*_of lines.
type legacyRenderer struct{}

func (lr *legacyRenderer) Rule(r Rule) string {
	switch r.Kind {
	case RuleLength:
		line := fmt.Sprintf("validates_length_of :%s, :maximum => %d", r.Column, r.Max)
		if r.AllowBlank {
			line += ", :allow_blank => true"
		}
		return line

	case RulePresence:
		return "validates_presence_of :" + r.Column

	case RuleNumericality:
		var opts []string
		if r.OnlyInteger {
			opts = append(opts, ":only_integer => true")
		}
		opts = append(opts, ":less_than_or_equal_to => "+rubyNumber(r.Upper))
		opts = append(opts, ":greater_than_or_equal_to => "+rubyNumber(r.Lower))
		return fmt.Sprintf("validates_numericality_of :%s, %s", r.Column, strings.Join(opts, ", "))

	case RuleTimeliness:
		if r.DateOnly {
			return "validates_date :" + r.Column
		}
		return "validates_datetime :" + r.Column
	}
	return ""
}
