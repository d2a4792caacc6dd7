package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"model-forge/internal/schema"
)

// Assertion is one example block of the generated spec. Exactly one of
// the optional fields decides its shape: Message means a rejection
// check, TypeName a type check, neither a plain readability check.
type Assertion struct {
	Column      string
	Description string
	Assign      string // Ruby literal assigned before validating
	TypeName    string // expected Ruby type
	OrNil       bool   // nullable columns may also hold nil
	Message     string // expected validation error
}

// Probe values assigned to force a rejection. Fixed constants keep the
// emitted spec stable across runs.
const (
	probeNonString = "12345"
	probeNonNumber = "'twelve'"
)

// Assertions mirrors the derived rules into spec assertions, grouped
// per column in schema order. Every rejection expects the exact
// message the model's validation produces.
func (g *Generator) Assertions() []Assertion {
	rulesByCol := make(map[string][]Rule)
	for _, r := range g.rules {
		rulesByCol[r.Column] = append(rulesByCol[r.Column], r)
	}

	var out []Assertion
	for _, c := range g.in.Columns {
		if Skip(c) {
			continue
		}

		out = append(out, Assertion{
			Column:      c.Name,
			Description: "is readable without raising",
		})
		out = append(out, typeAssertion(c))

		requiresPresence := false
		for _, r := range rulesByCol[c.Name] {
			if r.Kind == RulePresence || r.Presence {
				requiresPresence = true
			}
			switch r.Kind {
			case RuleLength:
				if g.style == StyleCurrent {
					out = append(out, Assertion{
						Column:      c.Name,
						Description: "rejects a non-string value",
						Assign:      probeNonString,
						Message:     msgNotString,
					})
				}
				if r.Max > 0 {
					out = append(out, Assertion{
						Column:      c.Name,
						Description: fmt.Sprintf("rejects values longer than %d characters", r.Max),
						Assign:      fmt.Sprintf("'x' * %d", r.Max+1),
						Message:     msgTooLong(r.Max),
					})
				}

			case RuleNumericality:
				upper := rubyNumber(r.Upper)
				lower := rubyNumber(r.Lower)
				above := violation(upper, r.Scale, true)
				below := violation(lower, r.Scale, false)
				out = append(out,
					Assertion{
						Column:      c.Name,
						Description: "rejects a non-numeric value",
						Assign:      probeNonNumber,
						Message:     msgNotNumber,
					},
					Assertion{
						Column:      c.Name,
						Description: "rejects values above " + upper,
						Assign:      above,
						Message:     msgTooBig(upper),
					},
					Assertion{
						Column:      c.Name,
						Description: "rejects values below " + lower,
						Assign:      below,
						Message:     msgTooSmall(lower),
					},
				)
			}
		}

		if requiresPresence {
			out = append(out, Assertion{
				Column:      c.Name,
				Description: "rejects a blank value",
				Assign:      "nil",
				Message:     msgBlank,
			})
		}
	}
	return out
}

func typeAssertion(c *schema.Column) Assertion {
	var typeName, noun string
	switch c.Family() {
	case schema.FamilyText:
		typeName, noun = "String", "string"
	case schema.FamilyNumeric:
		typeName, noun = "Numeric", "numeric"
	case schema.FamilyTemporal:
		if c.DateOnly() {
			typeName, noun = "Date", "date"
		} else {
			typeName, noun = "Time", "time"
		}
	}
	desc := fmt.Sprintf("holds a %s value", noun)
	if c.IsNullable {
		desc += " or nil"
	}
	return Assertion{
		Column:      c.Name,
		Description: desc,
		TypeName:    typeName,
		OrNil:       c.IsNullable,
	}
}

// violation steps one unit in the last place past a bound. The step is
// 10^-scale, so 99999.99 becomes 100000.00 and -999 becomes -1000.
func violation(bound string, scale int, up bool) string {
	d, err := decimal.NewFromString(bound)
	if err != nil {
		return bound
	}
	step := decimal.New(1, -int32(scale))
	if up {
		d = d.Add(step)
	} else {
		d = d.Sub(step)
	}
	return d.StringFixed(int32(scale))
}

// Spec renders the mirrored RSpec source for the table.
func (g *Generator) Spec() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", headerComment(g.in.TableName))
	b.WriteString("require 'spec_helper'\n\n")
	fmt.Fprintf(&b, "describe %s do\n", g.in.ClassName)
	b.WriteString("  subject(:record) { described_class.new }\n")

	g.writeKeyAssertion(&b)

	var open string
	for _, a := range g.Assertions() {
		if a.Column != open {
			if open != "" {
				b.WriteString("  end\n")
			}
			fmt.Fprintf(&b, "\n  describe '#%s' do\n", a.Column)
			open = a.Column
		} else {
			b.WriteString("\n")
		}
		writeAssertion(&b, a)
	}
	if open != "" {
		b.WriteString("  end\n")
	}

	b.WriteString("end\n")
	return b.String()
}

func (g *Generator) writeKeyAssertion(b *strings.Builder) {
	switch k := g.in.PrimaryKey.(type) {
	case schema.SingleKey:
		fmt.Fprintf(b, "\n  it 'uses %s as the primary key' do\n", k.Name)
		fmt.Fprintf(b, "    expect(described_class.primary_key).to eq('%s')\n", k.Name)
		b.WriteString("  end\n")
	case schema.CompositeKey:
		fmt.Fprintf(b, "\n  it 'uses %s as the composite primary key' do\n", strings.Join(k.Names, ", "))
		fmt.Fprintf(b, "    expect(described_class.primary_keys).to eq([:%s])\n", strings.Join(k.Names, ", :"))
		b.WriteString("  end\n")
	}
	// keyless tables and views assert nothing about identity
}

func writeAssertion(b *strings.Builder, a Assertion) {
	fmt.Fprintf(b, "    it %s do\n", rubyString(a.Description))
	switch {
	case a.Message != "":
		fmt.Fprintf(b, "      record.%s = %s\n", a.Column, a.Assign)
		b.WriteString("      record.valid?\n")
		fmt.Fprintf(b, "      expect(record.errors[:%s]).to include(%s)\n", a.Column, rubyString(a.Message))
	case a.TypeName != "":
		matcher := fmt.Sprintf("be_a(%s)", a.TypeName)
		if a.OrNil {
			matcher += ".or be_nil"
		}
		fmt.Fprintf(b, "      expect(record.%s).to %s\n", a.Column, matcher)
	default:
		fmt.Fprintf(b, "      expect(record).to respond_to(:%s)\n", a.Column)
		fmt.Fprintf(b, "      expect { record.%s }.not_to raise_error\n", a.Column)
	}
	b.WriteString("    end\n")
}
