package engine

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"

	"model-forge/internal/schema"
)

// DefaultSeed keeps fixture output reproducible unless overridden.
const DefaultSeed int64 = 1

// Deterministic window for generated temporal values.
var (
	fixtureDateStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtureDateEnd   = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
)

// Fixtures renders a YAML fixture document for the table: one record
// per row keyed <singular>_<n>, column order preserved. The same table,
// row count, and seed always produce the same bytes.
func Fixtures(t *schema.Table, rows int, seed int64) (string, error) {
	if rows <= 0 {
		rows = 3
	}
	faker := gofakeit.New(seed)
	base := schema.FileBase(t.Name)

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	mapping.HeadComment = headerComment(t.Name)

	for i := 1; i <= rows; i++ {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%s_%d", base, i)}
		rec := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range t.Columns {
			if c.IsAutoInc {
				continue
			}
			k := &yaml.Node{Kind: yaml.ScalarNode, Value: c.Name}
			v := &yaml.Node{}
			if err := v.Encode(fixtureValue(faker, c)); err != nil {
				return "", fmt.Errorf("encode fixture value for %s.%s: %w", t.Name, c.Name, err)
			}
			rec.Content = append(rec.Content, k, v)
		}
		mapping.Content = append(mapping.Content, key, rec)
	}

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode fixtures for %s: %w", t.Name, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("close fixture encoder for %s: %w", t.Name, err)
	}
	return buf.String(), nil
}

// fixtureValue picks a plausible value for one column. Meaning analysis
// wins over raw types so emails look like emails.
func fixtureValue(f *gofakeit.Faker, c *schema.Column) interface{} {
	if len(c.EnumValues) > 0 {
		return f.RandomString(c.EnumValues)
	}

	name := strings.ToLower(c.Name)
	meaning := c.Meaning

	switch c.Family() {
	case schema.FamilyText:
		return textValue(f, c, name, meaning)

	case schema.FamilyNumeric:
		if strings.Contains(meaning, "yesno") || strings.HasPrefix(name, "is_") {
			return f.Number(0, 1)
		}
		if strings.Contains(name, "year") || strings.Contains(meaning, "year") {
			return f.Number(2000, 2025)
		}
		if c.Scale > 0 {
			intDigits := c.Precision - c.Scale
			if intDigits > 4 {
				intDigits = 4 // keep amounts readable
			}
			limit := math.Pow10(intDigits) - 1
			if limit < 1 {
				return f.Price(0, 0.99)
			}
			return f.Price(1, limit)
		}
		limit := 50000
		if c.Precision > 0 && c.Precision < 10 {
			if top := int(math.Pow10(c.Precision)) - 1; top < limit {
				limit = top
			}
		}
		if limit < 1 {
			limit = 9 // Minimum fallback
		}
		return f.Number(1, limit)

	case schema.FamilyTemporal:
		val := f.DateRange(fixtureDateStart, fixtureDateEnd)
		switch c.DataType {
		case "date":
			return val.Format("2006-01-02")
		case "time":
			return val.Format("15:04:05")
		default:
			return val.Format("2006-01-02 15:04:05")
		}
	}

	// Unrecognized families still get something loadable.
	switch c.DataType {
	case "boolean":
		return f.Bool()
	case "uuid":
		return f.UUID()
	case "float", "double":
		return f.Price(1, 9999)
	}
	if c.IsNullable {
		return nil
	}
	return ""
}

func textValue(f *gofakeit.Faker, c *schema.Column, name, meaning string) string {
	isID := strings.HasSuffix(name, "id")

	switch {
	case strings.Contains(name, "year") || strings.Contains(meaning, "year"):
		// year gets a value regardless of ID suffix
		return fmt.Sprintf("%d", f.Number(2000, 2025))
	case !isID && (strings.Contains(meaning, "phone") || strings.Contains(name, "phone")):
		return truncate(f.Phone(), c.Length)
	case !isID && (strings.Contains(meaning, "email") || strings.Contains(name, "email")):
		return truncate(f.Email(), c.Length)
	case !isID && strings.Contains(name, "first"):
		return truncate(f.FirstName(), c.Length)
	case !isID && strings.Contains(name, "last"):
		return truncate(f.LastName(), c.Length)
	case !isID && (strings.Contains(meaning, "name") || strings.Contains(name, "name")):
		return truncate(f.Name(), c.Length)
	case !isID && (strings.Contains(meaning, "address") || strings.Contains(name, "address")):
		if strings.Contains(name, "2") {
			return truncate(fmt.Sprintf("Unit %d", f.Number(1, 99)), c.Length)
		}
		return truncate(f.Street(), c.Length)
	case strings.Contains(meaning, "zipcode") || strings.Contains(name, "zip") || strings.Contains(name, "postal"):
		return truncate(f.Zip(), c.Length)
	case strings.Contains(meaning, "yesno") || strings.Contains(name, "active") || strings.HasPrefix(name, "is_"):
		if f.Bool() {
			return "Y"
		}
		return "N"
	case !isID && (strings.Contains(meaning, "title") || strings.Contains(meaning, "subject")):
		return truncate(f.Sentence(3), c.Length)
	case !isID && (strings.Contains(meaning, "description") || strings.Contains(meaning, "content") ||
		strings.Contains(meaning, "comment") || strings.Contains(meaning, "text")):
		return truncate(f.Sentence(10), c.Length)
	case !isID && (strings.Contains(meaning, "country") || strings.Contains(name, "country")):
		return truncate(f.Country(), c.Length)
	case !isID && (strings.Contains(meaning, "city") || strings.Contains(name, "city")):
		return truncate(f.City(), c.Length)
	case strings.Contains(meaning, "url") || strings.Contains(name, "url"):
		return truncate(f.URL(), c.Length)
	case strings.Contains(meaning, "ip") || strings.Contains(name, "ip_"):
		return f.IPv4Address()
	case !isID && (strings.Contains(meaning, "password") || strings.Contains(name, "password")):
		return truncate(f.Password(true, true, true, false, false, 12), c.Length)
	case !isID && (strings.Contains(meaning, "user") || strings.Contains(name, "login")):
		return truncate(f.Username(), c.Length)
	case !isID && (strings.Contains(meaning, "company") || strings.Contains(name, "company")):
		return truncate(f.Company(), c.Length)
	}

	if c.Length > 0 && c.Length < 20 {
		return truncate(f.Word(), c.Length)
	}
	return truncate(f.Sentence(5), c.Length)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
