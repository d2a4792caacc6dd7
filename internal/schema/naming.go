package schema

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// ClassName derives the model class name from a table name:
// singularize, then CamelCase ("order_items" -> "OrderItem").
func ClassName(table string) string {
	base := FileBase(table)
	parts := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// FileBase derives the snake_case singular base used for artifact file
// names ("order_items" -> "order_item").
func FileBase(table string) string {
	return inflection.Singular(strings.ToLower(table))
}

// SnakeCase converts a class name back to its file form
// ("AdminUser" -> "admin_user").
func SnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
