package dialect

import (
	"strings"
)

// BaseType lowercases a reported SQL type and strips any length or
// precision suffix: "NUMBER(10,2)" -> "number", "timestamp(6)" -> "timestamp".
func BaseType(sqlType string) string {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	if i := strings.Index(t, "("); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// DefaultNormalizeType is a default implementation for type normalization (lowercase).
func DefaultNormalizeType(sqlType string) string {
	return BaseType(sqlType)
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}
