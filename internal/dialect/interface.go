package dialect

// Dialect abstracts database-specific schema introspection.
//
// Column queries must project the same 12 columns in the same order:
// table name, column name, data type, full column type, character max
// length, numeric precision, numeric scale, nullability, key marker,
// extra (identity/default info), unique marker, comment.
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	GetTablesQuery(schema string) string
	GetViewsQuery(schema string) string
	GetColumnsQuery(schema string) string
	GetPrimaryKeysQuery(schema string) string // ordered by key position
	GetForeignKeysQuery(schema string) string

	// Helpers
	NormalizeType(sqlType string) string
	GetSchemaName(input string) string
}
