package dialect

type PostgresDialect struct{}

func (d *PostgresDialect) GetTablesQuery(schema string) string {
	// use $1 placeholder
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE'`
}

func (d *PostgresDialect) GetViewsQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'VIEW'`
}

func (d *PostgresDialect) GetColumnsQuery(schema string) string {
	// UDT_NAME gives the concrete type (int4, varchar, ...) which maps
	// more reliably than the spelled-out DATA_TYPE.
	// Integer precisions are reported in bits (radix 2); translate them
	// to decimal digit counts so every dialect reports the same scale.
	// Subqueries used to fetch PRIMARY KEY and UNIQUE constraints correctly.
	return `SELECT
    c.table_name,
    c.column_name,
    c.udt_name,
    c.data_type,
    c.character_maximum_length,
    CASE
        WHEN c.data_type = 'smallint' THEN 5
        WHEN c.data_type = 'integer' THEN 10
        WHEN c.data_type = 'bigint' THEN 19
        WHEN c.numeric_precision_radix = 10 THEN c.numeric_precision
        ELSE NULL
    END AS numeric_precision,
    CASE
        WHEN c.data_type IN ('smallint', 'integer', 'bigint') THEN 0
        WHEN c.numeric_precision_radix = 10 THEN c.numeric_scale
        ELSE NULL
    END AS numeric_scale,
    c.is_nullable,
    (SELECT 'PRI' FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'PRIMARY KEY'
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS COLUMN_KEY,
    CASE WHEN c.is_identity = 'YES' THEN 'identity' ELSE c.column_default END AS EXTRA,
    (SELECT 'UNIQUE' FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'UNIQUE'
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS IS_UNIQUE,
    col_description(format('%I.%I', c.table_schema, c.table_name)::regclass::oid, c.ordinal_position) AS COMMENT
FROM information_schema.columns c
WHERE c.table_schema = $1
ORDER BY c.table_name, c.ordinal_position`
}

func (d *PostgresDialect) GetPrimaryKeysQuery(schema string) string {
	return `SELECT kcu.table_name, kcu.column_name FROM information_schema.key_column_usage kcu JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name WHERE kcu.table_schema = $1 AND tc.constraint_type = 'PRIMARY KEY' ORDER BY kcu.table_name, kcu.ordinal_position`
}

func (d *PostgresDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT kcu.table_name, kcu.constraint_name, kcu.column_name, ccu.table_name AS referenced_table_name, ccu.column_name AS referenced_column_name FROM information_schema.key_column_usage kcu JOIN information_schema.constraint_column_usage ccu ON kcu.constraint_name = ccu.constraint_name JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name WHERE kcu.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY' ORDER BY kcu.table_name, kcu.ordinal_position`
}

func (d *PostgresDialect) NormalizeType(sqlType string) string {
	t := BaseType(sqlType)
	switch t {
	case "int2":
		return "smallint"
	case "int4", "serial":
		return "int"
	case "int8", "bigserial":
		return "bigint"
	case "numeric":
		return "decimal"
	case "float4":
		return "float"
	case "float8":
		return "double"
	case "bpchar":
		return "char"
	case "varchar":
		return "varchar"
	case "timestamp", "timestamptz":
		return "datetime"
	case "timetz":
		return "time"
	case "bool":
		return "boolean"
	case "bytea":
		return "blob"
	default:
		return t
	}
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
