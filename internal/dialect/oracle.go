package dialect

import "strings"

type OracleDialect struct{}

func (d *OracleDialect) GetTablesQuery(schema string) string {
	// Oracle doesn't have a "schema" string concept in quite the same way for current user tables.
	// USER_TABLES lists tables owned by the current user.
	// We include a dummy clause to consume the schema argument if passed by standard callers.
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL`
}

func (d *OracleDialect) GetViewsQuery(schema string) string {
	return `SELECT VIEW_NAME FROM USER_VIEWS WHERE :1 IS NOT NULL`
}

func (d *OracleDialect) GetColumnsQuery(schema string) string {
	// USER_TAB_COLUMNS covers both tables and views.
	// We join with USER_CONS_COLUMNS to identify Primary Keys (P) and Unique (U) constraints.
	// We also fetch comments from USER_COL_COMMENTS.
	// CHAR_LENGTH is the character count; DATA_LENGTH would be bytes.
	return `
SELECT
    t.TABLE_NAME,
    t.COLUMN_NAME,
    t.DATA_TYPE,
    t.DATA_TYPE || CASE WHEN t.DATA_PRECISION IS NOT NULL THEN '(' || t.DATA_PRECISION || ',' || COALESCE(t.DATA_SCALE, 0) || ')' WHEN t.CHAR_LENGTH > 0 THEN '(' || t.CHAR_LENGTH || ')' ELSE '' END,
    CASE WHEN t.CHAR_LENGTH > 0 THEN t.CHAR_LENGTH ELSE NULL END,
    t.DATA_PRECISION,
    t.DATA_SCALE,
    t.NULLABLE,
    CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 'PRI' ELSE '' END,
    CASE WHEN t.IDENTITY_COLUMN = 'YES' THEN 'auto_increment' ELSE '' END,
    CASE WHEN u.CONSTRAINT_NAME IS NOT NULL THEN 'UNIQUE' ELSE '' END,
    c.COMMENTS
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON t.TABLE_NAME = p.TABLE_NAME AND t.COLUMN_NAME = p.COLUMN_NAME
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'U'
) u ON t.TABLE_NAME = u.TABLE_NAME AND t.COLUMN_NAME = u.COLUMN_NAME
LEFT JOIN USER_COL_COMMENTS c ON t.TABLE_NAME = c.TABLE_NAME AND t.COLUMN_NAME = c.COLUMN_NAME
WHERE :1 IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *OracleDialect) GetPrimaryKeysQuery(schema string) string {
	return `
SELECT cc.TABLE_NAME, cc.COLUMN_NAME
FROM USER_CONS_COLUMNS cc
JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
WHERE uc.CONSTRAINT_TYPE = 'P' AND :1 IS NOT NULL
ORDER BY cc.TABLE_NAME, cc.POSITION`
}

func (d *OracleDialect) GetForeignKeysQuery(schema string) string {
	return `
SELECT
    c.TABLE_NAME,
    c.CONSTRAINT_NAME,
    cc.COLUMN_NAME,
    r.TABLE_NAME AS REF_TABLE,
    rcc.COLUMN_NAME AS REF_COLUMN
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc
    ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
    AND c.OWNER = cc.OWNER
JOIN USER_CONSTRAINTS r
    ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME
    AND c.R_OWNER = r.OWNER
JOIN USER_CONS_COLUMNS rcc
    ON r.CONSTRAINT_NAME = rcc.CONSTRAINT_NAME
    AND r.OWNER = rcc.OWNER
    AND cc.POSITION = rcc.POSITION
WHERE c.CONSTRAINT_TYPE = 'R'
AND :1 IS NOT NULL
ORDER BY c.TABLE_NAME, cc.POSITION`
}

func (d *OracleDialect) NormalizeType(sqlType string) string {
	t := BaseType(sqlType)
	switch t {
	case "varchar2", "nvarchar2":
		return "varchar"
	case "char", "nchar":
		return "char"
	case "clob", "nclob", "long":
		return "text"
	case "number":
		// NUMBER without a declared precision stays unusable for
		// bound derivation; the analyzer sees precision 0 then.
		return "decimal"
	case "integer", "int", "smallint":
		return "decimal"
	case "float", "binary_float":
		return "float"
	case "binary_double":
		return "double"
	case "date":
		// Oracle DATE carries a time component.
		return "datetime"
	case "raw", "blob", "bfile":
		return "blob"
	default:
		if strings.HasPrefix(t, "timestamp") {
			return "datetime"
		}
		return t
	}
}

func (d *OracleDialect) GetSchemaName(input string) string {
	if input == "" {
		// The USER_* catalogs scope to the connected user; the value
		// only feeds the dummy bind, which must not be NULL ('' is
		// NULL to Oracle).
		return "USER"
	}
	return input
}
