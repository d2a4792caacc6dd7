package schema

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"model-forge/internal/dialect"
)

// ---------------------------------------------------------------------
// Schema Analysis Logic
// ---------------------------------------------------------------------

// Analyze introspects every table and view of the target schema and
// returns them sorted by name. Views are flagged and carry no keys.
func Analyze(db *sql.DB, d dialect.Dialect, schemaName string) ([]*Table, error) {
	// [Interface-First]: Delegate schema resolution to the dialect
	target := d.GetSchemaName(schemaName)

	// Use map for O(1) lookups, with normalized keys for case-insensitive matching (Oracle support)
	tableMap := make(map[string]*Table)
	var tables []*Table

	// --- Step 1: Fetch Tables ---
	rows, err := db.Query(d.GetTablesQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		t := &Table{Name: name}
		// Store with normalized key (UPPERCASE) for robust lookups
		tableMap[strings.ToUpper(name)] = t
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Step 2: Fetch Views ---
	viewRows, err := db.Query(d.GetViewsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer viewRows.Close()

	for viewRows.Next() {
		var name string
		if err := viewRows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan view name: %w", err)
		}
		t := &Table{Name: name, IsView: true}
		tableMap[strings.ToUpper(name)] = t
		tables = append(tables, t)
	}
	if err := viewRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating views: %w", err)
	}

	// --- Step 3: Fetch Columns ---
	// information_schema column listings cover views as well, so both
	// kinds fill up in a single pass.
	colRows, err := db.Query(d.GetColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType, cType, isNull, cKey, extra, isUnique, comment sql.NullString
		var cLen, cPrec, cScale sql.NullString // Use String for safety

		if err := colRows.Scan(&tName, &cName, &dType, &cType, &cLen, &cPrec, &cScale, &isNull, &cKey, &extra, &isUnique, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}

		if !tName.Valid || !cName.Valid {
			continue // Skip invalid rows
		}

		// Lookup using Normalized Key
		t, ok := tableMap[strings.ToUpper(tName.String)]
		if !ok {
			continue
		}

		// PK Detection
		isPK := strings.Contains(cKey.String, "PRI") || strings.Contains(cKey.String, "PRIMARY")

		// AutoInc Detection
		isAutoInc := false
		if extra.Valid {
			extraLower := strings.ToLower(extra.String)
			isAutoInc = strings.Contains(extraLower, "auto_increment") ||
				strings.Contains(extraLower, "identity") ||
				strings.Contains(extraLower, "nextval")
		}

		// Unique Detection
		isUniqueCol := false
		if isUnique.Valid {
			isUniqueCol = strings.Contains(isUnique.String, "UNIQUE")
		}

		col := &Column{
			Name:       cName.String,
			DataType:   d.NormalizeType(dType.String),
			Length:     parseNumeric(cLen),
			Precision:  parseNumeric(cPrec),
			Scale:      parseNumeric(cScale),
			IsNullable: strings.EqualFold(isNull.String, "YES") || strings.EqualFold(isNull.String, "Y"),
			IsPK:       isPK,
			IsAutoInc:  isAutoInc,
			IsUnique:   isUniqueCol,
			EnumValues: parseEnumValues(cType.String),
			Comment:    comment.String,
			Meaning:    AnalyzeMeaning(cName.String, comment.String),
		}
		t.Columns = append(t.Columns, col)
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	// --- Step 4: Fetch Primary Keys (ordered) ---
	// The columns pass already marks IsPK; this pass recovers the
	// declaration order, which matters for composite keys.
	pkRows, err := db.Query(d.GetPrimaryKeysQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query primary keys: %w", err)
	}
	defer pkRows.Close()

	pkCols := make(map[string][]string)
	for pkRows.Next() {
		var tName, cName sql.NullString
		if err := pkRows.Scan(&tName, &cName); err != nil {
			return nil, fmt.Errorf("failed to scan primary key: %w", err)
		}
		if tName.Valid && cName.Valid {
			key := strings.ToUpper(tName.String)
			pkCols[key] = append(pkCols[key], cName.String)
		}
	}
	if err := pkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating primary keys: %w", err)
	}

	for key, cols := range pkCols {
		t, ok := tableMap[key]
		if !ok {
			continue
		}
		switch len(cols) {
		case 0:
		case 1:
			t.PrimaryKey = SingleKey{Name: cols[0]}
		default:
			t.PrimaryKey = CompositeKey{Names: cols}
		}
	}

	// --- Step 5: Fetch Foreign Keys ---
	fkRows, err := db.Query(d.GetForeignKeysQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var tName, cConst, cName, rTable, rCol sql.NullString
		if err := fkRows.Scan(&tName, &cConst, &cName, &rTable, &rCol); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}

		if tName.Valid && rTable.Valid {
			// Lookup using Normalized Key
			tKey := strings.ToUpper(tName.String)
			rKey := strings.ToUpper(rTable.String)

			if t, ok := tableMap[tKey]; ok {
				// Only record references to tables we actually resolved
				if ref, exists := tableMap[rKey]; exists {
					t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
						Column:    cName.String,
						RefTable:  ref.Name, // Get original case name
						RefColumn: rCol.String,
					})
				}
			}
		}
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}

	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables, nil
}

// parseNumeric reads an integer out of a nullable metadata cell. Some
// drivers report lengths as floats, so both forms are accepted.
func parseNumeric(v sql.NullString) int {
	if !v.Valid || v.String == "" {
		return 0
	}
	var n int
	if _, err := fmt.Sscanf(v.String, "%d", &n); err == nil {
		return n
	}
	var f float64
	if _, err := fmt.Sscanf(v.String, "%f", &f); err == nil {
		return int(f)
	}
	return 0
}

// parseEnumValues extracts member literals from a MySQL COLUMN_TYPE
// expression such as enum('a','b','c'). Returns nil for anything else.
func parseEnumValues(columnType string) []string {
	ct := strings.TrimSpace(columnType)
	lower := strings.ToLower(ct)
	if !strings.HasPrefix(lower, "enum(") && !strings.HasPrefix(lower, "set(") {
		return nil
	}
	open := strings.Index(ct, "(")
	end := strings.LastIndex(ct, ")")
	if open < 0 || end <= open {
		return nil
	}
	var values []string
	for _, part := range strings.Split(ct[open+1:end], ",") {
		v := strings.TrimSpace(part)
		v = strings.Trim(v, "'\"")
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}
