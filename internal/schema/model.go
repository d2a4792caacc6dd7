package schema

type Table struct {
	Name        string
	IsView      bool // 뷰는 PK/FK 없음
	Columns     []*Column
	ForeignKeys []*ForeignKey
	PrimaryKey  PrimaryKey // nil = 키 없음
}

type Column struct {
	Name       string
	DataType   string // normalized type name (dialect.NormalizeType)
	Length     int    // character max length, 0 = unbounded
	Precision  int    // decimal digits, 0 = not reported
	Scale      int
	IsNullable bool
	IsPK       bool
	IsAutoInc  bool
	IsUnique   bool
	EnumValues []string
	Comment    string // DB 스키마 코멘트 (MS_Description 등)
	Meaning    string // 약어 또는 코멘트 분석을 통해 파악된 의미 (예: "phone", "email")
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// PrimaryKey is the key shape of a table: SingleKey, CompositeKey,
// or nil when the table has no primary key at all.
type PrimaryKey interface {
	ColumnNames() []string
}

type SingleKey struct {
	Name string
}

func (k SingleKey) ColumnNames() []string { return []string{k.Name} }

type CompositeKey struct {
	Names []string
}

func (k CompositeKey) ColumnNames() []string { return k.Names }

// Family buckets normalized data types for rule derivation.
type Family int

const (
	FamilyOther Family = iota
	FamilyText
	FamilyNumeric
	FamilyTemporal
)

func (f Family) String() string {
	switch f {
	case FamilyText:
		return "text"
	case FamilyNumeric:
		return "numeric"
	case FamilyTemporal:
		return "temporal"
	default:
		return "other"
	}
}

// Family classifies the column by its normalized type. Exact numerics
// need a reported precision to be usable; approximate types (float,
// double) and anything unrecognized fall into FamilyOther.
func (c *Column) Family() Family {
	switch c.DataType {
	case "char", "varchar", "text":
		return FamilyText
	case "tinyint", "smallint", "int", "bigint", "decimal":
		if c.Precision < 1 {
			return FamilyOther
		}
		return FamilyNumeric
	case "date", "datetime", "time":
		return FamilyTemporal
	default:
		return FamilyOther
	}
}

// DateOnly reports whether a temporal column carries no time component.
func (c *Column) DateOnly() bool { return c.DataType == "date" }
