package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"model-forge/internal/schema"
)

func TestColumnFamily(t *testing.T) {
	tests := []struct {
		name      string
		dataType  string
		precision int
		want      schema.Family
	}{
		{"varchar", "varchar", 0, schema.FamilyText},
		{"char", "char", 0, schema.FamilyText},
		{"text", "text", 0, schema.FamilyText},
		{"decimal", "decimal", 7, schema.FamilyNumeric},
		{"int", "int", 10, schema.FamilyNumeric},
		{"tinyint", "tinyint", 3, schema.FamilyNumeric},
		{"smallint", "smallint", 5, schema.FamilyNumeric},
		{"bigint", "bigint", 19, schema.FamilyNumeric},
		{"date", "date", 0, schema.FamilyTemporal},
		{"datetime", "datetime", 0, schema.FamilyTemporal},
		{"time", "time", 0, schema.FamilyTemporal},
		// 정밀도 없는 숫자는 도출 불가
		{"decimal without precision", "decimal", 0, schema.FamilyOther},
		{"float is approximate", "float", 7, schema.FamilyOther},
		{"double is approximate", "double", 15, schema.FamilyOther},
		{"blob", "blob", 0, schema.FamilyOther},
		{"uuid", "uuid", 0, schema.FamilyOther},
		{"boolean", "boolean", 1, schema.FamilyOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &schema.Column{Name: "c", DataType: tt.dataType, Precision: tt.precision}
			assert.Equal(t, tt.want, c.Family())
		})
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "text", schema.FamilyText.String())
	assert.Equal(t, "numeric", schema.FamilyNumeric.String())
	assert.Equal(t, "temporal", schema.FamilyTemporal.String())
	assert.Equal(t, "other", schema.FamilyOther.String())
}

func TestDateOnly(t *testing.T) {
	assert.True(t, (&schema.Column{DataType: "date"}).DateOnly())
	assert.False(t, (&schema.Column{DataType: "datetime"}).DateOnly())
	assert.False(t, (&schema.Column{DataType: "time"}).DateOnly())
}

func TestPrimaryKeyColumnNames(t *testing.T) {
	var pk schema.PrimaryKey

	pk = schema.SingleKey{Name: "id"}
	assert.Equal(t, []string{"id"}, pk.ColumnNames())

	pk = schema.CompositeKey{Names: []string{"order_id", "item_id"}}
	assert.Equal(t, []string{"order_id", "item_id"}, pk.ColumnNames())

	// nil 키는 "키 없음"
	var table schema.Table
	assert.Nil(t, table.PrimaryKey)
}
