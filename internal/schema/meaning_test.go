package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"model-forge/internal/schema"
)

func TestAnalyzeMeaningFromComment(t *testing.T) {
	tests := []struct {
		colName string
		comment string
		want    string
	}{
		{"contact", "Mobile phone number", "phone"},
		{"addr1", "Street address line 1", "address"},
		{"login", "E-Mail used for login", "email"},
		{"code", "Postal code", "zipcode"},
		{"fee", "Monthly price in USD", "price"},
		{"active", "Active flag", "yesno"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.AnalyzeMeaning(tt.colName, tt.comment),
			"column %q comment %q", tt.colName, tt.comment)
	}
}

func TestAnalyzeMeaningDecodesAbbreviations(t *testing.T) {
	tests := []struct {
		colName string
		want    string
	}{
		{"user_nm", "user name"},
		{"reg_dt", "registered date"},
		{"del_yn", "deleted yesno"},
		{"tel_no", "phone number"},
		{"item_cnt", "item count"},
		{"email", "email"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.AnalyzeMeaning(tt.colName, ""), "column %q", tt.colName)
	}
}
