package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"model-forge/internal/schema"
)

func TestClassName(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"users", "User"},
		{"order_items", "OrderItem"},
		{"people", "Person"},
		{"categories", "Category"},
		{"ADDRESSES", "Address"},
		{"audit-logs", "AuditLog"},
		{"user_profiles", "UserProfile"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.ClassName(tt.table), "table %q", tt.table)
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"users", "user"},
		{"order_items", "order_item"},
		{"people", "person"},
		{"STATUSES", "status"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.FileBase(tt.table), "table %q", tt.table)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"User", "user"},
		{"AdminUser", "admin_user"},
		{"OrderItem", "order_item"},
		{"already_snake", "already_snake"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.SnakeCase(tt.name), "name %q", tt.name)
	}
}
