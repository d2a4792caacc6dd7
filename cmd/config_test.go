package cmd_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-forge/cmd"
)

// setDatabases seeds the global viper instance and restores it afterwards.
func setDatabases(t *testing.T, dbs interface{}) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	if dbs != nil {
		viper.Set("databases", dbs)
	}
}

func TestGetActiveDBConfig(t *testing.T) {
	// active가 정확히 하나면 그 항목을 그대로 돌려준다
	setDatabases(t, []map[string]interface{}{
		{"name": "dev", "driver": "mysql", "dsn": "root:root@tcp(127.0.0.1:3306)/app_development", "active": false},
		{"name": "staging", "driver": "postgres", "dsn": "postgres://forge@db/app?sslmode=disable", "schema": "app", "active": true},
	})

	cfg, err := cmd.GetActiveDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Name)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "postgres://forge@db/app?sslmode=disable", cfg.DSN)
	assert.Equal(t, "app", cfg.Schema)
}

func TestGetActiveDBConfigNoneActive(t *testing.T) {
	setDatabases(t, []map[string]interface{}{
		{"name": "dev", "driver": "mysql", "dsn": "dsn-a", "active": false},
		{"name": "qa", "driver": "mysql", "dsn": "dsn-b"},
	})

	_, err := cmd.GetActiveDBConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active database")
}

func TestGetActiveDBConfigMultipleActive(t *testing.T) {
	setDatabases(t, []map[string]interface{}{
		{"name": "a", "driver": "mysql", "dsn": "dsn-a", "active": true},
		{"name": "b", "driver": "postgres", "dsn": "dsn-b", "active": true},
	})

	_, err := cmd.GetActiveDBConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple active")
}

func TestGetActiveDBConfigMissingSection(t *testing.T) {
	setDatabases(t, nil)

	_, err := cmd.GetActiveDBConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active database")
}
