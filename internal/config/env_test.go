package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE", "DATA_FILE", "DB_CONN", "LOG_LEVEL", "OWNER"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := NewAPIConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "dashboard.yaml", cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Owner)
}

func TestNewAPIConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "Postgres needs a connection string",
			env:     map[string]string{"STORE": StorePostgres, "DB_CONN": ""},
			wantErr: "DB_CONN is required",
		},
		{
			name:    "File store needs a path",
			env:     map[string]string{"STORE": StoreFile, "DATA_FILE": ""},
			wantErr: "DATA_FILE is required",
		},
		{
			name:    "Unknown backend",
			env:     map[string]string{"STORE": "redis"},
			wantErr: `unknown STORE "redis"`,
		},
		{
			name: "Postgres configured",
			env:  map[string]string{"STORE": StorePostgres, "DB_CONN": "postgres://localhost/propeq?sslmode=disable", "OWNER": "Sam"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := NewAPIConfig()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Sam", cfg.Owner)
		})
	}
}
