package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaxConcurrency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"empty uses default", "", DefaultMaxConcurrency, false},
		{"blank uses default", "  ", DefaultMaxConcurrency, false},
		{"override", "2", 2, false},
		{"override with spaces", " 10 ", 10, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "five", 0, true},
		{"float", "2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMaxConcurrency(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMaxConcurrency)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvs(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("MAX_CONCURRENCY", "")

		cfg, err := LoadEnvs()
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.MaxConcurrency)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "8083", cfg.ServerPort)
		assert.Equal(t, "", cfg.PayloadPath)
	})

	t.Run("override from env", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("MAX_CONCURRENCY", "2")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("PAYLOAD_PATH", "/tmp/payloads")

		cfg, err := LoadEnvs()
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.MaxConcurrency)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/payloads", cfg.PayloadPath)
	})

	t.Run("invalid override fails", func(t *testing.T) {
		chdir(t, t.TempDir())

		for _, raw := range []string{"0", "abc"} {
			t.Setenv("MAX_CONCURRENCY", raw)

			cfg, err := LoadEnvs()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidMaxConcurrency)
		}
	})
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
