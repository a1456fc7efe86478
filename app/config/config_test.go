package config

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   *string
		expServer Server
		expErr    string
	}{
		{
			name:    "ok/missing_file",
			content: nil,
		},
		{
			name:    "ok/empty_file",
			content: ptr(""),
		},
		{
			name:    "ok/full",
			content: ptr(`{"server": {"address": ":8080", "shutdown_timeout": "1m30s"}}`),
			expServer: Server{
				Address:         sql.Null[string]{V: ":8080", Valid: true},
				ShutdownTimeout: sql.Null[time.Duration]{V: 90 * time.Second, Valid: true},
			},
		},
		{
			name:    "ok/partial",
			content: ptr(`{"server": {"address": "0.0.0.0:8000"}}`),
			expServer: Server{
				Address: sql.Null[string]{V: "0.0.0.0:8000", Valid: true},
			},
		},
		{
			name:    "err/invalid_json",
			content: ptr(`{"server": `),
			expErr:  "failed parsing configuration file: unexpected end of JSON input",
		},
		{
			name:    "err/invalid_duration",
			content: ptr(`{"server": {"shutdown_timeout": "soon"}}`),
			expErr:  "failed parsing configuration file: failed parsing server shutdown timeout: invalid duration 'soon'",
		},
		{
			name:    "err/negative_duration",
			content: ptr(`{"server": {"shutdown_timeout": "-5s"}}`),
			expErr:  "failed parsing configuration file: invalid server shutdown timeout '-5s': must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := memoryfs.New()
			if tt.content != nil {
				require.NoError(t, fs.MkdirAll("/etc/agrodiag", 0o755))
				require.NoError(t, vfs.WriteFile(fs, "/etc/agrodiag/config.json", []byte(*tt.content), 0o644))
			}

			cfg := NewConfig(fs, "/etc/agrodiag/config.json")
			err := cfg.Load()
			if tt.expErr != "" {
				assert.EqualError(t, err, tt.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expServer, cfg.Server)
		})
	}
}

func TestConfigSaveLoad(t *testing.T) {
	t.Parallel()

	fs := memoryfs.New()
	cfg := NewConfig(fs, "/home/user/.config/agrodiag/config.json")

	ok, err := cfg.Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	cfg.SetDefaults()
	require.NoError(t, cfg.Save())

	ok, err = cfg.Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := vfs.ReadFile(fs, cfg.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"server": {"address": "127.0.0.1:8000", "shutdown_timeout": "10s"}}`, string(data))

	loaded := NewConfig(fs, cfg.Path())
	require.NoError(t, loaded.Load())
	assert.Equal(t, cfg.Server, loaded.Server)
}

func TestConfigSetDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Server: Server{
		Address: sql.Null[string]{V: ":9000", Valid: true},
	}}
	cfg.SetDefaults()

	assert.Equal(t, ":9000", cfg.Server.Address.V)
	assert.Equal(t, sql.Null[time.Duration]{V: DefaultShutdownTimeout, Valid: true}, cfg.Server.ShutdownTimeout)
}

func TestConfigMarshalOmitsUnset(t *testing.T) {
	t.Parallel()

	data, err := Config{}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"server": {}}`, string(data))
}

func ptr[T any](v T) *T {
	return &v
}

func TestConfigSaveShutdownTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		exp     string
	}{
		{name: "ok/seconds", timeout: 90 * time.Second, exp: "1m30s"},
		{name: "ok/subsecond", timeout: 50 * time.Millisecond, exp: "50ms"},
		{name: "ok/days", timeout: 36 * time.Hour, exp: "1d12h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := memoryfs.New()
			cfg := NewConfig(fs, "/etc/agrodiag/config.json")
			cfg.Server.ShutdownTimeout = sql.Null[time.Duration]{V: tt.timeout, Valid: true}
			require.NoError(t, cfg.Save())

			data, err := vfs.ReadFile(fs, cfg.Path())
			require.NoError(t, err)
			assert.JSONEq(t, `{"server": {"shutdown_timeout": "`+tt.exp+`"}}`, string(data))

			loaded := NewConfig(fs, cfg.Path())
			require.NoError(t, loaded.Load())
			assert.Equal(t, tt.timeout, loaded.Server.ShutdownTimeout.V)
		})
	}
}
