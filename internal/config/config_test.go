package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	// Act
	cfg, err := load(nil, nil, map[string]string{"JWT_SECRET": testSecret})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress.String())
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL.String())
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 50, cfg.Retry.MaxAttempts)
	assert.Equal(t, 8, cfg.CodeLength)
	assert.Equal(t, 20, cfg.DefaultURLLimit)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.FileStoragePath)
}

func TestLoad_FlagsThenEnv(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		environ     map[string]string
		wantAddress string
		wantBaseURL string
		wantFile    string
	}{
		{
			name:        "flags only",
			args:        []string{"-a", "127.0.0.1:9000", "-b", "https://sho.rt/", "-f", "/tmp/db.json", "-s", testSecret},
			environ:     map[string]string{},
			wantAddress: "127.0.0.1:9000",
			wantBaseURL: "https://sho.rt",
			wantFile:    "/tmp/db.json",
		},
		{
			name: "env overrides flags",
			args: []string{"-a", "127.0.0.1:9000", "-f", "/tmp/flag.json"},
			environ: map[string]string{
				"SERVER_ADDRESS":    "0.0.0.0:8081",
				"FILE_STORAGE_PATH": "/tmp/env.json",
				"JWT_SECRET":        testSecret,
			},
			wantAddress: "0.0.0.0:8081",
			wantBaseURL: "http://localhost:8080",
			wantFile:    "/tmp/env.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			cfg, err := load(tt.args, nil, tt.environ)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddress, cfg.ServerAddress.String())
			assert.Equal(t, tt.wantBaseURL, cfg.BaseURL.String())
			assert.Equal(t, tt.wantFile, cfg.FileStoragePath)
		})
	}
}

func TestLoad_DotenvBelowFlags(t *testing.T) {
	dotenv := map[string]string{
		"SERVER_ADDRESS":    "0.0.0.0:7000",
		"FILE_STORAGE_PATH": "/tmp/dotenv.json",
		"JWT_SECRET":        testSecret,
		"LOG_LEVEL":         "debug",
	}

	tests := []struct {
		name        string
		args        []string
		environ     map[string]string
		wantAddress string
		wantFile    string
	}{
		{
			name:        "dotenv over defaults",
			environ:     map[string]string{},
			wantAddress: "0.0.0.0:7000",
			wantFile:    "/tmp/dotenv.json",
		},
		{
			name:        "flags over dotenv",
			args:        []string{"-a", "127.0.0.1:9000", "-f", "/tmp/flag.json"},
			environ:     map[string]string{},
			wantAddress: "127.0.0.1:9000",
			wantFile:    "/tmp/flag.json",
		},
		{
			name:        "environment over flags and dotenv",
			args:        []string{"-a", "127.0.0.1:9000"},
			environ:     map[string]string{"SERVER_ADDRESS": "10.0.0.1:8081"},
			wantAddress: "10.0.0.1:8081",
			wantFile:    "/tmp/dotenv.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			cfg, err := load(tt.args, dotenv, tt.environ)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddress, cfg.ServerAddress.String())
			assert.Equal(t, tt.wantFile, cfg.FileStoragePath)
			assert.Equal(t, "debug", cfg.LogLevel)
		})
	}
}

func TestLoad_TunablesFromEnv(t *testing.T) {
	// Act
	cfg, err := load(nil, nil, map[string]string{
		"JWT_SECRET":         testSecret,
		"TOKEN_TTL":          "5m",
		"RETRY_MAX_ATTEMPTS": "3",
		"CODE_LENGTH":        "12",
		"DEFAULT_URL_LIMIT":  "0",
		"ADMIN_USERNAME":     "root",
		"ADMIN_PASSWORD":     "hunter22",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 12, cfg.CodeLength)
	assert.Equal(t, 0, cfg.DefaultURLLimit)
	assert.Equal(t, "root", cfg.AdminUsername)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		environ map[string]string
	}{
		{
			name:    "missing secret",
			environ: map[string]string{},
		},
		{
			name:    "short secret",
			environ: map[string]string{"JWT_SECRET": "short"},
		},
		{
			name:    "bad address flag",
			args:    []string{"-a", "no-port"},
			environ: map[string]string{"JWT_SECRET": testSecret},
		},
		{
			name:    "bad base url",
			environ: map[string]string{"JWT_SECRET": testSecret, "BASE_URL": "ftp://host"},
		},
		{
			name:    "code too long",
			environ: map[string]string{"JWT_SECRET": testSecret, "CODE_LENGTH": "33"},
		},
		{
			name:    "zero attempts",
			environ: map[string]string{"JWT_SECRET": testSecret, "RETRY_MAX_ATTEMPTS": "0"},
		},
		{
			name:    "admin without password",
			environ: map[string]string{"JWT_SECRET": testSecret, "ADMIN_USERNAME": "root"},
		},
		{
			name:    "unknown log level",
			environ: map[string]string{"JWT_SECRET": testSecret, "LOG_LEVEL": "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			_, err := load(tt.args, nil, tt.environ)

			// Assert
			assert.Error(t, err)
		})
	}
}

func TestNetworkAddress_Set(t *testing.T) {
	var addr NetworkAddress

	require.NoError(t, addr.Set(":8080"))
	assert.Equal(t, "", addr.Host)
	assert.Equal(t, 8080, addr.Port)

	assert.Error(t, addr.Set("localhost:http"))
	assert.Error(t, addr.Set("localhost:70000"))
}

func TestURLPrefix_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "http://localhost:8080", want: "http://localhost:8080"},
		{value: "https://sho.rt/go/", want: "https://sho.rt/go"},
		{value: " https://sho.rt ", want: "https://sho.rt"},
		{value: "sho.rt", wantErr: true},
		{value: "ftp://sho.rt", wantErr: true},
		{value: "https://", wantErr: true},
		{value: "https://sho.rt/?q=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var p URLPrefix

			err := p.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestURLPrefix_ShortURL(t *testing.T) {
	p := URLPrefix("https://sho.rt/go")

	got, err := p.ShortURL("promo")

	require.NoError(t, err)
	assert.Equal(t, "https://sho.rt/go/redirect/promo", got)
}
