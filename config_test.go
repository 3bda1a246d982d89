package riftseed

import (
	"testing"

	"github.com/riftforge/riftseed/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendFirestore, cfg.Backend)
	assert.Equal(t, DefaultCredentialsFile, cfg.CredentialsFile)
	require.NotNil(t, cfg.AI)
	assert.Equal(t, ai.ProviderGoogleAI, cfg.AI.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.False(t, cfg.RepairJSON)
	assert.Empty(t, cfg.ArchiveBucket)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithBackend("badger"),
		WithDBPath("/tmp/rift"),
		WithCredentialsFile("sa.json"),
		WithProjectID("rift"),
		WithAPIKeySecret("gemini-api-key"),
		WithArchiveBucket("rift-raw"),
		WithRepairJSON(true),
		WithAIConfig(ai.NewConfig(ai.WithAPIKey("k"))),
	)

	assert.Equal(t, BackendBadger, cfg.Backend)
	assert.Equal(t, "/tmp/rift", cfg.DBPath)
	assert.Equal(t, "sa.json", cfg.CredentialsFile)
	assert.Equal(t, "rift", cfg.ProjectID)
	assert.Equal(t, "gemini-api-key", cfg.APIKeySecret)
	assert.Equal(t, "rift-raw", cfg.ArchiveBucket)
	assert.True(t, cfg.RepairJSON)
	assert.Equal(t, "k", cfg.AI.APIKey)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ConfigOption
		wantErr error
	}{
		{
			name: "firestore with api key",
			opts: []ConfigOption{WithAIConfig(ai.NewConfig(ai.WithAPIKey("k")))},
		},
		{
			name:    "missing api key",
			opts:    nil,
			wantErr: ai.ErrMissingAPIKey,
		},
		{
			name: "secret stands in for api key",
			opts: []ConfigOption{WithAPIKeySecret("gemini-api-key")},
		},
		{
			name: "badger with path",
			opts: []ConfigOption{
				WithBackend(" Badger "),
				WithDBPath("/tmp/rift"),
				WithAIConfig(ai.NewConfig(ai.WithAPIKey("k"))),
			},
		},
		{
			name: "badger without path",
			opts: []ConfigOption{
				WithBackend(BackendBadger),
				WithAIConfig(ai.NewConfig(ai.WithAPIKey("k"))),
			},
			wantErr: ErrMissingDBPath,
		},
		{
			name: "unknown backend",
			opts: []ConfigOption{
				WithBackend("postgres"),
				WithAIConfig(ai.NewConfig(ai.WithAPIKey("k"))),
			},
			wantErr: ErrUnknownBackend,
		},
		{
			name: "unknown provider",
			opts: []ConfigOption{
				WithAIConfig(ai.NewConfig(ai.WithAPIKey("k"), ai.WithProvider("anthropic"))),
			},
			wantErr: ai.ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigValidate_SecretStillChecksOtherFields(t *testing.T) {
	cfg := NewConfig(
		WithAPIKeySecret("gemini-api-key"),
		WithAIConfig(ai.NewConfig(ai.WithModel(""))),
	)
	assert.Error(t, cfg.Validate())
	assert.Empty(t, cfg.AI.APIKey, "placeholder key must not leak")
}

func TestConfigNormalize(t *testing.T) {
	cfg := &Config{
		Backend:       " FireStore ",
		DBPath:        " /tmp/x ",
		APIKeySecret:  " s ",
		ArchiveBucket: "  ",
	}
	cfg.Normalize()

	assert.Equal(t, BackendFirestore, cfg.Backend)
	assert.Equal(t, "/tmp/x", cfg.DBPath)
	assert.Equal(t, "s", cfg.APIKeySecret)
	assert.Empty(t, cfg.ArchiveBucket)
	assert.NotNil(t, cfg.AI, "nil AI config gets defaults")
}

func TestNeedsSecretKey(t *testing.T) {
	cfg := NewConfig()
	assert.False(t, cfg.NeedsSecretKey())

	cfg.APIKeySecret = "gemini-api-key"
	assert.True(t, cfg.NeedsSecretKey())

	cfg.AI.APIKey = "k"
	assert.False(t, cfg.NeedsSecretKey())
}
