// Copyright 2025 Riftforge Games
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package riftseed

import (
	"fmt"
	"strings"

	"github.com/riftforge/riftseed/ai"
)

// Supported document store backends.
const (
	BackendFirestore = "firestore"
	BackendBadger    = "badger"
)

// DefaultCredentialsFile is the service-account file used when none is configured.
const DefaultCredentialsFile = "service_account.json"

// Config is everything a seeding run needs to build its clients.
// It is constructed once at process entry and passed down explicitly.
type Config struct {
	// AI configures the text generation provider.
	AI *ai.Config

	// Backend selects the document store: BackendFirestore or BackendBadger.
	Backend string

	// CredentialsFile is the service-account JSON used for every Google
	// client (Firestore, Secret Manager, Cloud Storage). Empty means
	// Application Default Credentials.
	CredentialsFile string

	// ProjectID overrides the project from the credentials file.
	ProjectID string

	// DBPath is the badger directory. Required for BackendBadger.
	DBPath string

	// APIKeySecret names a Secret Manager secret holding the API key.
	// Consulted only when AI.APIKey is empty.
	APIKeySecret string

	// ArchiveBucket is a Cloud Storage bucket for raw responses.
	// Empty disables archiving.
	ArchiveBucket string

	// RepairJSON enables the key-quote repair pass before decoding.
	RepairJSON bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAIConfig sets the generation provider configuration.
func WithAIConfig(cfg *ai.Config) ConfigOption {
	return func(c *Config) {
		c.AI = cfg
	}
}

// WithBackend selects the document store backend.
func WithBackend(backend string) ConfigOption {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithCredentialsFile sets the service-account file.
func WithCredentialsFile(path string) ConfigOption {
	return func(c *Config) {
		c.CredentialsFile = path
	}
}

// WithProjectID sets the Google Cloud project.
func WithProjectID(project string) ConfigOption {
	return func(c *Config) {
		c.ProjectID = project
	}
}

// WithDBPath sets the badger directory.
func WithDBPath(path string) ConfigOption {
	return func(c *Config) {
		c.DBPath = path
	}
}

// WithAPIKeySecret names the Secret Manager secret holding the API key.
func WithAPIKeySecret(ref string) ConfigOption {
	return func(c *Config) {
		c.APIKeySecret = ref
	}
}

// WithArchiveBucket enables raw response archiving into bucket.
func WithArchiveBucket(bucket string) ConfigOption {
	return func(c *Config) {
		c.ArchiveBucket = bucket
	}
}

// WithRepairJSON toggles the key-quote repair pass.
func WithRepairJSON(enabled bool) ConfigOption {
	return func(c *Config) {
		c.RepairJSON = enabled
	}
}

// DefaultConfig returns a Config that seeds Firestore using
// service_account.json and Gemini.
func DefaultConfig() *Config {
	return &Config{
		AI:              ai.DefaultConfig(),
		Backend:         BackendFirestore,
		CredentialsFile: DefaultCredentialsFile,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize trims and lowercases the free-form fields.
func (c *Config) Normalize() {
	if c.AI == nil {
		c.AI = ai.DefaultConfig()
	}
	c.AI.Normalize()

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.CredentialsFile = strings.TrimSpace(c.CredentialsFile)
	c.ProjectID = strings.TrimSpace(c.ProjectID)
	c.DBPath = strings.TrimSpace(c.DBPath)
	c.APIKeySecret = strings.TrimSpace(c.APIKeySecret)
	c.ArchiveBucket = strings.TrimSpace(c.ArchiveBucket)
}

// NeedsSecretKey reports whether the API key has to be fetched from Secret Manager.
func (c *Config) NeedsSecretKey() bool {
	return c.AI != nil && c.AI.APIKey == "" && c.APIKeySecret != ""
}

// Validate checks the configuration without any I/O.
// A missing API key is reported as ai.ErrMissingAPIKey unless a secret
// reference is configured to supply it.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Backend {
	case BackendFirestore:
	case BackendBadger:
		if c.DBPath == "" {
			return ErrMissingDBPath
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	aiCfg := *c.AI
	if c.NeedsSecretKey() {
		// Placeholder so the remaining AI fields are still checked
		aiCfg.APIKey = "from-secret"
	}
	return aiCfg.Validate()
}
