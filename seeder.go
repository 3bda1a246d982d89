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
	"context"
	"errors"
	"log/slog"

	"github.com/riftforge/riftseed/ai"
	"github.com/riftforge/riftseed/ai/googleai"
	"github.com/riftforge/riftseed/ai/openai"
	"github.com/riftforge/riftseed/archive"
	"github.com/riftforge/riftseed/core"
	"github.com/riftforge/riftseed/secrets"
	"github.com/riftforge/riftseed/seeding"
	"github.com/riftforge/riftseed/storage"
	"github.com/riftforge/riftseed/storage/badger"
	firestorestore "github.com/riftforge/riftseed/storage/firestore"
	"google.golang.org/api/option"
)

type keyResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
	Close() error
}

var newKeyResolver = func(ctx context.Context, project string, opts ...option.ClientOption) (keyResolver, error) {
	return secrets.NewResolver(ctx, project, opts...)
}

// Seeder owns the clients a seeding run needs.
type Seeder struct {
	config   *Config
	store    storage.DocumentStore
	provider ai.AIProvider
	archiver archive.Archiver
	logger   *slog.Logger
}

// NewSeeder validates cfg and builds the store and generator clients.
// Every failure is an *InitializationError; nothing is generated or
// written before NewSeeder returns successfully.
func NewSeeder(ctx context.Context, cfg *Config) (*Seeder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if cfg.AI != nil {
		aiCfg := *cfg.AI
		c.AI = &aiCfg
	}

	if err := c.Validate(); err != nil {
		return nil, &InitializationError{Stage: StageConfig, Err: err}
	}

	logger := slog.Default().With("component", "seeder")
	clientOpts := firestorestore.Config{CredentialsFile: c.CredentialsFile}.ClientOptions()

	if c.NeedsSecretKey() {
		key, err := resolveAPIKey(ctx, &c, clientOpts)
		if err != nil {
			return nil, &InitializationError{Stage: StageSecret, Err: err}
		}
		c.AI.APIKey = key
		logger.Info("API key loaded from Secret Manager")
	}

	store, err := openStore(ctx, &c)
	if err != nil {
		return nil, &InitializationError{Stage: StageStore, Err: err}
	}
	logger.Info("document store initialized", "backend", c.Backend)

	provider, err := newProvider(ctx, c.AI)
	if err != nil {
		store.Close()
		return nil, &InitializationError{Stage: StageGenerator, Err: err}
	}
	logger.Info("generator initialized", "provider", c.AI.Provider, "model", provider.Model())

	var archiver archive.Archiver = archive.Nop{}
	if c.ArchiveBucket != "" {
		bucket, err := archive.NewBucket(ctx, c.ArchiveBucket, clientOpts...)
		if err != nil {
			provider.Close()
			store.Close()
			return nil, &InitializationError{Stage: StageArchive, Err: err}
		}
		archiver = bucket
		logger.Info("archiving raw responses", "bucket", c.ArchiveBucket)
	}

	return &Seeder{
		config:   &c,
		store:    store,
		provider: provider,
		archiver: archiver,
		logger:   logger,
	}, nil
}

// NewSeederFromClients wraps clients that were built elsewhere.
// A nil archiver disables archiving.
func NewSeederFromClients(cfg *Config, store storage.DocumentStore, provider ai.AIProvider, archiver archive.Archiver) *Seeder {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if archiver == nil {
		archiver = archive.Nop{}
	}
	return &Seeder{
		config:   cfg,
		store:    store,
		provider: provider,
		archiver: archiver,
		logger:   slog.Default().With("component", "seeder"),
	}
}

func resolveAPIKey(ctx context.Context, c *Config, opts []option.ClientOption) (string, error) {
	resolver, err := newKeyResolver(ctx, c.ProjectID, opts...)
	if err != nil {
		return "", err
	}
	defer resolver.Close()

	return resolver.Resolve(ctx, c.APIKeySecret)
}

func openStore(ctx context.Context, c *Config) (storage.DocumentStore, error) {
	switch c.Backend {
	case BackendBadger:
		store, err := badger.OpenStore(c.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendFirestore:
		return firestorestore.NewStore(ctx, firestorestore.Config{
			ProjectID:       c.ProjectID,
			CredentialsFile: c.CredentialsFile,
		})
	}
	return nil, ErrUnknownBackend
}

func newProvider(ctx context.Context, cfg *ai.Config) (ai.AIProvider, error) {
	switch cfg.Provider {
	case ai.ProviderGoogleAI:
		return googleai.NewProvider(ctx, cfg)
	case ai.ProviderOpenAI:
		return openai.NewProvider(cfg)
	}
	return nil, ai.ErrUnknownProvider
}

// Config returns the resolved configuration.
func (s *Seeder) Config() *Config {
	return s.config
}

// Store returns the document store.
func (s *Seeder) Store() storage.DocumentStore {
	return s.store
}

// Provider returns the generation provider.
func (s *Seeder) Provider() ai.AIProvider {
	return s.provider
}

// NewPipeline builds a pipeline over the seeder's clients. The archiver and
// repair setting come from the config; opts are applied after them.
func (s *Seeder) NewPipeline(opts ...seeding.Option) (*seeding.Pipeline, error) {
	base := []seeding.Option{seeding.WithArchiver(s.archiver)}
	if s.config.RepairJSON {
		base = append(base, seeding.WithRepair())
	}
	return seeding.NewPipeline(s.store, s.provider.Generator(), append(base, opts...)...)
}

// Seed runs the pipeline for a single kind.
func (s *Seeder) Seed(ctx context.Context, kind core.Kind, opts ...seeding.Option) (*seeding.Result, error) {
	pipeline, err := s.NewPipeline(opts...)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx, kind)
}

// Close releases every client. All are closed even if one fails.
func (s *Seeder) Close() error {
	var errs []error

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing generation provider", "err", err)
		errs = append(errs, err)
	}
	if err := s.archiver.Close(); err != nil {
		s.logger.Error("error closing archive client", "err", err)
		errs = append(errs, err)
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing document store", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
