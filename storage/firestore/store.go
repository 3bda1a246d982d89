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


package firestore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/riftforge/riftseed/storage"
	"google.golang.org/api/option"
)

// Config selects the Firebase project and credentials.
type Config struct {
	// ProjectID is the Firebase/GCP project. When empty the project is taken
	// from the credentials file or GOOGLE_CLOUD_PROJECT.
	ProjectID string

	// CredentialsFile is a service-account JSON path. When empty,
	// Application Default Credentials are used.
	CredentialsFile string
}

// ClientOptions returns the Google API client options implied by the config.
// Other Google clients (Secret Manager, Cloud Storage) share them.
func (c Config) ClientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if path := strings.TrimSpace(c.CredentialsFile); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	return opts
}

// Store implements storage.DocumentStore on Cloud Firestore.
type Store struct {
	client *fs.Client
	logger *slog.Logger
}

var _ storage.DocumentStore = (*Store)(nil)

// NewStore initializes a Firebase app and its Firestore client.
// Credential and project problems surface here, before any write.
func NewStore(ctx context.Context, cfg Config) (storage.DocumentStore, error) {
	logger := slog.Default().With("component", "firestore-store")

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	opts := cfg.ClientOptions()
	if len(opts) > 0 {
		logger.Debug("using credentials file", "path", cfg.CredentialsFile)
	} else {
		logger.Debug("using application default credentials")
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app init failed: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client init failed: %w", err)
	}

	logger.Info("Firestore client initialized", "project", cfg.ProjectID)
	return &Store{client: client, logger: logger}, nil
}

// NewStoreFromClient wraps an existing Firestore client.
func NewStoreFromClient(client *fs.Client) *Store {
	return &Store{
		client: client,
		logger: slog.Default().With("component", "firestore-store"),
	}
}

// NewBatch opens a write batch bound to collection.
func (s *Store) NewBatch(collection string) storage.Batch {
	return &Batch{
		client:     s.client,
		collection: collection,
		staged:     make(map[string]map[string]any),
		logger:     s.logger,
	}
}

// Close closes the Firestore client.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Batch stages writes and commits them as one Firestore WriteBatch.
// Firestore applies a WriteBatch atomically.
type Batch struct {
	client     *fs.Client
	collection string
	order      []string
	staged     map[string]map[string]any
	committed  bool
	logger     *slog.Logger
}

var _ storage.Batch = (*Batch)(nil)

// Set stages data under id, replacing anything staged earlier for id.
func (b *Batch) Set(id string, data map[string]any) {
	if _, exists := b.staged[id]; !exists {
		b.order = append(b.order, id)
	}
	b.staged[id] = data
}

// Len returns the number of distinct documents staged.
func (b *Batch) Len() int {
	return len(b.staged)
}

// Commit writes every staged document in a single round trip.
// An empty batch commits nothing and succeeds.
func (b *Batch) Commit(ctx context.Context) error {
	if b.committed {
		return storage.ErrBatchCommitted
	}
	if b.collection == "" {
		return storage.ErrEmptyCollection
	}
	if len(b.order) == 0 {
		b.committed = true
		return nil
	}

	col := b.client.Collection(b.collection)
	wb := b.client.Batch()
	for _, id := range b.order {
		wb.Set(col.Doc(id), b.staged[id])
	}

	results, err := wb.Commit(ctx)
	if err != nil {
		return err
	}

	b.committed = true
	b.logger.Debug("batch committed", "collection", b.collection, "count", len(results))
	return nil
}
