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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/riftforge/riftseed/storage"
)

// Store implements storage.DocumentStore and storage.DocumentReader on BadgerDB.
type Store struct {
	backend *Backend
	owned   bool
}

var (
	_ storage.DocumentStore  = (*Store)(nil)
	_ storage.DocumentReader = (*Store)(nil)
)

// NewStore creates a document store on an existing backend.
// The caller keeps ownership of the backend; Close does not close it.
func NewStore(backend *Backend) *Store {
	return &Store{backend: backend}
}

// OpenStore opens a backend at dirPath and returns a store that owns it.
func OpenStore(dirPath string) (*Store, error) {
	backend, err := OpenBackend(dirPath, false)
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend, owned: true}, nil
}

// NewBatch opens a write batch bound to collection.
func (s *Store) NewBatch(collection string) storage.Batch {
	return &Batch{
		store:      s,
		collection: collection,
		staged:     make(map[string]map[string]any),
	}
}

// Close closes the backend when the store owns it.
func (s *Store) Close() error {
	if s.owned && !s.backend.IsClosed() {
		return s.backend.Close()
	}
	return nil
}

// GetDocument retrieves a single document.
func (s *Store) GetDocument(ctx context.Context, collection, id string) (*storage.Document, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var doc *storage.Document
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocumentKey(collection, id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			doc, unmarshalErr = storage.UnmarshalDocument(val)
			return unmarshalErr
		})
	}, false)

	return doc, err
}

// ListDocuments returns all documents in collection in key order.
func (s *Store) ListDocuments(ctx context.Context, collection string) ([]*storage.Document, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var docs []*storage.Document
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeCollectionPrefix(collection)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := iter.Item().Value(func(val []byte) error {
				doc, err := storage.UnmarshalDocument(val)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	return docs, err
}

// Batch stages writes in memory and commits them in one badger transaction.
type Batch struct {
	store      *Store
	collection string
	order      []string
	staged     map[string]map[string]any
	committed  bool
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

// Commit writes all staged documents atomically.
func (b *Batch) Commit(ctx context.Context) error {
	if b.committed {
		return storage.ErrBatchCommitted
	}
	if b.collection == "" {
		return storage.ErrEmptyCollection
	}
	if b.store.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now().UTC()
	err := b.store.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range b.order {
			value, err := storage.MarshalDocument(&storage.Document{
				Collection: b.collection,
				ID:         id,
				Data:       b.staged[id],
				WrittenAt:  now,
			})
			if err != nil {
				return err
			}
			if err := tx.Set(makeDocumentKey(b.collection, id), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	b.committed = true
	b.store.backend.logger.Debug("batch committed", "collection", b.collection, "count", len(b.order))
	return nil
}
