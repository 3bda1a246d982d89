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


// Package storage provides the document-store abstraction used by riftseed.
//
// The seeding pipeline only needs a narrow write path: open a batch for a
// collection, stage set operations keyed by document id, commit once.
// DocumentStore and Batch capture exactly that, so Firestore and the local
// BadgerDB store are interchangeable.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage interfaces:
//
//	store, err := firestore.NewStore(ctx, cfg)  // returns storage.DocumentStore
//
// # Backends
//
//   - storage/firestore: Cloud Firestore through the Firebase Admin SDK (production)
//   - storage/badger: BadgerDB on disk or in memory (local runs and tests)
//
// # Usage
//
//	batch := store.NewBatch("items")
//	batch.Set("potion_health_small", data)
//	if err := batch.Commit(ctx); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Stores are safe for concurrent use. A Batch belongs to one goroutine.
package storage
