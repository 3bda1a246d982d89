package storage

import "context"

// DocumentStore is the write side of a document database.
// Implementations must be safe for concurrent use; individual batches are not.
type DocumentStore interface {
	// NewBatch opens an empty write batch bound to a collection.
	NewBatch(collection string) Batch

	// Close releases the store's client resources.
	Close() error
}

// Batch stages set operations and commits them as one atomic group write.
// A Batch is used by a single goroutine and committed at most once.
type Batch interface {
	// Set stages a full overwrite of document id with data.
	// Staging the same id twice keeps the later data.
	Set(id string, data map[string]any)

	// Len returns the number of distinct documents staged.
	Len() int

	// Commit writes every staged document in one operation.
	// Either all writes land or none do. Returns ErrBatchCommitted on reuse.
	Commit(ctx context.Context) error
}

// DocumentReader reads documents back. Only local backends implement it;
// riftseed never reads from production stores.
type DocumentReader interface {
	// GetDocument returns the stored data for id.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, collection, id string) (*Document, error)

	// ListDocuments returns every document in a collection ordered by id.
	ListDocuments(ctx context.Context, collection string) ([]*Document, error)
}
