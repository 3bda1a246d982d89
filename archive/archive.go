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


package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/riftforge/riftseed/core"
	"google.golang.org/api/option"
)

// ErrEmptyBucket indicates a bucket archiver was requested without a bucket name.
var ErrEmptyBucket = errors.New("archive bucket name is empty")

// Archiver keeps a copy of a raw model response.
type Archiver interface {
	// Archive stores raw under collection for the given run.
	Archive(ctx context.Context, collection string, runID core.RunID, raw string) error

	// Close releases the underlying client.
	Close() error
}

// ObjectPath returns the object name a response is archived under.
func ObjectPath(collection string, runID core.RunID) string {
	return collection + "/" + runID.String() + ".txt"
}

type writerFunc func(ctx context.Context, object string) io.WriteCloser

// Bucket archives responses as text objects in a Cloud Storage bucket.
type Bucket struct {
	name      string
	newWriter writerFunc
	close     func() error
	logger    *slog.Logger
}

// NewBucket opens a Cloud Storage client writing into bucket.
func NewBucket(ctx context.Context, bucket string, opts ...option.ClientOption) (*Bucket, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, ErrEmptyBucket
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client init failed: %w", err)
	}

	bh := client.Bucket(bucket)
	newWriter := func(ctx context.Context, object string) io.WriteCloser {
		w := bh.Object(object).NewWriter(ctx)
		w.ContentType = "text/plain; charset=utf-8"
		return w
	}

	return newBucket(bucket, newWriter, client.Close), nil
}

func newBucket(name string, newWriter writerFunc, closeFn func() error) *Bucket {
	return &Bucket{
		name:      name,
		newWriter: newWriter,
		close:     closeFn,
		logger:    slog.Default().With("component", "response-archive"),
	}
}

// Archive writes raw to gs://<bucket>/<collection>/<runID>.txt.
// The object is only created once the writer closes cleanly.
func (b *Bucket) Archive(ctx context.Context, collection string, runID core.RunID, raw string) error {
	object := ObjectPath(collection, runID)

	w := b.newWriter(ctx, object)
	if _, err := io.WriteString(w, raw); err != nil {
		_ = w.Close()
		return fmt.Errorf("write gs://%s/%s: %w", b.name, object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close gs://%s/%s: %w", b.name, object, err)
	}

	b.logger.Info("archived raw response", "bucket", b.name, "object", object, "bytes", len(raw))
	return nil
}

// Close releases the Cloud Storage client.
func (b *Bucket) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Nop discards everything. It is used when no bucket is configured.
type Nop struct{}

func (Nop) Archive(context.Context, string, core.RunID, string) error { return nil }

func (Nop) Close() error { return nil }
