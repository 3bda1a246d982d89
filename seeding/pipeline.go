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


package seeding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riftforge/riftseed/ai"
	"github.com/riftforge/riftseed/archive"
	"github.com/riftforge/riftseed/core"
	"github.com/riftforge/riftseed/response"
	"github.com/riftforge/riftseed/storage"
)

// Pipeline generates, validates and uploads records of one kind per run.
// A Pipeline holds no per-run state, so separate runs may execute concurrently.
type Pipeline struct {
	store          storage.DocumentStore
	generator      ai.Generator
	archiver       archive.Archiver
	parseOpts      []response.Option
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithArchiver keeps a copy of every raw response.
// Default discards them.
func WithArchiver(a archive.Archiver) Option {
	return func(p *Pipeline) error {
		if a == nil {
			a = archive.Nop{}
		}
		p.archiver = a
		return nil
	}
}

// WithRepair enables the key-quote repair pass before decoding.
func WithRepair() Option {
	return func(p *Pipeline) error {
		p.parseOpts = append(p.parseOpts, response.WithRepair())
		return nil
	}
}

// WithProgress writes progress lines to w.
// Default is io.Discard.
func WithProgress(w io.Writer, reportInterval int) Option {
	return func(p *Pipeline) error {
		if w == nil {
			w = io.Discard
		}
		if reportInterval < 1 {
			return fmt.Errorf("report interval must be positive, got %d", reportInterval)
		}
		p.progress = w
		p.reportInterval = reportInterval
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "seeding")
		return nil
	}
}

// NewPipeline creates a pipeline over ready clients.
func NewPipeline(store storage.DocumentStore, generator ai.Generator, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	p := &Pipeline{
		store:          store,
		generator:      generator,
		archiver:       archive.Nop{},
		progress:       io.Discard,
		reportInterval: 5,
		logger:         slog.Default().With("component", "seeding"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run executes one generate-validate-upload cycle for kind.
//
// The run is all or nothing on the store side: either the single batch
// commits, or the run aborts before or at commit and nothing is written.
// The returned Result is non-nil whenever kind is valid, even on error.
func (p *Pipeline) Run(ctx context.Context, kind core.Kind) (*Result, error) {
	prompt, err := PromptFor(kind)
	if err != nil {
		return nil, err
	}

	collection := kind.Collection()
	result := &Result{Kind: kind, Collection: collection, State: StateClientsReady}
	logger := p.logger.With("kind", kind.String(), "collection", collection)

	start := time.Now()
	defer func() { result.Elapsed = time.Since(start) }()

	abort := func(err error) (*Result, error) {
		result.State = StateAborted
		return result, err
	}

	logger.Info("generating records")
	raw, err := p.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Error("generation failed", "err", err)
		return abort(fmt.Errorf("%w: %w", ErrGenerationFailed, err))
	}
	result.State = StateResponseReceived
	result.RunID = core.RunIDFromContent(raw)
	logger = logger.With("run", result.RunID.String())

	if err := p.archiver.Archive(ctx, collection, result.RunID, raw); err != nil {
		logger.Warn("failed to archive raw response", "err", err)
	}

	entries, err := response.Parse(raw, p.parseOpts...)
	if err != nil {
		logger.Error("could not decode model response", "err", err, "raw", raw)
		return abort(err)
	}
	result.State = StateParsed
	result.Generated = len(entries)
	logger.Info("decoded model response", "entries", len(entries))

	batch := p.store.NewBatch(collection)
	tracker := NewProgressTracker(p.progress, collection, len(entries), p.reportInterval)
	tracker.Start()

	for i, entry := range entries {
		record, err := core.Qualify(entry)
		if err != nil {
			logger.Warn("skipping invalid entry", "index", i, "reason", err, "entry", entry)
			result.Skipped++
			tracker.Increment(1)
			continue
		}

		for _, issue := range core.Inspect(kind, record) {
			logger.Debug("record deviates from schema", "id", record.ID, "issue", issue)
		}

		batch.Set(record.ID, record.Data)
		result.Qualified++
		tracker.Increment(1)
	}

	result.Staged = batch.Len()
	result.State = StateStaged
	tracker.Finish(result.Staged, result.Skipped)

	if err := batch.Commit(ctx); err != nil {
		logger.Error("batch commit failed", "staged", result.Staged, "err", err)
		return abort(&CommitError{Collection: collection, Staged: result.Staged, Err: err})
	}

	result.State = StateCommitted
	logger.Info("uploaded records", "count", result.Staged, "skipped", result.Skipped)
	return result, nil
}

// RunAll runs one pipeline per kind on a pool of parallel workers.
// With parallel 1 the kinds run sequentially in order. Every kind runs even
// if an earlier one fails; the errors are joined.
func (p *Pipeline) RunAll(ctx context.Context, kinds []core.Kind, parallel int) ([]*Result, error) {
	if parallel < 1 {
		parallel = 1
	}

	pool, err := ants.NewPool(parallel)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]*Result, len(kinds))
	errs := make([]error, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = p.Run(ctx, kind)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("schedule %s run: %w", kind, submitErr)
		}
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
