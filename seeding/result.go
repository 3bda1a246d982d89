package seeding

import (
	"time"

	"github.com/riftforge/riftseed/core"
)

// State is the stage a pipeline run reached.
type State int

const (
	StateUninitialized State = iota
	StateClientsReady
	StateResponseReceived
	StateParsed
	StateStaged
	StateCommitted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateClientsReady:
		return "clients-ready"
	case StateResponseReceived:
		return "response-received"
	case StateParsed:
		return "parsed"
	case StateStaged:
		return "staged"
	case StateCommitted:
		return "committed"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Result summarizes one pipeline run. A run that returns an error still
// returns its Result with State set to StateAborted.
type Result struct {
	Kind       core.Kind
	Collection string
	RunID      core.RunID // fingerprint of the raw response, zero before one arrives
	State      State

	Generated int // entries in the decoded array
	Qualified int // entries that passed qualification
	Skipped   int // entries that were not uploadable
	Staged    int // distinct documents in the batch

	Elapsed time.Duration
}

// Committed reports whether the batch landed.
func (r *Result) Committed() bool {
	return r != nil && r.State == StateCommitted
}
