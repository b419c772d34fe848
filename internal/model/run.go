package model

import "time"

// RunKind identifies which pipeline produced a ledger entry.
type RunKind string

const (
	// RunKindExtract is an archive classification run.
	RunKindExtract RunKind = "EXTRACT"
	// RunKindPrune is a vendor pruning run.
	RunKindPrune RunKind = "PRUNE"
)

// RunStatus summarizes how a run ended.
type RunStatus string

const (
	// RunStatusComplete means every step succeeded.
	RunStatusComplete RunStatus = "COMPLETE"
	// RunStatusPartial means a prune finished with some vendors left behind.
	RunStatusPartial RunStatus = "PARTIAL"
)

// Run is a ledger entry describing one extract or prune invocation.
type Run struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Counts     map[string]int
	ID         string
	Source     string
	Root       string
	Kind       RunKind
	Status     RunStatus
	Total      int
	Failures   int
}
