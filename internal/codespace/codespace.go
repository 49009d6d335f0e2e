// Package codespace holds the normalized codespace model and the pure
// filter/sort/format stages of the listing pipeline.
package codespace

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/JVenberg/CodespaceInfoCLI/internal/api"
)

// Codespace is a normalized record. Records are immutable after
// normalization; filtering and sorting only select and reorder.
type Codespace struct {
	ID          string
	DisplayName string
	Repository  string // owner/repo
	State       string // provider state, passed through verbatim
	ExpiresAt   *time.Time
	LastUsedAt  *time.Time
	Machine     *Machine // nil when the provider omitted machine details
	GitStatus   *GitStatus
}

// Machine describes the compute backing a codespace.
type Machine struct {
	DisplayName string
	CPUs        int
	MemoryGB    int
	StorageGB   int
}

// GitStatus summarizes the working tree state inside a codespace.
type GitStatus struct {
	Ahead                 int
	Behind                int
	HasUnpushedChanges    bool
	HasUncommittedChanges bool
	Ref                   string
}

// InvalidRecordError marks a single record that failed normalization.
// Callers skip the record and continue with the rest of the fetch.
type InvalidRecordError struct {
	ID     string // best-effort identifier, may be empty
	Reason string
}

func (e *InvalidRecordError) Error() string {
	if e.ID == "" {
		return "invalid codespace record: " + e.Reason
	}
	return fmt.Sprintf("invalid codespace record %s: %s", e.ID, e.Reason)
}

const bytesPerGB = 1024 * 1024 * 1024

// Normalize converts a raw API record into a Codespace, validating required
// fields and parsing timestamps. Missing optional fields stay nil; a missing
// required field or an unparsable timestamp fails the record.
func Normalize(raw api.Codespace) (Codespace, error) {
	id := ""
	if raw.ID != 0 {
		id = strconv.FormatInt(raw.ID, 10)
	}

	switch {
	case id == "":
		return Codespace{}, &InvalidRecordError{ID: raw.Name, Reason: "missing id"}
	case raw.DisplayName == "":
		return Codespace{}, &InvalidRecordError{ID: id, Reason: "missing display_name"}
	case raw.Repository.FullName == "":
		return Codespace{}, &InvalidRecordError{ID: id, Reason: "missing repository full name"}
	case raw.State == "":
		return Codespace{}, &InvalidRecordError{ID: id, Reason: "missing state"}
	}

	expiresAt, err := parseTimestamp(raw.RetentionExpiresAt)
	if err != nil {
		return Codespace{}, &InvalidRecordError{ID: id, Reason: "bad retention_expires_at: " + err.Error()}
	}
	lastUsedAt, err := parseTimestamp(raw.LastUsedAt)
	if err != nil {
		return Codespace{}, &InvalidRecordError{ID: id, Reason: "bad last_used_at: " + err.Error()}
	}

	cs := Codespace{
		ID:          id,
		DisplayName: raw.DisplayName,
		Repository:  raw.Repository.FullName,
		State:       raw.State,
		ExpiresAt:   expiresAt,
		LastUsedAt:  lastUsedAt,
	}

	if raw.Machine != nil {
		cs.Machine = &Machine{
			DisplayName: raw.Machine.DisplayName,
			CPUs:        raw.Machine.CPUs,
			MemoryGB:    int(raw.Machine.MemoryInBytes / bytesPerGB),
			StorageGB:   int(raw.Machine.StorageInBytes / bytesPerGB),
		}
	}
	if raw.GitStatus != nil {
		cs.GitStatus = &GitStatus{
			Ahead:                 raw.GitStatus.Ahead,
			Behind:                raw.GitStatus.Behind,
			HasUnpushedChanges:    raw.GitStatus.HasUnpushedChanges,
			HasUncommittedChanges: raw.GitStatus.HasUncommittedChanges,
			Ref:                   raw.GitStatus.Ref,
		}
	}

	return cs, nil
}

// NormalizeAll normalizes every raw record, skipping invalid ones so a
// single malformed record cannot hide all valid ones. Each skip is logged.
// Returns the normalized records in fetch order and the number skipped.
func NormalizeAll(raws []api.Codespace, logger *slog.Logger) ([]Codespace, int) {
	records := make([]Codespace, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		cs, err := Normalize(raw)
		if err != nil {
			skipped++
			if logger != nil {
				logger.Warn("skipping codespace record", "error", err)
			}
			continue
		}
		records = append(records, cs)
	}
	return records, skipped
}

// parseTimestamp parses an RFC 3339 timestamp. Empty input means the field
// was absent and maps to nil, not an error.
func parseTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
