package codespace

import "time"

// Document is the machine-readable output shape, one per record. Field
// names and null handling are a scriptable contract: "expires_at" and
// "expires_in" are null for records that do not expire, "last_used_at" is
// null when the provider never reported use, "machine" is null when the
// provider omitted machine details.
type Document struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"display_name"`
	Repository  string           `json:"repository"`
	State       string           `json:"state"`
	ExpiresAt   *time.Time       `json:"expires_at"`
	ExpiresIn   *string          `json:"expires_in"`
	LastUsedAt  *time.Time       `json:"last_used_at"`
	Machine     *MachineDocument `json:"machine"`
	GitStatus   string           `json:"git_status"`
}

// MachineDocument is the machine descriptor inside a Document.
type MachineDocument struct {
	DisplayName string `json:"display_name"`
	CPUs        int    `json:"cpus"`
	MemoryGB    int    `json:"memory_gb"`
	StorageGB   int    `json:"storage_gb"`
}

// Documents builds the structured output for an already filtered and sorted
// record sequence. It never re-filters or re-sorts.
func Documents(records []Codespace, now time.Time) []Document {
	docs := make([]Document, 0, len(records))
	for _, cs := range records {
		doc := Document{
			ID:          cs.ID,
			DisplayName: cs.DisplayName,
			Repository:  cs.Repository,
			State:       cs.State,
			ExpiresAt:   cs.ExpiresAt,
			LastUsedAt:  cs.LastUsedAt,
			GitStatus:   FormatGitStatus(cs.GitStatus),
		}
		if cs.ExpiresAt != nil {
			in := ExpiresIn(*cs.ExpiresAt, now)
			doc.ExpiresIn = &in
		}
		if cs.Machine != nil {
			doc.Machine = &MachineDocument{
				DisplayName: cs.Machine.DisplayName,
				CPUs:        cs.Machine.CPUs,
				MemoryGB:    cs.Machine.MemoryGB,
				StorageGB:   cs.Machine.StorageGB,
			}
		}
		docs = append(docs, doc)
	}
	return docs
}
