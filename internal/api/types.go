package api

// listResponse is the envelope returned by the codespaces listing endpoint.
type listResponse struct {
	TotalCount int         `json:"total_count"`
	Codespaces []Codespace `json:"codespaces"`
}

// Codespace is the raw wire shape of a codespace record as returned by the
// GitHub API. Timestamps stay as strings here; parsing and validation happen
// during normalization so one bad record cannot fail the whole fetch.
type Codespace struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	DisplayName        string     `json:"display_name"`
	State              string     `json:"state"`
	Repository         Repository `json:"repository"`
	RetentionExpiresAt string     `json:"retention_expires_at"`
	LastUsedAt         string     `json:"last_used_at"`
	Machine            *Machine   `json:"machine"`
	GitStatus          *GitStatus `json:"git_status"`
}

// Repository identifies the repository a codespace was created from.
type Repository struct {
	FullName string `json:"full_name"`
}

// Machine describes the compute backing a codespace.
type Machine struct {
	DisplayName    string `json:"display_name"`
	CPUs           int    `json:"cpus"`
	MemoryInBytes  int64  `json:"memory_in_bytes"`
	StorageInBytes int64  `json:"storage_in_bytes"`
}

// GitStatus summarizes the working tree state inside a codespace.
type GitStatus struct {
	Ahead                 int    `json:"ahead"`
	Behind                int    `json:"behind"`
	HasUnpushedChanges    bool   `json:"has_unpushed_changes"`
	HasUncommittedChanges bool   `json:"has_uncommitted_changes"`
	Ref                   string `json:"ref"`
}
