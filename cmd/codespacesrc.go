package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
)

// rcFile holds flag defaults loaded from a .codespacesrc file. Pointer
// fields distinguish "not set" from zero values.
type rcFile struct {
	Days  *int    `json:"days"`
	Repo  *string `json:"repo"`
	State *string `json:"state"`
	JSON  *bool   `json:"json"`
}

// loadRC reads a .codespacesrc file from cwd. Returns nil, nil if not found.
// The format is JSONC, so comments and trailing commas are allowed.
func loadRC() (*rcFile, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return loadRCFrom(filepath.Join(cwd, ".codespacesrc"))
}

// loadRCFrom parses the rc file at the given path. Useful for testing.
func loadRCFrom(path string) (*rcFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rc := &rcFile{}
	if err := json.Unmarshal(jsonc.ToJSON(data), rc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rc, nil
}

// applyRC copies rc values into flags the user did not set on the command
// line, so explicit flags always win over file defaults.
func applyRC(flags *pflag.FlagSet, rc *rcFile) {
	if rc.Days != nil && !flags.Changed("days") {
		// Set through the flag so Changed reports true and the
		// expiration filter engages.
		_ = flags.Set("days", strconv.Itoa(*rc.Days))
	}
	if rc.Repo != nil && !flags.Changed("repo") {
		repoFlag = *rc.Repo
	}
	if rc.State != nil && !flags.Changed("state") {
		stateFlag = *rc.State
	}
	if rc.JSON != nil && !flags.Changed("json") {
		jsonFlag = *rc.JSON
	}
}
