// Package auth resolves the GitHub access token for API calls.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar is the environment variable consulted when no explicit token is
// given.
const EnvVar = "GITHUB_TOKEN"

const envFileName = ".env"

// ErrNoToken is returned when no token is found in any source. The CLI
// layer attaches usage guidance when presenting it.
var ErrNoToken = errors.New("no GitHub token found")

// Resolve returns the token to use, in precedence order: the explicit value,
// the GITHUB_TOKEN environment variable, then a .env file in the working
// directory. The token is not validated locally; a bad token surfaces as an
// authentication failure from the API.
func Resolve(explicit string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return ResolveIn(explicit, cwd)
}

// ResolveIn is Resolve with an explicit directory for the .env lookup.
// Useful for testing.
func ResolveIn(explicit, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if v := os.Getenv(EnvVar); v != "" {
		return v, nil
	}

	token, err := tokenFromEnvFile(filepath.Join(dir, envFileName))
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	return "", ErrNoToken
}

// tokenFromEnvFile reads GITHUB_TOKEN from a dotenv-style key=value file.
// Returns "" if the file does not exist or has no entry. Lines starting
// with # are comments; values may be single- or double-quoted.
func tokenFromEnvFile(path string) (string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) != EnvVar {
			continue
		}
		val = strings.TrimSpace(val)
		val = strings.Trim(val, `"'`)
		if val != "" {
			return val, nil
		}
	}
	return "", scanner.Err()
}
