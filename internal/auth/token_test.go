package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestResolveIn_ExplicitWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, "from-env")
	writeEnvFile(t, dir, "GITHUB_TOKEN=from-file\n")

	got, err := ResolveIn("from-flag", dir)
	if err != nil {
		t.Fatalf("ResolveIn() error = %v", err)
	}
	if got != "from-flag" {
		t.Errorf("token = %q, want explicit value to win", got)
	}
}

func TestResolveIn_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, "from-env")
	writeEnvFile(t, dir, "GITHUB_TOKEN=from-file\n")

	got, err := ResolveIn("", dir)
	if err != nil {
		t.Fatalf("ResolveIn() error = %v", err)
	}
	if got != "from-env" {
		t.Errorf("token = %q, want environment to beat the file", got)
	}
}

func TestResolveIn_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, "")
	writeEnvFile(t, dir, "# local secrets\nOTHER=x\nGITHUB_TOKEN=\"from-file\"\n")

	got, err := ResolveIn("", dir)
	if err != nil {
		t.Fatalf("ResolveIn() error = %v", err)
	}
	if got != "from-file" {
		t.Errorf("token = %q, want quoted file value", got)
	}
}

func TestResolveIn_NoTokenAnywhere(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, "")

	_, err := ResolveIn("", dir)
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("ResolveIn() error = %v, want ErrNoToken", err)
	}
}

func TestResolveIn_FileWithoutEntry(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, "")
	writeEnvFile(t, dir, "SOMETHING_ELSE=1\n")

	_, err := ResolveIn("", dir)
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("ResolveIn() error = %v, want ErrNoToken", err)
	}
}
