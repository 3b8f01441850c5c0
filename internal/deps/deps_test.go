package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestDefaults(t *testing.T) {
	reqs := Defaults("")
	if len(reqs) != 1 || reqs[0].Command != "yt-dlp" {
		t.Fatalf("unexpected default requirements: %#v", reqs)
	}
	reqs = Defaults("/opt/tools/yt-dlp")
	if reqs[0].Command != "/opt/tools/yt-dlp" {
		t.Fatalf("custom binary not honored: %#v", reqs)
	}
}

func TestAvailable(t *testing.T) {
	if Available("") {
		t.Fatal("empty command must not resolve")
	}
	if Available("clearly-not-present-binary") {
		t.Fatal("nonexistent binary must not resolve")
	}
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "stub")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	if !Available(stub) {
		t.Fatal("absolute path to executable should resolve")
	}
}
