package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/pkg/errors"

	"github.com/ryym/lifegame/model"
)

func interrupted() <-chan os.Signal {
	sigs := make(chan os.Signal, 1)
	sigs <- syscall.SIGINT
	return sigs
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "interrupted",
			wantCode: 0,
			wantErr:  "Final stats",
		},
		{
			name:     "unknown flag",
			args:     []string{"-bogus"},
			wantCode: 2,
			wantErr:  "flag provided but not defined",
		},
		{
			name:     "missing config file",
			args:     []string{"-config", filepath.Join(t.TempDir(), "missing.json")},
			wantCode: 1,
			wantErr:  "Error loading configuration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr, interrupted())
			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d; stderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr %q is missing %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunDrawsFrames(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr, interrupted()); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), model.ClearScreen) {
		t.Errorf("stdout does not start with a frame: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Grid: 30x90") {
		t.Errorf("stderr %q is missing the game info", stderr.String())
	}
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestRunSinkErrorExitsAfterSummary(t *testing.T) {
	var stderr bytes.Buffer
	code := run(nil, closedWriter{}, &stderr, make(chan os.Signal))
	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	got := stderr.String()
	summary := strings.Index(got, "Final stats")
	failure := strings.Index(got, "stdout closed")
	if summary < 0 || failure < summary {
		t.Errorf("stderr %q should report the summary then the write error", got)
	}
}
