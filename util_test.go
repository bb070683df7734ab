package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// capture redirects diagnostics and output to buffers for one test.
func capture(t *testing.T) (stdout *bytes.Buffer, stderr *bytes.Buffer) {
	t.Helper()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	oldOut, oldErr := g_stdout, g_stderr
	g_stdout, g_stderr = stdout, stderr
	t.Cleanup(func() {
		g_stdout, g_stderr = oldOut, oldErr
	})
	return stdout, stderr
}

func TestPrepareSource(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"print 1", "print 1\n"},
		{"print 1\n", "print 1\n"},
		{"\n\n\nprint 1", "print 1\n"},
		{"  \n\t\nprint 1\n", "print 1\n"},
		{"print 1\r\nprint 2\r\n", "print 1\nprint 2\n"},
		{"if x\n\tprint 1", "if x\n\tprint 1\n"},
		{"", "\n"},
	}
	for _, tt := range tests {
		if got := PrepareSource(tt.in); got != tt.want {
			t.Errorf("PrepareSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.moon")
	if err := os.WriteFile(good, []byte("\nprint 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	source, err := ReadSource(good)
	if err != nil {
		t.Fatal(err)
	}
	if source != "print 1\n" {
		t.Errorf("ReadSource = %q", source)
	}

	bad := filepath.Join(dir, "bad.moon")
	if err := os.WriteFile(bad, []byte{'p', 0xff, 0xfe}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSource(bad); !errors.Is(err, errNotUtf8) {
		t.Errorf("ReadSource(bad) = %v, want errNotUtf8", err)
	}

	if _, err := ReadSource(filepath.Join(dir, "missing.moon")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadSource(missing) = %v", err)
	}
}

func TestDiagnostics(t *testing.T) {
	stdout, stderr := capture(t)
	Error("bad %s", "thing")
	Warning("odd %d", 3)
	Info("note")
	if !strings.Contains(stderr.String(), "moon: error: bad thing\n") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "moon: warning: odd 3\n") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if stdout.String() != "moon: note\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}
