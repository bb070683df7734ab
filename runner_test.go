package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moon-go/interpreter"
)

func newTestMain(t *testing.T, options *Options) (*MoonMain, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := capture(t)
	config := DefaultConfig()
	config.Color = "never"
	return NewMoonMain(config, options), stdout, stderr
}

func TestRunSource(t *testing.T) {
	m, stdout, stderr := newTestMain(t, &Options{})
	status := m.RunSource("x is 2\nprint x * 21\nprint \"done\"\n", nil)
	if status != ExitSuccess {
		t.Errorf("status = %d; stderr %q", status, stderr.String())
	}
	if stdout.String() != "42\ndone\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunSourceFailures(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"fault", "print 1\nprint missing\n", "missing"},
		{"syntax", "if\n", "syntax error"},
		{"empty", "# nothing here\n", "no instruction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, stderr := newTestMain(t, &Options{})
			if status := m.RunSource(tt.source, nil); status != ExitFailure {
				t.Errorf("status = %d, want ExitFailure", status)
			}
			if !strings.Contains(stderr.String(), "moon: error:") || !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q, want it to mention %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRunSourceLexWarning(t *testing.T) {
	m, stdout, stderr := newTestMain(t, &Options{})
	if status := m.RunSource("print 1 $\n", nil); status != ExitSuccess {
		t.Errorf("status = %d", status)
	}
	if stdout.String() != "1\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "moon: warning: illegal character") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunSourceInterrupted(t *testing.T) {
	m, _, stderr := newTestMain(t, &Options{})
	input := func(prompt string) (string, error) {
		m.interrupt_.Set()
		return "1", nil
	}
	source := "n is ask \"go\"\nwhile true\n\tn is n + 1\n"
	if status := m.RunSource(source, input); status != ExitInterrupted {
		t.Errorf("status = %d, want ExitInterrupted", status)
	}
	if !strings.Contains(stderr.String(), "interrupted") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunSourceDumps(t *testing.T) {
	m, stdout, _ := newTestMain(t, &Options{DumpTokens: true, DumpAst: true})
	if status := m.RunSource("print 1 + 2\n", nil); status != ExitSuccess {
		t.Fatalf("status = %d", status)
	}
	out := stdout.String()
	for _, want := range []string{`(PRINT, "print", 1, 0)`, "(INTEGER, 2, 1,", "(print (+ 1 2))", "3\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout %q does not contain %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "(print (+ 1 2))\n3\n") {
		t.Errorf("dumps must come before output: %q", out)
	}
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.moon")
	if err := os.WriteFile(path, []byte("\n\nname is ask \"who?\"\nprint \"hello\" name"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, stdout, _ := newTestMain(t, &Options{})
	status := m.RunScript(path, interpreter.LinesInput([]string{"moon"}))
	if status != ExitSuccess {
		t.Fatalf("status = %d", status)
	}
	if stdout.String() != "hello moon\n" {
		t.Errorf("stdout = %q", stdout.String())
	}

	m, _, stderr := newTestMain(t, &Options{})
	if status := m.RunScript(filepath.Join(t.TempDir(), "missing.moon"), nil); status != ExitFailure {
		t.Errorf("status = %d for a missing file", status)
	}
	if !strings.Contains(stderr.String(), "loading") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want ExitStatus
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitFailure},
		{&interpreter.Fault{Kind: interpreter.UndefinedVariable}, ExitFailure},
		{&interpreter.Fault{Kind: interpreter.Interrupted}, ExitInterrupted},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
