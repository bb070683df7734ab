package main

import (
	"strings"
	"testing"
)

func TestReadFlagsRunFile(t *testing.T) {
	capture(t)
	args := []string{"moon", "-v", "-d", "ast", "-c", "alt.yaml", "prog.moon"}
	options := Options{}
	if code := ReadFlags(&args, &options); code != -1 {
		t.Fatalf("ReadFlags = %d, want -1", code)
	}
	if options.InputFile != "prog.moon" || options.ConfigFile != "alt.yaml" {
		t.Errorf("options = %+v", options)
	}
	if !options.Verbose || !options.DumpAst || options.DumpTokens {
		t.Errorf("options = %+v", options)
	}
	if options.Tool != nil {
		t.Errorf("unexpected tool %s", options.Tool.Name)
	}
}

func TestReadFlagsTool(t *testing.T) {
	capture(t)
	args := []string{"moon", "-t", "tokens", "prog.moon"}
	options := Options{}
	if code := ReadFlags(&args, &options); code != -1 {
		t.Fatalf("ReadFlags = %d, want -1", code)
	}
	if options.Tool == nil || options.Tool.Name != "tokens" {
		t.Fatalf("tool = %v", options.Tool)
	}
	if options.InputFile != "" {
		t.Errorf("InputFile = %q, tool arguments belong to the tool", options.InputFile)
	}
	if len(args) != 1 || args[0] != "prog.moon" {
		t.Errorf("remaining args = %v", args)
	}
}

func TestReadFlagsExits(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"version", []string{"moon", "-V"}, 0, kMoonVersion + "\n", ""},
		{"help", []string{"moon", "-h"}, 0, "", "usage: moon"},
		{"unknown flag", []string{"moon", "-x"}, 1, "", "usage: moon"},
		{"debug list", []string{"moon", "-d", "list"}, 1, "debugging modes", ""},
		{"debug typo", []string{"moon", "-d", "tokns"}, 1, "", "did you mean 'tokens'"},
		{"debug unknown", []string{"moon", "-d", "xyzzyplugh"}, 1, "", "unknown debug setting 'xyzzyplugh'"},
		{"tool list", []string{"moon", "-t", "list"}, 0, "serve", ""},
		{"tool typo", []string{"moon", "-t", "histroy"}, 1, "", "did you mean 'history'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := capture(t)
			args := tt.args
			options := Options{}
			if code := ReadFlags(&args, &options); code != tt.code {
				t.Errorf("ReadFlags = %d, want %d", code, tt.code)
			}
			if !strings.Contains(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.stdout)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestDebugEnableStats(t *testing.T) {
	capture(t)
	defer func() { GMetrics = nil }()
	options := Options{}
	if !DebugEnable("stats", &options) {
		t.Fatal("DebugEnable(stats) = false")
	}
	if GMetrics == nil {
		t.Error("stats did not enable metrics")
	}
}

func TestChooseTool(t *testing.T) {
	capture(t)
	for _, name := range []string{"tokens", "ast", "history", "clean", "serve"} {
		tool := ChooseTool(name)
		if tool == nil || tool.Name != name || tool.Func1 == nil {
			t.Errorf("ChooseTool(%q) = %v", name, tool)
		}
	}
	if ChooseTool("bogus") != nil {
		t.Error("ChooseTool(bogus) found a tool")
	}
}
