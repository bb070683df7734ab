package main

import (
	"fmt"

	"git.sr.ht/~sircmpwn/getopt"
)

type Options struct {
	/// Program to run; empty starts the playground.
	InputFile string

	/// Config file named with -c.
	ConfigFile string

	/// Tool to run rather than a program.
	Tool *Tool

	Verbose bool

	/// Debug dumps printed before execution.
	DumpTokens bool
	DumpAst    bool
}

// / The type of functions that are the entry points to tools (subcommands).
type ToolFunc func(*MoonMain, []string) ExitStatus

// / Subtools, accessible via "-t foo".
type Tool struct {
	/// Short name of the tool.
	Name string

	/// Description (shown in "-t list").
	Desc string

	/// Implementation of the tool.
	Func1 ToolFunc
}

func UsageMain() {
	fmt.Fprintf(g_stderr,
		"usage: moon [options] [file]\n"+
			"\n"+
			"if file is unspecified, starts the interactive playground.\n"+
			"\n"+
			"options:\n"+
			"  -V       print moon version (%q)\n"+
			"  -v       verbose diagnostics\n"+
			"  -c FILE  read configuration from FILE [default=moon.yaml]\n"+
			"\n"+
			"  -d MODE  enable debugging (use '-d list' to list modes)\n"+
			"  -t TOOL  run a subtool (use '-t list' to list subtools)\n"+
			"    terminates toplevel options; further arguments are passed to the tool\n",
		kMoonVersion)
}

// / Parse argv. Returns an exit code when moon should stop right away, or
// / -1 to continue. On return args holds the non-flag arguments.
func ReadFlags(args *[]string, options *Options) int {
	opts, optind, err := getopt.Getopts(*args, "c:d:t:hvV")
	if err != nil {
		Error("%v", err)
		UsageMain()
		return ExitFailure.Code()
	}
	*args = (*args)[optind:]
	for _, optV := range opts {
		optarg := optV.Value
		switch optV.Option {
		case 'c':
			options.ConfigFile = optarg
		case 'd':
			if !DebugEnable(optarg, options) {
				return ExitFailure.Code()
			}
		case 't':
			options.Tool = ChooseTool(optarg)
			if options.Tool == nil {
				if optarg == "list" {
					return ExitSuccess.Code()
				}
				return ExitFailure.Code()
			}
		case 'v':
			options.Verbose = true
		case 'V':
			fmt.Fprintf(g_stdout, "%s\n", kMoonVersion)
			return ExitSuccess.Code()
		case 'h':
			UsageMain()
			return ExitSuccess.Code()
		}
	}
	if options.Tool == nil && len(*args) > 0 {
		options.InputFile = (*args)[0]
		if len(*args) > 1 {
			Warning("ignoring extra arguments after %s", options.InputFile)
		}
	}
	return -1
}

// / Enable a debugging mode. Returns false if moon should exit instead
// / of continuing.
func DebugEnable(name string, options *Options) bool {
	switch name {
	case "list":
		fmt.Fprintf(g_stdout, "debugging modes:\n"+
			"  tokens   print the token stream before running\n"+
			"  ast      print the syntax tree before running\n"+
			"  stats    print operation counts/timing info\n"+
			"multiple modes can be enabled via -d FOO -d BAR\n")
		return false
	case "tokens":
		options.DumpTokens = true
		return true
	case "ast":
		options.DumpAst = true
		return true
	case "stats":
		GMetrics = NewMetrics()
		return true
	}
	suggestion := SpellcheckStringV(name, []string{"tokens", "ast", "stats"})
	if suggestion != "" {
		Error("unknown debug setting '%s', did you mean '%s'?", name, suggestion)
	} else {
		Error("unknown debug setting '%s'", name)
	}
	return false
}

// / Look up a subtool. Returns nil after printing the list for "list" or
// / an error for an unknown name.
func ChooseTool(tool_name string) *Tool {
	kTools := []Tool{
		{"tokens", "print the token stream of a program", ToolTokens},
		{"ast", "print the syntax tree of a program", ToolAst},
		{"history", "list recent playground programs from the journal", ToolHistory},
		{"clean", "expire old journal entries", ToolClean},
		{"serve", "serve program evaluation over HTTP", ToolServe},
	}

	if tool_name == "list" {
		fmt.Fprintf(g_stdout, "moon subtools:\n")
		for _, tool := range kTools {
			fmt.Fprintf(g_stdout, "%11s  %s\n", tool.Name, tool.Desc)
		}
		return nil
	}

	for i := range kTools {
		if kTools[i].Name == tool_name {
			return &kTools[i]
		}
	}

	words := []string{}
	for _, tool := range kTools {
		words = append(words, tool.Name)
	}
	suggestion := SpellcheckStringV(tool_name, words)
	if suggestion != "" {
		Error("unknown tool '%s', did you mean '%s'?", tool_name, suggestion)
	} else {
		Error("unknown tool '%s'", tool_name)
	}
	return nil
}
