package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"moon-go/ast"
	"moon-go/journal"
	"moon-go/lexer"
	"moon-go/parser"
	"moon-go/playground"
)

const kDefaultHistoryLimit = 20

func (this *MoonMain) loadToolSource(tool string, args []string) (string, bool) {
	if len(args) != 1 {
		Error("usage: moon -t %s FILE", tool)
		return "", false
	}
	source, err := ReadSource(args[0])
	if err != nil {
		Error("loading '%s': %v", args[0], err)
		return "", false
	}
	return source, true
}

// / -t tokens FILE: print the filtered token stream.
func ToolTokens(m *MoonMain, args []string) ExitStatus {
	source, ok := m.loadToolSource("tokens", args)
	if !ok {
		return ExitFailure
	}
	tokens, errs := m.tokenize(source)
	lexer.DumpTokens(g_stdout, tokens, errs)
	if len(errs) > 0 {
		return ExitFailure
	}
	return ExitSuccess
}

// / -t ast FILE: print the syntax tree without running it.
func ToolAst(m *MoonMain, args []string) ExitStatus {
	source, ok := m.loadToolSource("ast", args)
	if !ok {
		return ExitFailure
	}
	program, lexErrs, err := parser.ParseSource(source)
	for _, e := range lexErrs {
		Warning("%s", e.String())
	}
	if err != nil {
		Error("%v", err)
		return ExitFailure
	}
	ast.Dump(g_stdout, program)
	return ExitSuccess
}

func (this *MoonMain) historyPath() (string, bool) {
	path := this.config_.History.Path
	if path == "" {
		Error("no journal configured (set history.path in %s)", kDefaultConfigFile)
		return "", false
	}
	return path, true
}

// / -t history [N]: list the N most recently run playground programs.
func ToolHistory(m *MoonMain, args []string) ExitStatus {
	path, ok := m.historyPath()
	if !ok {
		return ExitFailure
	}
	limit := int64(kDefaultHistoryLimit)
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || n <= 0 {
			Error("invalid history limit '%s'", args[0])
			return ExitFailure
		}
		limit = n
	}
	if _, err := os.Stat(path); err != nil {
		Error("journal %s: %v", path, err)
		return ExitFailure
	}
	if err := journal.WriteHistory(g_stdout, path, limit); err != nil {
		Error("reading journal: %v", err)
		return ExitFailure
	}
	return ExitSuccess
}

// / -t clean: expire journal entries older than history.expire.
func ToolClean(m *MoonMain, args []string) ExitStatus {
	path, ok := m.historyPath()
	if !ok {
		return ExitFailure
	}
	store, err := journal.OpenStore(path)
	if err != nil {
		Error("opening journal: %v", err)
		return ExitFailure
	}
	defer store.Close()

	n, err := journal.NewExpirer(store, m.config_.History.Expire).RunOnce()
	if err != nil {
		Error("cleaning journal: %v", err)
		return ExitFailure
	}
	Info("%d %s expired", n, plural(n, "entry", "entries"))
	return ExitSuccess
}

func plural(n int64, one string, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// / Adapts the journal to the playground server's recorder.
type journalRecorder struct {
	store_ *journal.Store
}

func (this journalRecorder) Record(source string, runErr error) error {
	_, err := this.store_.Record(source, runErr)
	return err
}

// / -t serve [ADDR]: serve POST /run until interrupted.
func ToolServe(m *MoonMain, args []string) ExitStatus {
	addr := m.config_.Playground.Addr
	if len(args) > 0 {
		addr = args[0]
	}

	var recorder playground.Recorder
	store, expirer := m.openJournal()
	if store != nil {
		defer store.Close()
		recorder = journalRecorder{store}
	}
	if expirer != nil {
		defer expirer.Stop()
	}

	server := playground.NewServer(m.config_.Playground.Timeout, recorder)
	errch := make(chan error, 1)
	go func() {
		errch <- server.ListenAndServe(addr)
	}()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	defer signal.Stop(sigch)

	select {
	case err := <-errch:
		Error("serving %s: %v", addr, err)
		return ExitFailure
	case <-sigch:
		fmt.Fprintf(g_stdout, "Interrupted. Exiting.\n")
	}
	if err := server.Shutdown(); err != nil {
		Error("shutdown: %v", err)
		return ExitFailure
	}
	return ExitSuccess
}
