package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"moon-go/interpreter"
	"moon-go/journal"
)

// / Source of playground input lines. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Session is one playground: variables and actions persist from block to
// block, and a failing block leaves them as they were before it ran.
type Session struct {
	main_   *MoonMain
	interp_ *interpreter.Interpreter
	store_  *journal.Store
}

func NewSession(m *MoonMain, input interpreter.InputFunc, store *journal.Store) *Session {
	ret := Session{}
	ret.main_ = m
	ret.interp_ = interpreter.NewInterpreter(m.output(), input)
	ret.interp_.SetInterrupt(m.interrupt_)
	ret.store_ = store
	return &ret
}

func (this *Session) Interpreter() *interpreter.Interpreter {
	return this.interp_
}

// / Execute compiles and runs one block. Errors are printed as
// / "[error] message" and the previous state is restored.
func (this *Session) Execute(block string) error {
	source := PrepareSource(block)
	env := this.interp_.Env().Snapshot()
	actions := this.interp_.Actions().Snapshot()

	program, err := this.main_.Compile(source)
	if err == nil {
		err = this.main_.execute(this.interp_, program)
	}
	if err != nil {
		this.interp_.Env().Restore(env)
		this.interp_.Actions().Restore(actions)
		this.main_.printer_.PrintOnNewLine(fmt.Sprintf("[error] %v\n", err))
	}
	this.record(source, err)
	return err
}

func (this *Session) record(source string, runErr error) {
	if this.store_ == nil {
		return
	}
	if _, err := this.store_.Record(source, runErr); err != nil {
		Warning("journal: %v", err)
	}
}

// / Read lines until an empty line ends a non-empty block. Empty lines
// / before the first statement are skipped.
func ReadBlock(r LineReader, prompt string, continuation string) (string, error) {
	lines := []string{}
	for {
		p := prompt
		if len(lines) > 0 {
			p = continuation
		}
		line, err := r.Prompt(p)
		if err != nil {
			if errors.Is(err, io.EOF) && len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			return "", err
		}
		if strings.TrimRight(line, " \t\r") == "" {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			continue
		}
		lines = append(lines, line)
	}
}

// / Open the journal and start its expiry job when history.path is set.
func (this *MoonMain) openJournal() (*journal.Store, *journal.Expirer) {
	path := this.config_.History.Path
	if path == "" {
		return nil, nil
	}
	store, err := journal.OpenStore(path)
	if err != nil {
		Warning("journal disabled: %v", err)
		return nil, nil
	}
	expirer := journal.NewExpirer(store, this.config_.History.Expire)
	if err := expirer.Start(this.config_.History.CleanInterval); err != nil {
		Warning("journal expiry: %v", err)
		return store, nil
	}
	return store, expirer
}

// / RunPlayground reads blocks from r until Ctrl+C or end of input.
func (this *MoonMain) RunPlayground(r LineReader, store *journal.Store) ExitStatus {
	input := func(prompt string) (string, error) {
		return r.Prompt(prompt)
	}
	session := NewSession(this, input, store)

	fmt.Fprintf(g_stdout, "Moon interactive playground (v%s)\n", kMoonVersion)
	fmt.Fprintf(g_stdout, "Type Moon code. Finish a block with an empty line. Ctrl+C to exit.\n\n")
	for {
		block, err := ReadBlock(r, this.config_.Prompt, this.config_.ContinuationPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintf(g_stdout, "\nGoodbye!\n")
				return ExitSuccess
			}
			Error("reading input: %v", err)
			return ExitFailure
		}
		if h, ok := r.(interface{ AppendHistory(string) }); ok {
			h.AppendHistory(block)
		}
		session.Execute(block)
	}
}

// / Start the interactive playground on the terminal.
func (this *MoonMain) StartPlayground() ExitStatus {
	store, expirer := this.openJournal()
	if expirer != nil {
		defer expirer.Stop()
	}
	if store != nil {
		defer store.Close()
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	return this.RunPlayground(line, store)
}
