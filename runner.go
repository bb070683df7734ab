package main

import (
	"errors"
	"strings"

	"github.com/tevino/abool/v2"

	"moon-go/ast"
	"moon-go/interpreter"
	"moon-go/lexer"
	"moon-go/parser"
)

// / Command-line state shared by the script runner, the playground and
// / the subtools.
type MoonMain struct {
	/// Loaded configuration.
	config_ *Config

	/// Command line options.
	options_ *Options

	printer_ *LinePrinter

	/// Set by the signal handler; polled by the interpreter.
	interrupt_ *abool.AtomicBool
}

func NewMoonMain(config *Config, options *Options) *MoonMain {
	ret := MoonMain{}
	ret.config_ = config
	ret.options_ = options
	ret.printer_ = NewLinePrinter(g_stdout)
	ret.printer_.SetColorMode(config.Color)
	ret.interrupt_ = abool.New()
	return &ret
}

// / Tokenize and parse source, reporting lexical errors as warnings and
// / printing any requested debug dumps.
func (this *MoonMain) Compile(source string) (ast.Block, error) {
	tokens, lexErrs := this.tokenize(source)
	for _, e := range lexErrs {
		Warning("%s", e.String())
	}
	if this.options_.DumpTokens {
		var sb strings.Builder
		lexer.DumpTokens(&sb, tokens, nil)
		this.printer_.PrintOnNewLine(sb.String())
	}

	program, err := this.parse(tokens)
	if err != nil {
		return nil, err
	}
	if this.options_.DumpAst {
		var sb strings.Builder
		ast.Dump(&sb, program)
		this.printer_.PrintOnNewLine(sb.String())
	}
	return program, nil
}

func (this *MoonMain) tokenize(source string) ([]lexer.Token, []lexer.LexError) {
	defer METRIC_RECORD("tokenize")()
	return lexer.Tokenize(source)
}

func (this *MoonMain) parse(tokens []lexer.Token) (ast.Block, error) {
	defer METRIC_RECORD("parse")()
	return parser.Parse(tokens)
}

// / Output callback that keeps the printer's line tracking current.
func (this *MoonMain) output() interpreter.OutputFunc {
	return func(line string) {
		this.printer_.Print(line + "\n")
	}
}

func (this *MoonMain) execute(interp *interpreter.Interpreter, program ast.Block) error {
	defer METRIC_RECORD("execute")()
	this.interrupt_.UnSet()
	return interp.ExecuteProgram(program)
}

// / Map a run error to the process exit status.
func StatusFor(err error) ExitStatus {
	if err == nil {
		return ExitSuccess
	}
	var f *interpreter.Fault
	if errors.As(err, &f) && f.Kind == interpreter.Interrupted {
		return ExitInterrupted
	}
	return ExitFailure
}

// / RunSource compiles and runs a whole program with fresh state.
func (this *MoonMain) RunSource(source string, input interpreter.InputFunc) ExitStatus {
	program, err := this.Compile(source)
	if err != nil {
		this.printer_.PrintOnNewLine("")
		Error("%v", err)
		return ExitFailure
	}
	interp := interpreter.NewInterpreter(this.output(), input)
	interp.SetInterrupt(this.interrupt_)
	err = this.execute(interp, program)
	if err != nil {
		this.printer_.PrintOnNewLine("")
		Error("%v", err)
	}
	return StatusFor(err)
}

// / RunScript reads and runs the program at path.
func (this *MoonMain) RunScript(path string, input interpreter.InputFunc) ExitStatus {
	source, err := ReadSource(path)
	if err != nil {
		Error("loading '%s': %v", path, err)
		return ExitFailure
	}
	if this.options_.Verbose {
		Info("running %s", path)
	}
	return this.RunSource(source, input)
}
