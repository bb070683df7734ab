package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// LinePrinter writes program output and diagnostics to a terminal,
// remembering whether the caret sits at the start of a line so that a
// message never lands after an unterminated ask prompt.
type LinePrinter struct {
	/// Whether we can do fancy terminal control codes.
	smart_terminal_ bool

	/// Whether we can use ISO 6429 (ANSI) color sequences.
	supports_color_ bool

	/// Whether the caret is at the beginning of a blank line.
	have_blank_line_ bool

	out_ io.Writer
}

func NewLinePrinter(out io.Writer) *LinePrinter {
	ret := LinePrinter{}
	ret.have_blank_line_ = true
	ret.out_ = out
	// fatih/color already checks isatty, TERM=dumb and NO_COLOR.
	ret.smart_terminal_ = !color.NoColor
	ret.supports_color_ = ret.smart_terminal_
	if !ret.supports_color_ {
		clicolor_force := os.Getenv("CLICOLOR_FORCE")
		ret.supports_color_ = clicolor_force != "" && clicolor_force != "0"
	}
	return &ret
}

// / Apply a config color mode: "always", "never" or "auto".
func (this *LinePrinter) SetColorMode(mode string) {
	switch mode {
	case "always":
		this.supports_color_ = true
	case "never":
		this.supports_color_ = false
	}
	color.NoColor = !this.supports_color_
}

// / Write text as is, tracking whether it ended a line.
func (this *LinePrinter) Print(to_print string) {
	if to_print == "" {
		return
	}
	io.WriteString(this.out_, to_print)
	this.have_blank_line_ = strings.HasSuffix(to_print, "\n")
}

// / Prints a string on a new line, not overprinting previous output.
func (this *LinePrinter) PrintOnNewLine(to_print string) {
	if !this.have_blank_line_ {
		io.WriteString(this.out_, "\n")
		this.have_blank_line_ = true
	}
	this.Print(to_print)
}
