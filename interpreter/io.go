package interpreter

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// OutputFunc receives one printed line, without its newline.
type OutputFunc func(line string)

// InputFunc shows prompt and returns one line of input, without its
// newline. Any error becomes an InputFailure fault.
type InputFunc func(prompt string) (string, error)

func WriterOutput(w io.Writer) OutputFunc {
	return func(line string) {
		io.WriteString(w, line+"\n")
	}
}

// / ReaderInput reads lines from r, writing each prompt to w first.
func ReaderInput(r io.Reader, w io.Writer) InputFunc {
	br := bufio.NewReader(r)
	return func(prompt string) (string, error) {
		if prompt != "" && w != nil {
			io.WriteString(w, prompt)
		}
		line, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

// / LinesInput serves a fixed list of lines, then fails with io.EOF.
func LinesInput(lines []string) InputFunc {
	return func(string) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}
}

// / Autocast converts an answer to an integer, else a float (a comma is
// / accepted as the decimal mark), else keeps it as a string.
func Autocast(text string) Value {
	trimmed := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntValue(i)
	}
	if trimmed != "" && !strings.ContainsAny(trimmed, "xX_") {
		if f, err := strconv.ParseFloat(strings.Replace(trimmed, ",", ".", 1), 64); err == nil {
			return FloatValue(f)
		}
	}
	return StringValue(text)
}
