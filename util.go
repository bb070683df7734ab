package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

var (
	g_stdout io.Writer = color.Output
	g_stderr io.Writer = color.Error

	errorPrefix   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningPrefix = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func Error(msg string, ap ...interface{}) {
	fmt.Fprintf(g_stderr, "%s %s\n", errorPrefix("moon: error:"), fmt.Sprintf(msg, ap...))
}

func Info(msg string, ap ...interface{}) {
	fmt.Fprintf(g_stdout, "moon: %s\n", fmt.Sprintf(msg, ap...))
}

func Warning(msg string, ap ...interface{}) {
	fmt.Fprintf(g_stderr, "%s %s\n", warningPrefix("moon: warning:"), fmt.Sprintf(msg, ap...))
}

var errNotUtf8 = errors.New("source is not valid UTF-8")

// / PrepareSource drops leading blank lines and guarantees a final newline.
func PrepareSource(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 || strings.Trim(text[:nl], " \t") != "" {
			break
		}
		text = text[nl+1:]
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, errNotUtf8)
	}
	return PrepareSource(string(data)), nil
}
