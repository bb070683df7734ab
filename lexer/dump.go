package lexer

import (
	"fmt"
	"io"
)

// / Write one token per line as (KIND, value, line, offset), followed by
// / any lexical errors.
func DumpTokens(w io.Writer, tokens []Token, errors []LexError) {
	for _, tok := range tokens {
		fmt.Fprintln(w, tok.String())
	}
	for _, e := range errors {
		fmt.Fprintf(w, "error: %s\n", e.String())
	}
}
