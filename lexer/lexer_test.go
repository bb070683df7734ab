package lexer_test

import (
	"bytes"
	"strings"
	"testing"

	"moon-go/lexer"
)

func kinds(tokens []lexer.Token) []lexer.TokenKind {
	ret := make([]lexer.TokenKind, 0, len(tokens))
	for _, t := range tokens {
		ret = append(ret, t.Kind)
	}
	return ret
}

func sameKinds(a, b []lexer.TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countKind(tokens []lexer.Token, k lexer.TokenKind) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == k {
			n++
		}
	}
	return n
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []lexer.TokenKind
	}{
		{"x is 5", []lexer.TokenKind{lexer.IDENTIFIER, lexer.IS, lexer.INTEGER}},
		{"x isnt 5.5", []lexer.TokenKind{lexer.IDENTIFIER, lexer.ISNT, lexer.FLOAT}},
		{"print 'hi' true null", []lexer.TokenKind{lexer.PRINT, lexer.STRING, lexer.BOOLEAN, lexer.NULL}},
		{"a ** b <= c >= d < e > f", []lexer.TokenKind{
			lexer.IDENTIFIER, lexer.EXPONENT, lexer.IDENTIFIER, lexer.LE, lexer.IDENTIFIER, lexer.GE,
			lexer.IDENTIFIER, lexer.LT, lexer.IDENTIFIER, lexer.GT, lexer.IDENTIFIER}},
		{"a + b - c * d / e % f", []lexer.TokenKind{
			lexer.IDENTIFIER, lexer.PLUS, lexer.IDENTIFIER, lexer.MINUS, lexer.IDENTIFIER, lexer.MULTIPLY,
			lexer.IDENTIFIER, lexer.DIVIDE, lexer.IDENTIFIER, lexer.MODULO, lexer.IDENTIFIER}},
		{"action call ask result stop skip while if else", []lexer.TokenKind{
			lexer.ACTION, lexer.CALL, lexer.ASK, lexer.RESULT, lexer.STOP, lexer.SKIP, lexer.WHILE, lexer.IF, lexer.ELSE}},
		{"list dict and or not", []lexer.TokenKind{lexer.LIST, lexer.DICT, lexer.AND, lexer.OR, lexer.NOT}},
		{"continue elif lambda", []lexer.TokenKind{lexer.IDENTIFIER, lexer.IDENTIFIER, lexer.IDENTIFIER}},
		{"x -1", []lexer.TokenKind{lexer.IDENTIFIER, lexer.MINUS, lexer.INTEGER}},
		{"x is -1", []lexer.TokenKind{lexer.IDENTIFIER, lexer.IS, lexer.INTEGER}},
		{"x # trailing comment", []lexer.TokenKind{lexer.IDENTIFIER}},
		{"(a comment) x", []lexer.TokenKind{lexer.IDENTIFIER}},
		{"display-name", []lexer.TokenKind{lexer.IDENTIFIER, lexer.MINUS, lexer.IDENTIFIER}},
		{"\t", []lexer.TokenKind{}},
		{"\tx", []lexer.TokenKind{lexer.IDENTIFIER}},
		{"x\t\ty", []lexer.TokenKind{lexer.IDENTIFIER, lexer.IDENTIFIER}},
		{"\n\nx", []lexer.TokenKind{lexer.IDENTIFIER}},
	}
	for _, tt := range tests {
		tokens, errs := lexer.Tokenize(tt.src)
		if len(errs) != 0 {
			t.Errorf("Tokenize(%q) errors = %v", tt.src, errs)
		}
		if got := kinds(tokens); !sameKinds(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		src  string
		kind lexer.TokenKind
		want interface{}
	}{
		{"0", lexer.INTEGER, int64(0)},
		{"42", lexer.INTEGER, int64(42)},
		{"-7", lexer.INTEGER, int64(-7)},
		{"3.14", lexer.FLOAT, 3.14},
		{"-0.5", lexer.FLOAT, -0.5},
		{`"double"`, lexer.STRING, "double"},
		{`'single'`, lexer.STRING, "single"},
		{`"say \"hi\""`, lexer.STRING, `say "hi"`},
		{`'it\'s'`, lexer.STRING, "it's"},
		{`"a\nb\tc\\"`, lexer.STRING, "a\nb\tc\\"},
		{"true", lexer.BOOLEAN, true},
		{"false", lexer.BOOLEAN, false},
		{"name_1", lexer.IDENTIFIER, "name_1"},
		{"🍎", lexer.IDENTIFIER, "🍎"},
	}
	for _, tt := range tests {
		tokens, errs := lexer.Tokenize(tt.src)
		if len(errs) != 0 || len(tokens) != 1 {
			t.Errorf("Tokenize(%q) = %v, %v; want one token", tt.src, tokens, errs)
			continue
		}
		if tokens[0].Kind != tt.kind || tokens[0].Value != tt.want {
			t.Errorf("Tokenize(%q) = %v %#v, want %v %#v", tt.src, tokens[0].Kind, tokens[0].Value, tt.kind, tt.want)
		}
	}
}

func TestIllegalInput(t *testing.T) {
	for _, src := range []string{"01", "1.", ".123", "0.", "123.", "12.34.56", "11Data", `"unterminated`,
		`"string with unmatched \"`, "(never closed", "99999999999999999999", "$", "a ; b"} {
		_, errs := lexer.Tokenize(src)
		if len(errs) == 0 {
			t.Errorf("Tokenize(%q) reported no error", src)
		}
	}
}

func TestIllegalCharacterIsSkipped(t *testing.T) {
	tokens, errs := lexer.Tokenize("$")
	if len(tokens) != 0 || len(errs) != 1 {
		t.Fatalf("Tokenize($) = %v, %v", tokens, errs)
	}
	if errs[0].Char != "$" || errs[0].Line != 1 || errs[0].Offset != 0 {
		t.Errorf("error = %+v", errs[0])
	}

	tokens, errs = lexer.Tokenize("a $ b")
	if len(errs) != 1 || !sameKinds(kinds(tokens), []lexer.TokenKind{lexer.IDENTIFIER, lexer.IDENTIFIER}) {
		t.Errorf("Tokenize(a $ b) = %v, %v", tokens, errs)
	}
}

func TestEmojiIdentifiers(t *testing.T) {
	tokens, _ := lexer.Tokenize("🍎🍎")
	if len(tokens) != 2 {
		t.Errorf("got %d tokens for two emoji, want 2", len(tokens))
	}
	tokens, errs := lexer.Tokenize("🍎 is 1")
	if len(errs) != 0 || !sameKinds(kinds(tokens), []lexer.TokenKind{lexer.IDENTIFIER, lexer.IS, lexer.INTEGER}) {
		t.Errorf("Tokenize = %v, %v", tokens, errs)
	}
}

func TestPositions(t *testing.T) {
	tokens, _ := lexer.Tokenize("a\nb\n\nc")
	want := []struct {
		kind lexer.TokenKind
		line uint32
	}{
		{lexer.IDENTIFIER, 1},
		{lexer.NEWLINE, 1},
		{lexer.IDENTIFIER, 2},
		{lexer.NEWLINE, 2},
		{lexer.IDENTIFIER, 4},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Line != w.line {
			t.Errorf("token %d = %v, want %v at line %d", i, tokens[i], w.kind, w.line)
		}
	}

	tokens, _ = lexer.Tokenize("x is 5")
	for i, ofs := range []uint32{0, 2, 5} {
		if tokens[i].Offset != ofs {
			t.Errorf("token %d offset = %d, want %d", i, tokens[i].Offset, ofs)
		}
	}

	tokens, _ = lexer.Tokenize("(one\ntwo\nthree) x")
	if len(tokens) != 1 || tokens[0].Line != 3 {
		t.Errorf("after multiline comment got %v", tokens)
	}
}

func TestIndentation(t *testing.T) {
	tests := []struct {
		src            string
		indent, dedent int
	}{
		{"l1\n\tl2", 1, 1},
		{"l1\n\tl2\n\t\tl3", 2, 2},
		{"l1\n\tl2\n\t\tl3\nl4", 2, 2},
		{"l1\n\tl2\n\nl3\n\tl4\n", 2, 2},
		{"a\n\t\n\tb", 1, 1},
		{"a\n\n\n\tb\n\n\t\tc\n\n\td\ne", 2, 2},
		{"a\nb\nc", 0, 0},
	}
	for _, tt := range tests {
		tokens, errs := lexer.Tokenize(tt.src)
		if len(errs) != 0 {
			t.Errorf("Tokenize(%q) errors = %v", tt.src, errs)
		}
		if n := countKind(tokens, lexer.INDENT); n != tt.indent {
			t.Errorf("Tokenize(%q) INDENT = %d, want %d", tt.src, n, tt.indent)
		}
		if n := countKind(tokens, lexer.DEDENT); n != tt.dedent {
			t.Errorf("Tokenize(%q) DEDENT = %d, want %d", tt.src, n, tt.dedent)
		}
	}
}

func TestIndentationSequence(t *testing.T) {
	tokens, _ := lexer.Tokenize("if x\n\tprint 1\nprint 2")
	want := []lexer.TokenKind{
		lexer.IF, lexer.IDENTIFIER, lexer.NEWLINE,
		lexer.INDENT, lexer.PRINT, lexer.INTEGER, lexer.NEWLINE,
		lexer.DEDENT, lexer.PRINT, lexer.INTEGER,
	}
	if got := kinds(tokens); !sameKinds(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[3].Line != 1 || tokens[7].Line != 2 {
		t.Errorf("INDENT line = %d, DEDENT line = %d", tokens[3].Line, tokens[7].Line)
	}
	if tokens[3].Offset != 0 || tokens[3].Text != "\t" {
		t.Errorf("INDENT = %+v", tokens[3])
	}
}

func TestIndentFilterConsumesTabs(t *testing.T) {
	tokens, errs := lexer.Tokenize("x is\t1\nif x\n\tprint\t\t1\n\t\tprint 2\n")
	if len(errs) != 0 {
		t.Fatalf("errors = %v", errs)
	}
	if n := countKind(tokens, lexer.TABULATION); n != 0 {
		t.Errorf("%d TABULATION tokens left in %v", n, kinds(tokens))
	}
	if countKind(tokens, lexer.INDENT) != 2 || countKind(tokens, lexer.DEDENT) != 2 {
		t.Errorf("unbalanced blocks: %v", kinds(tokens))
	}
}

func TestDumpTokens(t *testing.T) {
	tokens, errs := lexer.Tokenize("x is 5 $")
	var buf bytes.Buffer
	lexer.DumpTokens(&buf, tokens, errs)
	out := buf.String()
	for _, want := range []string{"(IDENTIFIER, \"x\", 1, 0)", "(INTEGER, 5, 1, 5)", "illegal character"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestTokenName(t *testing.T) {
	tests := map[lexer.TokenKind]string{
		lexer.TEOF:       "EOF",
		lexer.ISNT:       "'isnt'",
		lexer.EXPONENT:   "'**'",
		lexer.IDENTIFIER: "identifier",
	}
	for k, want := range tests {
		if got := lexer.TokenName(k); got != want {
			t.Errorf("TokenName(%v) = %q, want %q", k, got, want)
		}
	}
}
