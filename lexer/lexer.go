package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer scans Moon source text into raw tokens. Comments and spaces are
// dropped; tabs and newlines are kept for the indentation pass.
type Lexer struct {
	input_  string
	ofs_    int
	line_   uint32
	last_   TokenKind
	errors_ []LexError
}

func NewLexer(input string) *Lexer {
	ret := Lexer{}
	ret.input_ = input
	ret.line_ = 1
	ret.last_ = NEWLINE
	return &ret
}

// / Errors collected so far, in source order.
func (this *Lexer) Errors() []LexError {
	return this.errors_
}

// / Read a Token from the input. Returns TEOF forever once the input is
// / exhausted.
func (this *Lexer) ReadToken() Token {
	tok := this.scan()
	if tok.Kind != TEOF {
		this.last_ = tok.Kind
	}
	return tok
}

func (this *Lexer) scan() Token {
	for this.ofs_ < len(this.input_) {
		start := this.ofs_
		c := this.input_[start]
		switch {
		case c == ' ' || c == '\r':
			this.ofs_++
		case c == '\n':
			return this.scanNewlines()
		case c == '\t':
			this.ofs_++
			return this.token(TABULATION, start, nil)
		case c == '#':
			end := strings.IndexByte(this.input_[start:], '\n')
			if end < 0 {
				this.ofs_ = len(this.input_)
			} else {
				this.ofs_ = start + end
			}
		case c == '(':
			end := strings.IndexByte(this.input_[start+1:], ')')
			if end < 0 {
				this.fail(start, "(")
				continue
			}
			body := this.input_[start : start+1+end+1]
			this.line_ += uint32(strings.Count(body, "\n"))
			this.ofs_ = start + len(body)
		case c == '"' || c == '\'':
			if tok, ok := this.scanString(c); ok {
				return tok
			}
			this.fail(start, string(c))
		case isDigit(c):
			if tok, ok := this.scanNumber(start); ok {
				return tok
			}
			this.fail(start, string(c))
		case (c == '-' || c == '+') && this.signAllowed() && start+1 < len(this.input_) && isDigit(this.input_[start+1]):
			if tok, ok := this.scanNumber(start); ok {
				return tok
			}
			return this.scanOperator()
		case c < utf8.RuneSelf && (isAsciiLetter(c) || c == '_'):
			return this.scanWord()
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(this.input_[start:])
			if unicode.IsLetter(r) {
				return this.scanWord()
			}
			if isSymbolRune(r) {
				this.ofs_ += size
				return this.token(IDENTIFIER, start, string(r))
			}
			this.fail(start, this.input_[start:start+size])
		default:
			if tok, ok := this.tryOperator(); ok {
				return tok
			}
			this.fail(start, string(c))
		}
	}
	return Token{Kind: TEOF, Line: this.line_, Offset: uint32(len(this.input_))}
}

func (this *Lexer) token(kind TokenKind, start int, value interface{}) Token {
	return Token{
		Kind:   kind,
		Text:   this.input_[start:this.ofs_],
		Value:  value,
		Line:   this.line_,
		Offset: uint32(start),
	}
}

// / Record an illegal character and skip it.
func (this *Lexer) fail(start int, char string) {
	this.errors_ = append(this.errors_, LexError{Char: char, Line: this.line_, Offset: uint32(start)})
	this.ofs_ = start + len(char)
}

// A run of line breaks is a single NEWLINE carrying the line it ends.
func (this *Lexer) scanNewlines() Token {
	start := this.ofs_
	count := uint32(0)
	for this.ofs_ < len(this.input_) {
		c := this.input_[this.ofs_]
		if c == '\n' {
			count++
		} else if c != '\r' {
			break
		}
		this.ofs_++
	}
	tok := this.token(NEWLINE, start, nil)
	this.line_ += count
	return tok
}

func (this *Lexer) scanString(quote byte) (Token, bool) {
	start := this.ofs_
	var sb strings.Builder
	newlines := uint32(0)
	for i := start + 1; i < len(this.input_); i++ {
		c := this.input_[i]
		switch c {
		case quote:
			this.ofs_ = i + 1
			tok := this.token(STRING, start, sb.String())
			this.line_ += newlines
			return tok, true
		case '\\':
			if i+1 >= len(this.input_) {
				return Token{}, false
			}
			i++
			switch e := this.input_[i]; e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\', '"', '\'':
				sb.WriteByte(e)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(e)
			}
		case '\n':
			newlines++
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return Token{}, false
}

// / Scan an integer or float literal, with an optional leading sign at
// / start. Integers must stand alone as a word and carry no leading zero.
func (this *Lexer) scanNumber(start int) (Token, bool) {
	i := start
	if c := this.input_[i]; c == '-' || c == '+' {
		i++
	}
	digits := i
	for i < len(this.input_) && isDigit(this.input_[i]) {
		i++
	}
	if i+1 < len(this.input_) && this.input_[i] == '.' && isDigit(this.input_[i+1]) {
		i++
		for i < len(this.input_) && isDigit(this.input_[i]) {
			i++
		}
		f, err := strconv.ParseFloat(this.input_[start:i], 64)
		if err != nil {
			return Token{}, false
		}
		this.ofs_ = i
		return this.token(FLOAT, start, f), true
	}

	if i-digits > 1 && this.input_[digits] == '0' {
		return Token{}, false
	}
	if start > 0 && isWordByte(this.input_[start-1]) {
		return Token{}, false
	}
	if i < len(this.input_) && this.startsWord(i) {
		return Token{}, false
	}
	n, err := strconv.ParseInt(this.input_[start:i], 10, 64)
	if err != nil {
		// Out of range for 64 bits: the whole literal is one error.
		this.errors_ = append(this.errors_, LexError{Char: this.input_[start:i], Line: this.line_, Offset: uint32(start)})
		this.ofs_ = i
		return this.scan(), true
	}
	this.ofs_ = i
	return this.token(INTEGER, start, n), true
}

func (this *Lexer) scanWord() Token {
	start := this.ofs_
	for this.ofs_ < len(this.input_) {
		r, size := utf8.DecodeRuneInString(this.input_[this.ofs_:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		this.ofs_ += size
	}
	word := this.input_[start:this.ofs_]
	if kind, ok := keywords[word]; ok {
		switch kind {
		case BOOLEAN:
			return this.token(BOOLEAN, start, word == "true")
		default:
			return this.token(kind, start, nil)
		}
	}
	return this.token(IDENTIFIER, start, word)
}

func (this *Lexer) tryOperator() (Token, bool) {
	start := this.ofs_
	rest := this.input_[start:]
	var kind TokenKind
	width := 1
	switch {
	case strings.HasPrefix(rest, "**"):
		kind, width = EXPONENT, 2
	case strings.HasPrefix(rest, "<="):
		kind, width = LE, 2
	case strings.HasPrefix(rest, ">="):
		kind, width = GE, 2
	default:
		switch rest[0] {
		case '+':
			kind = PLUS
		case '-':
			kind = MINUS
		case '*':
			kind = MULTIPLY
		case '/':
			kind = DIVIDE
		case '%':
			kind = MODULO
		case '<':
			kind = LT
		case '>':
			kind = GT
		default:
			return Token{}, false
		}
	}
	this.ofs_ += width
	return this.token(kind, start, nil), true
}

func (this *Lexer) scanOperator() Token {
	tok, _ := this.tryOperator()
	return tok
}

// A sign belongs to a number literal only where no operand precedes it,
// so "x -1" stays a subtraction.
func (this *Lexer) signAllowed() bool {
	switch this.last_ {
	case IDENTIFIER, INTEGER, FLOAT, STRING, BOOLEAN, NULL:
		return false
	}
	return true
}

func (this *Lexer) startsWord(i int) bool {
	r, _ := utf8.DecodeRuneInString(this.input_[i:])
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAsciiLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWordByte(c byte) bool {
	return isDigit(c) || isAsciiLetter(c) || c == '_' || c >= utf8.RuneSelf
}

// Emoji and other pictographs form one-character identifiers.
func isSymbolRune(r rune) bool {
	return unicode.Is(unicode.So, r) || (r >= 0x1F000 && r <= 0x1FAFF)
}
