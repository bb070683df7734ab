package lexer

import (
	"strings"

	"github.com/edwingeng/deque"
)

type TokenSource interface {
	ReadToken() Token
}

// IndentFilter turns the tabs following each NEWLINE into balanced
// INDENT/DEDENT tokens and consumes every other tab. Blank lines never
// change the depth, and every open level is closed before the end of
// input.
type IndentFilter struct {
	source_   TokenSource
	pending_  deque.Deque // <Token>
	depth_    int
	started_  bool
	lastLine_ uint32
}

func NewIndentFilter(source TokenSource) *IndentFilter {
	ret := IndentFilter{}
	ret.source_ = source
	ret.pending_ = deque.NewDeque()
	return &ret
}

// / Depth of the innermost open block.
func (this *IndentFilter) Depth() int {
	return this.depth_
}

func (this *IndentFilter) Next() Token {
	for this.pending_.Empty() {
		this.fill()
	}
	return this.pending_.PopFront().(Token)
}

func (this *IndentFilter) push(tok Token) {
	this.started_ = true
	this.lastLine_ = tok.Line
	this.pending_.PushBack(tok)
}

func (this *IndentFilter) fill() {
	tok := this.source_.ReadToken()
	switch tok.Kind {
	case TEOF:
		this.finish(tok)
	case NEWLINE:
		// A newline before anything else carries no structure.
		if !this.started_ {
			return
		}
		this.push(tok)
		this.measure(tok)
	case TABULATION:
		// Only tabs opening a line mean anything.
	default:
		this.push(tok)
	}
}

// / Count the tabs opening the line after nl and emit the level change.
func (this *IndentFilter) measure(nl Token) {
	count := 0
	for {
		next := this.source_.ReadToken()
		switch next.Kind {
		case TABULATION:
			count++
			continue
		case NEWLINE:
			// 空行
			count = 0
			continue
		case TEOF:
			this.finish(next)
			return
		}
		for this.depth_ < count {
			this.depth_++
			this.push(Token{Kind: INDENT, Text: strings.Repeat("\t", this.depth_), Line: nl.Line})
		}
		for this.depth_ > count {
			this.depth_--
			this.push(Token{Kind: DEDENT, Text: strings.Repeat("\t", this.depth_), Line: nl.Line})
		}
		this.push(next)
		return
	}
}

func (this *IndentFilter) finish(eof Token) {
	for this.depth_ > 0 {
		this.depth_--
		this.push(Token{Kind: DEDENT, Text: strings.Repeat("\t", this.depth_), Line: this.lastLine_})
	}
	this.pending_.PushBack(eof)
}

// / Tokenize runs the lexer and the indentation pass over source. Lexical
// / errors are collected, never fatal.
func Tokenize(source string) ([]Token, []LexError) {
	lexer := NewLexer(source)
	filter := NewIndentFilter(lexer)
	var tokens []Token
	for {
		tok := filter.Next()
		if tok.Kind == TEOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, lexer.Errors()
}
