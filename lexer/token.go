package lexer

import (
	"fmt"
	"strings"
)

// TokenKind 是一个枚举，表示 lexer 可以识别的不同类型的 tokens。
type TokenKind uint8

const (
	TEOF TokenKind = iota
	INDENT
	DEDENT
	TABULATION
	NEWLINE
	COMMENT
	MULTILINE_COMMENT
	IDENTIFIER
	INTEGER
	FLOAT
	STRING
	BOOLEAN
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO
	EXPONENT
	LT
	LE
	GT
	GE

	// Reserved words.
	ACTION
	AND
	AS
	ASK
	CALL
	DICT
	ELSE
	FAIL
	FROM
	HAS
	IF
	IS
	ISNT
	LIST
	NULL
	NOT
	OR
	PRINT
	RAISE
	RESULT
	TEST
	THING
	USE
	SKIP
	STOP
	WHILE
)

var kindNames = [...]string{
	TEOF:              "EOF",
	INDENT:            "INDENT",
	DEDENT:            "DEDENT",
	TABULATION:        "TABULATION",
	NEWLINE:           "NEWLINE",
	COMMENT:           "COMMENT",
	MULTILINE_COMMENT: "MULTILINE_COMMENT",
	IDENTIFIER:        "IDENTIFIER",
	INTEGER:           "INTEGER",
	FLOAT:             "FLOAT",
	STRING:            "STRING",
	BOOLEAN:           "BOOLEAN",
	PLUS:              "PLUS",
	MINUS:             "MINUS",
	MULTIPLY:          "MULTIPLY",
	DIVIDE:            "DIVIDE",
	MODULO:            "MODULO",
	EXPONENT:          "EXPONENT",
	LT:                "LT",
	LE:                "LE",
	GT:                "GT",
	GE:                "GE",
	ACTION:            "ACTION",
	AND:               "AND",
	AS:                "AS",
	ASK:               "ASK",
	CALL:              "CALL",
	DICT:              "DICT",
	ELSE:              "ELSE",
	FAIL:              "FAIL",
	FROM:              "FROM",
	HAS:               "HAS",
	IF:                "IF",
	IS:                "IS",
	ISNT:              "ISNT",
	LIST:              "LIST",
	NULL:              "NULL",
	NOT:               "NOT",
	OR:                "OR",
	PRINT:             "PRINT",
	RAISE:             "RAISE",
	RESULT:            "RESULT",
	TEST:              "TEST",
	THING:             "THING",
	USE:               "USE",
	SKIP:              "SKIP",
	STOP:              "STOP",
	WHILE:             "WHILE",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// / Reserved words that are active tokens. Words reserved for later
// / (assert, async, await, default, elif, end, for, global, in, lambda,
// / nothing, pass, yield) are deliberately absent and lex as identifiers.
var keywords = map[string]TokenKind{
	"action": ACTION,
	"and":    AND,
	"as":     AS,
	"ask":    ASK,
	"call":   CALL,
	"dict":   DICT,
	"else":   ELSE,
	"fail":   FAIL,
	"false":  BOOLEAN,
	"from":   FROM,
	"has":    HAS,
	"if":     IF,
	"is":     IS,
	"isnt":   ISNT,
	"list":   LIST,
	"null":   NULL,
	"not":    NOT,
	"or":     OR,
	"print":  PRINT,
	"raise":  RAISE,
	"result": RESULT,
	"test":   TEST,
	"thing":  THING,
	"true":   BOOLEAN,
	"use":    USE,
	"skip":   SKIP,
	"stop":   STOP,
	"while":  WHILE,
}

// Token is one lexical unit. Value holds the decoded literal for INTEGER
// (int64), FLOAT (float64), STRING (string) and BOOLEAN (bool) tokens.
// Synthesized INDENT/DEDENT tokens carry Offset 0.
type Token struct {
	Kind   TokenKind
	Text   string
	Value  interface{}
	Line   uint32
	Offset uint32
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %s, %d, %d)", t.Kind, t.describeValue(), t.Line, t.Offset)
}

func (t Token) describeValue() string {
	switch v := t.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case nil:
		return fmt.Sprintf("%q", t.Text)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// / Return a human-readable form of a token kind, used in error messages.
func TokenName(k TokenKind) string {
	switch k {
	case TEOF:
		return "EOF"
	case INDENT:
		return "indent"
	case DEDENT:
		return "dedent"
	case TABULATION:
		return "tab"
	case NEWLINE:
		return "newline"
	case IDENTIFIER:
		return "identifier"
	case INTEGER:
		return "integer"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case BOOLEAN:
		return "boolean"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case MULTIPLY:
		return "'*'"
	case DIVIDE:
		return "'/'"
	case MODULO:
		return "'%'"
	case EXPONENT:
		return "'**'"
	case LT:
		return "'<'"
	case LE:
		return "'<='"
	case GT:
		return "'>'"
	case GE:
		return "'>='"
	}
	if k >= ACTION && int(k) < len(kindNames) {
		return "'" + strings.ToLower(kindNames[k]) + "'"
	}
	return k.String()
}

// LexError is an unrecognized character. It never aborts tokenization.
type LexError struct {
	Char   string
	Line   uint32
	Offset uint32
}

func (e LexError) String() string {
	return fmt.Sprintf("illegal character %q at line %d", e.Char, e.Line)
}
