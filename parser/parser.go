// Package parser builds a Moon syntax tree from filtered tokens.
package parser

import (
	"fmt"

	"moon-go/ast"
	"moon-go/lexer"
)

// SyntaxError aborts the whole parse. Tok is the offending token; a TEOF
// token means input ended too early.
type SyntaxError struct {
	Tok     lexer.Token
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Tok.Kind == lexer.TEOF {
		return fmt.Sprintf("syntax error: %s at EOF", e.Message)
	}
	return fmt.Sprintf("syntax error at line %d: %s", e.Tok.Line, e.Message)
}

type Parser struct {
	tokens_ []lexer.Token
	pos_    int
}

// / Parse a token sequence (as produced by lexer.Tokenize) into a program.
func Parse(tokens []lexer.Token) (ast.Block, error) {
	p := Parser{}
	p.tokens_ = tokens
	return p.ParseProgram()
}

// / Tokenize and parse source. Lexical errors are returned alongside; they
// / do not stop parsing of the remaining tokens.
func ParseSource(source string) (ast.Block, []lexer.LexError, error) {
	tokens, errs := lexer.Tokenize(source)
	program, err := Parse(tokens)
	return program, errs, err
}

func (this *Parser) ParseProgram() (ast.Block, error) {
	block := ast.Block{}
	for {
		switch this.peek().Kind {
		case lexer.TEOF:
			return block, nil
		case lexer.NEWLINE:
			this.advance()
		default:
			s, err := this.ParseStatement()
			if err != nil {
				return nil, err
			}
			block = append(block, s)
		}
	}
}

func (this *Parser) peek() lexer.Token {
	if this.pos_ < len(this.tokens_) {
		return this.tokens_[this.pos_]
	}
	line := uint32(1)
	if n := len(this.tokens_); n > 0 {
		line = this.tokens_[n-1].Line
	}
	return lexer.Token{Kind: lexer.TEOF, Line: line}
}

func (this *Parser) peekAt(n int) lexer.Token {
	if this.pos_+n < len(this.tokens_) {
		return this.tokens_[this.pos_+n]
	}
	return lexer.Token{Kind: lexer.TEOF}
}

func (this *Parser) advance() lexer.Token {
	tok := this.peek()
	if this.pos_ < len(this.tokens_) {
		this.pos_++
	}
	return tok
}

func (this *Parser) PeekToken(kind lexer.TokenKind) bool {
	if this.peek().Kind == kind {
		this.advance()
		return true
	}
	return false
}

func (this *Parser) ExpectToken(expected lexer.TokenKind) (lexer.Token, error) {
	tok := this.peek()
	if tok.Kind != expected {
		return tok, this.unexpected(tok, "expected "+lexer.TokenName(expected))
	}
	return this.advance(), nil
}

func (this *Parser) unexpected(tok lexer.Token, context string) error {
	msg := "unexpected " + lexer.TokenName(tok.Kind)
	if context != "" {
		msg = context + ", got " + lexer.TokenName(tok.Kind)
	}
	return &SyntaxError{Tok: tok, Message: msg}
}

func pos(tok lexer.Token) ast.Pos {
	return ast.Pos{LineNo: tok.Line}
}

// / A simple statement ends at NEWLINE, at a DEDENT closing its block, at
// / EOF, or right after a composite literal suite.
func (this *Parser) expectEnd() error {
	switch this.peek().Kind {
	case lexer.NEWLINE:
		this.advance()
		return nil
	case lexer.DEDENT, lexer.TEOF:
		return nil
	}
	if this.pos_ > 0 && this.tokens_[this.pos_-1].Kind == lexer.DEDENT {
		return nil
	}
	return this.unexpected(this.peek(), "expected newline")
}

func (this *Parser) ParseStatement() (ast.Statement, error) {
	tok := this.peek()
	switch tok.Kind {
	case lexer.IF:
		return this.ParseIf()
	case lexer.WHILE:
		return this.ParseWhile()
	case lexer.ACTION:
		return this.ParseAction()
	case lexer.STOP:
		this.advance()
		return &ast.Stop{Pos: pos(tok)}, this.expectEnd()
	case lexer.SKIP:
		this.advance()
		return &ast.Skip{Pos: pos(tok)}, this.expectEnd()
	case lexer.PRINT:
		this.advance()
		values, err := this.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.Print{Pos: pos(tok), Values: values}, this.expectEnd()
	case lexer.RESULT:
		this.advance()
		values, err := this.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.Result{Pos: pos(tok), Values: values}, this.expectEnd()
	case lexer.IDENTIFIER:
		if this.peekAt(1).Kind == lexer.IS {
			return this.ParseLet()
		}
	case lexer.INDENT, lexer.DEDENT, lexer.ELSE:
		return nil, this.unexpected(tok, "")
	}

	e, err := this.ParseExpression()
	if err != nil {
		return nil, err
	}
	return e, this.expectEnd()
}

func (this *Parser) ParseLet() (ast.Statement, error) {
	name := this.advance()
	this.advance() // is
	value, err := this.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Pos: pos(name), Name: name.Value.(string), Value: value}, this.expectEnd()
}

func (this *Parser) ParseIf() (ast.Statement, error) {
	tok := this.advance()
	cond, err := this.ParseExpression()
	if err != nil {
		return nil, err
	}
	then, err := this.ParseSuite()
	if err != nil {
		return nil, err
	}
	ret := &ast.IfElse{Pos: pos(tok), Cond: cond, Then: then}
	if this.PeekToken(lexer.ELSE) {
		otherwise, err := this.ParseSuite()
		if err != nil {
			return nil, err
		}
		ret.Else = &otherwise
	}
	return ret, nil
}

func (this *Parser) ParseWhile() (ast.Statement, error) {
	tok := this.advance()
	cond, err := this.ParseExpression()
	if err != nil {
		return nil, err
	}
	body, err := this.ParseSuite()
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: pos(tok), Cond: cond, Body: body}, nil
}

func (this *Parser) ParseAction() (ast.Statement, error) {
	tok := this.advance()
	name, err := this.ExpectToken(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	var params []string
	for this.peek().Kind == lexer.IDENTIFIER {
		params = append(params, this.advance().Value.(string))
	}
	body, err := this.ParseSuite()
	if err != nil {
		return nil, err
	}
	return &ast.Action{Pos: pos(tok), Name: name.Value.(string), Params: params, Body: body}, nil
}

// / suite := NEWLINE INDENT statement* DEDENT
func (this *Parser) ParseSuite() (ast.Block, error) {
	if _, err := this.ExpectToken(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if _, err := this.ExpectToken(lexer.INDENT); err != nil {
		return nil, err
	}
	block := ast.Block{}
	for {
		switch this.peek().Kind {
		case lexer.DEDENT:
			this.advance()
			return block, nil
		case lexer.TEOF:
			return nil, this.unexpected(this.peek(), "expected dedent")
		case lexer.NEWLINE:
			this.advance()
		default:
			s, err := this.ParseStatement()
			if err != nil {
				return nil, err
			}
			block = append(block, s)
		}
	}
}

func startsExpression(k lexer.TokenKind) bool {
	switch k {
	case lexer.INTEGER, lexer.FLOAT, lexer.STRING, lexer.BOOLEAN, lexer.NULL, lexer.IDENTIFIER,
		lexer.NOT, lexer.CALL, lexer.ASK, lexer.LIST, lexer.DICT:
		return true
	}
	return false
}

// / Juxtaposed expressions, as taken by print, result, call and ask.
func (this *Parser) parseExprList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for startsExpression(this.peek().Kind) {
		e, err := this.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// / expression := or_expr
func (this *Parser) ParseExpression() (ast.Expr, error) {
	return this.parseOr()
}

func (this *Parser) parseOr() (ast.Expr, error) {
	left, err := this.parseAnd()
	if err != nil {
		return nil, err
	}
	for this.peek().Kind == lexer.OR {
		tok := this.advance()
		right, err := this.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Pos: pos(tok), Op: "or", Left: left, Right: right}
	}
	return left, nil
}

func (this *Parser) parseAnd() (ast.Expr, error) {
	left, err := this.parseNot()
	if err != nil {
		return nil, err
	}
	for this.peek().Kind == lexer.AND {
		tok := this.advance()
		right, err := this.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Pos: pos(tok), Op: "and", Left: left, Right: right}
	}
	return left, nil
}

func (this *Parser) parseNot() (ast.Expr, error) {
	if this.peek().Kind == lexer.NOT {
		tok := this.advance()
		operand, err := this.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.LogicalExpr{Pos: pos(tok), Op: "not", Left: operand}, nil
	}
	return this.parseComparison()
}

var comparisonOps = map[lexer.TokenKind]string{
	lexer.LT:   "<",
	lexer.LE:   "<=",
	lexer.GT:   ">",
	lexer.GE:   ">=",
	lexer.IS:   "==",
	lexer.ISNT: "!=",
}

func (this *Parser) parseComparison() (ast.Expr, error) {
	left, err := this.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOps[this.peek().Kind]
	if !ok {
		return left, nil
	}
	tok := this.advance()
	right, err := this.parseAdditive()
	if err != nil {
		return nil, err
	}
	if _, chained := comparisonOps[this.peek().Kind]; chained {
		return nil, this.unexpected(this.peek(), "comparisons cannot be chained")
	}
	return &ast.ComparisonExpr{Pos: pos(tok), Op: op, Left: left, Right: right}, nil
}

func (this *Parser) parseAdditive() (ast.Expr, error) {
	left, err := this.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch this.peek().Kind {
		case lexer.PLUS:
			op = "+"
		case lexer.MINUS:
			op = "-"
		default:
			return left, nil
		}
		tok := this.advance()
		right, err := this.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.ArithmeticExpr{Pos: pos(tok), Op: op, Left: left, Right: right}
	}
}

func (this *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := this.parseExponent()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch this.peek().Kind {
		case lexer.MULTIPLY:
			op = "*"
		case lexer.DIVIDE:
			op = "/"
		case lexer.MODULO:
			op = "%"
		default:
			return left, nil
		}
		tok := this.advance()
		right, err := this.parseExponent()
		if err != nil {
			return nil, err
		}
		left = &ast.ArithmeticExpr{Pos: pos(tok), Op: op, Left: left, Right: right}
	}
}

// ** binds tightest and groups to the right.
func (this *Parser) parseExponent() (ast.Expr, error) {
	base, err := this.parsePrimary()
	if err != nil {
		return nil, err
	}
	if this.peek().Kind != lexer.EXPONENT {
		return base, nil
	}
	tok := this.advance()
	exponent, err := this.parseExponent()
	if err != nil {
		return nil, err
	}
	return &ast.ArithmeticExpr{Pos: pos(tok), Op: "**", Left: base, Right: exponent}, nil
}

func (this *Parser) parsePrimary() (ast.Expr, error) {
	tok := this.peek()
	switch tok.Kind {
	case lexer.INTEGER:
		this.advance()
		return &ast.IntegerLiteral{Pos: pos(tok), Value: tok.Value.(int64)}, nil
	case lexer.FLOAT:
		this.advance()
		return &ast.FloatLiteral{Pos: pos(tok), Value: tok.Value.(float64)}, nil
	case lexer.STRING:
		this.advance()
		return &ast.StringLiteral{Pos: pos(tok), Value: tok.Value.(string)}, nil
	case lexer.BOOLEAN:
		this.advance()
		return &ast.BooleanLiteral{Pos: pos(tok), Value: tok.Value.(bool)}, nil
	case lexer.NULL:
		this.advance()
		return &ast.NullLiteral{Pos: pos(tok)}, nil
	case lexer.IDENTIFIER:
		this.advance()
		return &ast.Identifier{Pos: pos(tok), Name: tok.Value.(string)}, nil
	case lexer.CALL:
		this.advance()
		name, err := this.ExpectToken(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		args, err := this.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.Call{Pos: pos(tok), Name: name.Value.(string), Args: args}, nil
	case lexer.ASK:
		this.advance()
		prompts, err := this.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.Ask{Pos: pos(tok), Prompts: prompts}, nil
	case lexer.LIST, lexer.DICT:
		return this.parseComposite()
	}
	return nil, this.unexpected(tok, "expected expression")
}

// / list/dict followed by an indented suite of entries, or nothing.
func (this *Parser) parseComposite() (ast.Expr, error) {
	tok := this.advance()
	entries := ast.Block{}
	if this.peek().Kind == lexer.NEWLINE && this.peekAt(1).Kind == lexer.INDENT {
		var err error
		if entries, err = this.ParseSuite(); err != nil {
			return nil, err
		}
	}
	if tok.Kind == lexer.LIST {
		return &ast.ListComposite{Pos: pos(tok), Elements: entries}, nil
	}
	return &ast.DictComposite{Pos: pos(tok), Entries: entries}, nil
}
