package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// / Render a node as a single-line s-expression, e.g. (+ 1 (* 2 3)).
func Sexpr(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n, -1)
	return sb.String()
}

// / Dump writes a program with nested blocks on their own indented lines.
func Dump(w io.Writer, block Block) {
	var sb strings.Builder
	for _, s := range block {
		writeNode(&sb, s, 0)
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// depth < 0 keeps everything on one line.
func writeBlock(sb *strings.Builder, tag string, block Block, depth int) {
	sb.WriteString("(" + tag)
	for _, s := range block {
		if depth < 0 {
			sb.WriteByte(' ')
			writeNode(sb, s, depth)
			continue
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("  ", depth+1))
		writeNode(sb, s, depth+1)
	}
	sb.WriteByte(')')
}

func writeList(sb *strings.Builder, tag string, exprs []Expr, depth int) {
	sb.WriteString("(" + tag)
	for _, e := range exprs {
		sb.WriteByte(' ')
		writeNode(sb, e, depth)
	}
	sb.WriteByte(')')
}

func writeNode(sb *strings.Builder, n Node, depth int) {
	switch n := n.(type) {
	case *IntegerLiteral:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLiteral:
		s := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		sb.WriteString(s)
	case *StringLiteral:
		sb.WriteString(strconv.Quote(n.Value))
	case *BooleanLiteral:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *NullLiteral:
		sb.WriteString("null")
	case *Identifier:
		sb.WriteString(n.Name)
	case *ArithmeticExpr:
		writeList(sb, n.Op, []Expr{n.Left, n.Right}, depth)
	case *ComparisonExpr:
		writeList(sb, n.Op, []Expr{n.Left, n.Right}, depth)
	case *LogicalExpr:
		if n.Right == nil {
			writeList(sb, n.Op, []Expr{n.Left}, depth)
		} else {
			writeList(sb, n.Op, []Expr{n.Left, n.Right}, depth)
		}
	case *Call:
		writeList(sb, "call "+n.Name, n.Args, depth)
	case *Ask:
		writeList(sb, "ask", n.Prompts, depth)
	case *ListComposite:
		writeBlock(sb, "list", n.Elements, depth)
	case *DictComposite:
		writeBlock(sb, "dict", n.Entries, depth)
	case *VariableDeclaration:
		sb.WriteString("(is " + n.Name + " ")
		writeNode(sb, n.Value, depth)
		sb.WriteByte(')')
	case *IfElse:
		sb.WriteString("(if ")
		writeNode(sb, n.Cond, depth)
		sb.WriteByte(' ')
		writeBlock(sb, "then", n.Then, depth)
		if n.Else != nil {
			sb.WriteByte(' ')
			writeBlock(sb, "else", *n.Else, depth)
		}
		sb.WriteByte(')')
	case *While:
		sb.WriteString("(while ")
		writeNode(sb, n.Cond, depth)
		sb.WriteByte(' ')
		writeBlock(sb, "do", n.Body, depth)
		sb.WriteByte(')')
	case *Stop:
		sb.WriteString("(stop)")
	case *Skip:
		sb.WriteString("(skip)")
	case *Action:
		sb.WriteString("(action " + n.Name + " (" + strings.Join(n.Params, " ") + ") ")
		writeBlock(sb, "do", n.Body, depth)
		sb.WriteByte(')')
	case *Result:
		writeList(sb, "result", n.Values, depth)
	case *Print:
		writeList(sb, "print", n.Values, depth)
	default:
		fmt.Fprintf(sb, "(? %T)", n)
	}
}
