// Package interpreter evaluates a Moon syntax tree.
package interpreter

import (
	"strings"

	"github.com/tevino/abool/v2"

	"moon-go/ast"
)

const kMaxCallDepth = 1000

type SignalKind uint8

const (
	SignalStop SignalKind = iota
	SignalSkip
	SignalReturned
)

// Signal is non-local control flow leaving a block: stop and skip end or
// advance the innermost loop, result leaves the innermost action.
type Signal struct {
	Kind  SignalKind
	Value Value
}

// Interpreter runs programs against one global scope and action table.
// State persists across ExecuteProgram calls, as in the interactive
// playground.
type Interpreter struct {
	env_       *BindingEnv
	actions_   *ActionTable
	output_    OutputFunc
	input_     InputFunc
	interrupt_ *abool.AtomicBool
	depth_     int
}

func NewInterpreter(output OutputFunc, input InputFunc) *Interpreter {
	ret := Interpreter{}
	ret.env_ = NewBindingEnv()
	ret.actions_ = NewActionTable()
	ret.output_ = output
	ret.input_ = input
	ret.interrupt_ = abool.New()
	return &ret
}

// / ExecuteProgram runs program with fresh state.
func ExecuteProgram(program ast.Block, output OutputFunc, input InputFunc) error {
	return NewInterpreter(output, input).ExecuteProgram(program)
}

// / Share flag with a signal handler or timer; once set, the running
// / program stops with an Interrupted fault at the next loop iteration or
// / action call.
func (this *Interpreter) SetInterrupt(flag *abool.AtomicBool) {
	this.interrupt_ = flag
}

func (this *Interpreter) Env() *BindingEnv {
	return this.env_
}

func (this *Interpreter) Actions() *ActionTable {
	return this.actions_
}

// / ExecuteProgram evaluates each top-level statement in order. The first
// / fault aborts the run; a stray stop, skip or result ends it quietly.
func (this *Interpreter) ExecuteProgram(program ast.Block) error {
	if len(program) == 0 {
		return fault(NoInstruction, 0, "program contains no instruction")
	}
	this.depth_ = 0
	_, err := this.execBlock(program, this.env_)
	return err
}

func (this *Interpreter) checkInterrupt(line uint32) error {
	if this.interrupt_ != nil && this.interrupt_.IsSet() {
		return fault(Interrupted, line, "execution interrupted")
	}
	return nil
}

func (this *Interpreter) execBlock(block ast.Block, env *BindingEnv) (*Signal, error) {
	for _, s := range block {
		sig, err := this.execStatement(s, env)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

func (this *Interpreter) execStatement(s ast.Statement, env *BindingEnv) (*Signal, error) {
	switch n := s.(type) {
	case *ast.VariableDeclaration:
		v, err := this.evalExpr(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Assign(n.Name, v)
	case *ast.IfElse:
		cond, err := this.evalExpr(n.Cond, env)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return this.execBlock(n.Then, env)
		}
		if n.Else != nil {
			return this.execBlock(*n.Else, env)
		}
	case *ast.While:
		return this.execWhile(n, env)
	case *ast.Stop:
		return &Signal{Kind: SignalStop}, nil
	case *ast.Skip:
		return &Signal{Kind: SignalSkip}, nil
	case *ast.Action:
		this.actions_.AddAction(NewAction(n))
	case *ast.Result:
		values, err := this.evalList(n.Values, env)
		if err != nil {
			return nil, err
		}
		return &Signal{Kind: SignalReturned, Value: resultValue(values)}, nil
	case *ast.Print:
		values, err := this.evalList(n.Values, env)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v.String()
		}
		if this.output_ != nil {
			this.output_(strings.Join(parts, " "))
		}
	case ast.Expr:
		if _, err := this.evalExpr(n, env); err != nil {
			return nil, err
		}
	default:
		return nil, fault(NotSupported, s.Line(), "unknown statement %T", s)
	}
	return nil, nil
}

// result with no values yields null, one value itself, several a tuple.
func resultValue(values []Value) Value {
	switch len(values) {
	case 0:
		return Null
	case 1:
		return values[0]
	}
	return TupleValue(values)
}

func (this *Interpreter) execWhile(n *ast.While, env *BindingEnv) (*Signal, error) {
	for {
		if err := this.checkInterrupt(n.Line()); err != nil {
			return nil, err
		}
		cond, err := this.evalExpr(n.Cond, env)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return nil, nil
		}
		sig, err := this.execBlock(n.Body, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			switch sig.Kind {
			case SignalStop:
				return nil, nil
			case SignalSkip:
				continue
			default:
				return sig, nil
			}
		}
	}
}

func (this *Interpreter) evalList(exprs []ast.Expr, env *BindingEnv) ([]Value, error) {
	values := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := this.evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (this *Interpreter) evalExpr(e ast.Expr, env *BindingEnv) (Value, error) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return IntValue(n.Value), nil
	case *ast.FloatLiteral:
		return FloatValue(n.Value), nil
	case *ast.StringLiteral:
		return StringValue(n.Value), nil
	case *ast.BooleanLiteral:
		return BoolValue(n.Value), nil
	case *ast.NullLiteral:
		return Null, nil
	case *ast.Identifier:
		v, ok := env.LookupVariable(n.Name)
		if !ok {
			return Null, fault(UndefinedVariable, n.Line(), "'%s' is not defined", n.Name)
		}
		return v, nil
	case *ast.ArithmeticExpr:
		return this.evalBinary(n.Op, n.Left, n.Right, n.Line(), env)
	case *ast.ComparisonExpr:
		return this.evalBinary(n.Op, n.Left, n.Right, n.Line(), env)
	case *ast.LogicalExpr:
		return this.evalLogical(n, env)
	case *ast.Call:
		return this.callAction(n, env)
	case *ast.Ask:
		return this.evalAsk(n, env)
	case *ast.ListComposite:
		return Null, fault(NotSupported, n.Line(), "list values are not supported yet")
	case *ast.DictComposite:
		return Null, fault(NotSupported, n.Line(), "dict values are not supported yet")
	}
	return Null, fault(NotSupported, e.Line(), "unknown expression %T", e)
}

func (this *Interpreter) evalBinary(op string, left, right ast.Expr, line uint32, env *BindingEnv) (Value, error) {
	l, err := this.evalExpr(left, env)
	if err != nil {
		return Null, err
	}
	r, err := this.evalExpr(right, env)
	if err != nil {
		return Null, err
	}
	return applyBinary(op, l, r, line)
}

// Both operands of and/or are always evaluated.
func (this *Interpreter) evalLogical(n *ast.LogicalExpr, env *BindingEnv) (Value, error) {
	l, err := this.evalExpr(n.Left, env)
	if err != nil {
		return Null, err
	}
	if n.Op == "not" {
		return BoolValue(!l.Truthy()), nil
	}
	r, err := this.evalExpr(n.Right, env)
	if err != nil {
		return Null, err
	}
	if n.Op == "and" {
		return BoolValue(l.Truthy() && r.Truthy()), nil
	}
	return BoolValue(l.Truthy() || r.Truthy()), nil
}

// / callAction binds arguments positionally in a child scope of the caller.
// / Missing arguments are null; extra ones are evaluated and dropped. Writes
// / to caller variables are committed only when the body completes.
func (this *Interpreter) callAction(n *ast.Call, env *BindingEnv) (Value, error) {
	args, err := this.evalList(n.Args, env)
	if err != nil {
		return Null, err
	}
	action := this.actions_.LookupAction(n.Name)
	if action == nil {
		return Null, fault(UndefinedAction, n.Line(), "'%s' is not defined", n.Name)
	}
	if err := this.checkInterrupt(n.Line()); err != nil {
		return Null, err
	}
	if this.depth_ >= kMaxCallDepth {
		return Null, fault(CallDepthExceeded, n.Line(), "more than %d nested calls", kMaxCallDepth)
	}

	scope := NewBindingEnvWithParent(env)
	for i, param := range action.params_ {
		if i < len(args) {
			scope.AddBinding(param, args[i])
		} else {
			scope.AddBinding(param, Null)
		}
	}
	this.depth_++
	sig, err := this.execBlock(action.body_, scope)
	this.depth_--
	if err != nil {
		return Null, err
	}
	scope.Commit()
	if sig != nil && sig.Kind == SignalReturned {
		return sig.Value, nil
	}
	return Null, nil
}

func (this *Interpreter) evalAsk(n *ast.Ask, env *BindingEnv) (Value, error) {
	values, err := this.evalList(n.Prompts, env)
	if err != nil {
		return Null, err
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	if this.input_ == nil {
		return Null, fault(InputFailure, n.Line(), "no input available")
	}
	answer, err := this.input_(strings.Join(parts, " "))
	if err != nil {
		return Null, fault(InputFailure, n.Line(), "%v", err)
	}
	return Autocast(answer), nil
}
