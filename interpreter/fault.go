package interpreter

import "fmt"

type FaultKind uint8

const (
	UndefinedVariable FaultKind = iota
	UndefinedAction
	NotSupported
	TypeMismatch
	DivisionByZero
	NoInstruction
	Interrupted
	InputFailure
	CallDepthExceeded
	IntegerOverflow
)

func (k FaultKind) String() string {
	switch k {
	case UndefinedVariable:
		return "undefined variable"
	case UndefinedAction:
		return "undefined action"
	case NotSupported:
		return "not supported"
	case TypeMismatch:
		return "type mismatch"
	case DivisionByZero:
		return "division by zero"
	case NoInstruction:
		return "no instruction"
	case Interrupted:
		return "interrupted"
	case InputFailure:
		return "input failure"
	case CallDepthExceeded:
		return "call depth exceeded"
	case IntegerOverflow:
		return "integer overflow"
	}
	return "fault"
}

// Fault is a runtime error. It aborts the whole run.
type Fault struct {
	Kind    FaultKind
	Line    uint32
	Message string
}

func (f *Fault) Error() string {
	if f.Line == 0 {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Kind, f.Message)
}

func fault(kind FaultKind, line uint32, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
