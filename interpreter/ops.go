package interpreter

import (
	"math"
)

const kMinInt64 = math.MinInt64

type binaryKey struct {
	op          string
	left, right ValueType
}

type binaryFunc func(l, r Value, line uint32) (Value, error)

// binaryOps is the dispatch table for + - * / % ** and ordering. Missing
// entries are type mismatches. Equality is handled by Value.Equal.
var binaryOps = map[binaryKey]binaryFunc{}

func init() {
	numeric := []ValueType{IntType, FloatType}
	for _, l := range numeric {
		for _, r := range numeric {
			both := l == IntType && r == IntType
			for _, op := range []string{"+", "-", "*", "%", "**"} {
				if both {
					binaryOps[binaryKey{op, l, r}] = intArith(op)
				} else {
					binaryOps[binaryKey{op, l, r}] = floatArith(op)
				}
			}
			binaryOps[binaryKey{"/", l, r}] = divide
			for _, op := range []string{"<", "<=", ">", ">="} {
				binaryOps[binaryKey{op, l, r}] = compareNumbers(op)
			}
		}
	}
	binaryOps[binaryKey{"+", StringType, StringType}] = func(l, r Value, _ uint32) (Value, error) {
		return StringValue(l.Str + r.Str), nil
	}
	for _, op := range []string{"<", "<=", ">", ">="} {
		binaryOps[binaryKey{op, StringType, StringType}] = compareStrings(op)
	}
}

func applyBinary(op string, l, r Value, line uint32) (Value, error) {
	switch op {
	case "==":
		return BoolValue(l.Equal(r)), nil
	case "!=":
		return BoolValue(!l.Equal(r)), nil
	}
	fn, ok := binaryOps[binaryKey{op, l.Type, r.Type}]
	if !ok {
		return Null, fault(TypeMismatch, line, "unsupported operand types for %s: %s and %s", op, l.Type, r.Type)
	}
	return fn(l, r, line)
}

func intArith(op string) binaryFunc {
	return func(l, r Value, line uint32) (Value, error) {
		a, b := l.Int, r.Int
		switch op {
		case "+":
			if c, ok := addInt(a, b); ok {
				return IntValue(c), nil
			}
			return Null, fault(IntegerOverflow, line, "%d + %d overflows a 64-bit integer", a, b)
		case "-":
			if c, ok := subInt(a, b); ok {
				return IntValue(c), nil
			}
			return Null, fault(IntegerOverflow, line, "%d - %d overflows a 64-bit integer", a, b)
		case "*":
			if c, ok := mulInt(a, b); ok {
				return IntValue(c), nil
			}
			return Null, fault(IntegerOverflow, line, "%d * %d overflows a 64-bit integer", a, b)
		case "%":
			if b == 0 {
				return Null, fault(DivisionByZero, line, "integer modulo by zero")
			}
			m := a % b
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return IntValue(m), nil
		case "**":
			if b < 0 {
				if a == 0 {
					return Null, fault(DivisionByZero, line, "zero to a negative power")
				}
				return FloatValue(math.Pow(float64(a), float64(b))), nil
			}
			if c, ok := ipow(a, b); ok {
				return IntValue(c), nil
			}
			return Null, fault(IntegerOverflow, line, "%d ** %d overflows a 64-bit integer", a, b)
		}
		return Null, fault(TypeMismatch, line, "unknown operator %s", op)
	}
}

func addInt(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func subInt(a, b int64) (int64, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == kMinInt64) || (b == -1 && a == kMinInt64) || c/b != a {
		return 0, false
	}
	return c, true
}

// Square-and-multiply; false once an intermediate leaves int64.
func ipow(base, exp int64) (int64, bool) {
	result := int64(1)
	ok := true
	for exp > 0 {
		if exp&1 == 1 {
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

func floatArith(op string) binaryFunc {
	return func(l, r Value, line uint32) (Value, error) {
		a, b := l.AsFloat(), r.AsFloat()
		switch op {
		case "+":
			return FloatValue(a + b), nil
		case "-":
			return FloatValue(a - b), nil
		case "*":
			return FloatValue(a * b), nil
		case "%":
			if b == 0 {
				return Null, fault(DivisionByZero, line, "float modulo by zero")
			}
			m := math.Mod(a, b)
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return FloatValue(m), nil
		case "**":
			if a == 0 && b < 0 {
				return Null, fault(DivisionByZero, line, "zero to a negative power")
			}
			return FloatValue(math.Pow(a, b)), nil
		}
		return Null, fault(TypeMismatch, line, "unknown operator %s", op)
	}
}

// Division always yields a float.
func divide(l, r Value, line uint32) (Value, error) {
	b := r.AsFloat()
	if b == 0 {
		return Null, fault(DivisionByZero, line, "division by zero")
	}
	return FloatValue(l.AsFloat() / b), nil
}

func compareNumbers(op string) binaryFunc {
	return func(l, r Value, _ uint32) (Value, error) {
		var c int
		if l.Type == IntType && r.Type == IntType {
			c = cmp(l.Int < r.Int, l.Int > r.Int)
		} else {
			a, b := l.AsFloat(), r.AsFloat()
			c = cmp(a < b, a > b)
			if math.IsNaN(a) || math.IsNaN(b) {
				return BoolValue(false), nil
			}
		}
		return BoolValue(ordered(op, c)), nil
	}
}

func compareStrings(op string) binaryFunc {
	return func(l, r Value, _ uint32) (Value, error) {
		return BoolValue(ordered(op, cmp(l.Str < r.Str, l.Str > r.Str))), nil
	}
}

func cmp(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func ordered(op string, c int) bool {
	switch op {
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	case ">=":
		return c >= 0
	}
	return false
}
