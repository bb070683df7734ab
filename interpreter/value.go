package interpreter

import (
	"math"
	"strconv"
	"strings"
)

type ValueType uint8

const (
	NullType ValueType = iota
	IntType
	FloatType
	StringType
	BoolType
	TupleType
)

func (t ValueType) String() string {
	switch t {
	case NullType:
		return "null"
	case IntType:
		return "integer"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case BoolType:
		return "boolean"
	case TupleType:
		return "tuple"
	}
	return "unknown"
}

// Value is a runtime value. Only the field matching Type is meaningful.
type Value struct {
	Type  ValueType
	Int   int64
	Float float64
	Str   string
	Bool  bool
	Tuple []Value
}

var Null = Value{Type: NullType}

func IntValue(i int64) Value       { return Value{Type: IntType, Int: i} }
func FloatValue(f float64) Value   { return Value{Type: FloatType, Float: f} }
func StringValue(s string) Value   { return Value{Type: StringType, Str: s} }
func BoolValue(b bool) Value       { return Value{Type: BoolType, Bool: b} }
func TupleValue(vs []Value) Value  { return Value{Type: TupleType, Tuple: vs} }
func (v Value) IsNumber() bool     { return v.Type == IntType || v.Type == FloatType }

// / Numeric value as float64; only valid when IsNumber.
func (v Value) AsFloat() float64 {
	if v.Type == IntType {
		return float64(v.Int)
	}
	return v.Float
}

// / Truthy reports the value's truth in conditions: false and null are
// / false, numbers when non-zero, strings and tuples when non-empty.
func (v Value) Truthy() bool {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int != 0
	case FloatType:
		return v.Float != 0
	case StringType:
		return v.Str != ""
	case TupleType:
		return len(v.Tuple) != 0
	}
	return false
}

// / Equal implements is/isnt. Numbers compare by value across int and
// / float; otherwise values of different types are never equal.
func (v Value) Equal(o Value) bool {
	if v.IsNumber() && o.IsNumber() {
		if v.Type == IntType && o.Type == IntType {
			return v.Int == o.Int
		}
		return v.AsFloat() == o.AsFloat()
	}
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case NullType:
		return true
	case StringType:
		return v.Str == o.Str
	case BoolType:
		return v.Bool == o.Bool
	case TupleType:
		if len(v.Tuple) != len(o.Tuple) {
			return false
		}
		for i := range v.Tuple {
			if !v.Tuple[i].Equal(o.Tuple[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// / String is the canonical printed form.
func (v Value) String() string {
	switch v.Type {
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return FormatFloat(v.Float)
	case StringType:
		return v.Str
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case TupleType:
		parts := make([]string, len(v.Tuple))
		for i, e := range v.Tuple {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return "null"
}

// / FormatFloat prints the shortest round-tripping form, always with a
// / fraction or exponent: 1.0, 0.5, 1e+16, 1e-05.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
