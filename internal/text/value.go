package text

import (
	"math"
	"reflect"
)

// Value is text destined for display. The zero Value is Absent and renders
// exactly like the empty string.
type Value struct {
	s       string
	present bool
}

// Absent stands in for missing, null, NaN and boolean inputs.
var Absent = Value{}

// Text wraps a string.
func Text(s string) Value { return Value{s: s, present: true} }

// FromAny normalizes a decoded value (JSON, YAML, flags) at the boundary.
// Only strings carry text; every other type is Absent.
func FromAny(v any) Value {
	if s, ok := v.(string); ok {
		return Text(s)
	}
	return Absent
}

// String returns the text, or "" when absent.
func (v Value) String() string {
	if !v.present {
		return ""
	}
	return v.s
}

// IsAbsent reports whether v is one of the empty-equivalent inputs.
func (v Value) IsAbsent() bool { return !v.present }

// Number is a value tagged as numeric before it reaches FormatInt.
// The zero Number is not usable.
type Number struct {
	f      float64
	i      int64
	exact  bool // i holds the value; set for integer inputs
	usable bool
}

// NoNumber is the sentinel for anything that is not a finite number.
var NoNumber = Number{}

// Int tags an integer.
func Int(n int) Number { return fromInt64(int64(n)) }

func fromInt64(n int64) Number {
	return Number{f: float64(n), i: n, exact: true, usable: true}
}

// Float tags a float. NaN and infinities are not usable.
func Float(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NoNumber
	}
	return Number{f: f, usable: true}
}

// NumberFromAny accepts Go integer and float kinds only. Strings are never
// parsed, even when they look numeric.
func NumberFromAny(v any) Number {
	if v == nil {
		return NoNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return fromInt64(int64(u))
		}
		return Number{f: float64(rv.Uint()), usable: true}
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	default:
		return NoNumber
	}
}

// Usable reports whether n holds a finite number.
func (n Number) Usable() bool { return n.usable }

// IntValue returns the integer part of n, saturated to the int32 range.
func (n Number) IntValue() (int, bool) {
	if !n.usable {
		return 0, false
	}
	if n.exact {
		switch {
		case n.i > math.MaxInt32:
			return math.MaxInt32, true
		case n.i < math.MinInt32:
			return math.MinInt32, true
		}
		return int(n.i), true
	}
	t := math.Trunc(n.f)
	switch {
	case t > math.MaxInt32:
		return math.MaxInt32, true
	case t < math.MinInt32:
		return math.MinInt32, true
	}
	return int(t), true
}

func clampMin(n, lo int) int {
	if n < lo {
		return lo
	}
	return n
}
