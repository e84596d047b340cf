package confdoc

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when text is not a finite decimal number.
var ErrInvalidNumber = errors.New("not a finite decimal number")

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// Number is a numeric value. Integral values are held as int64 so that large
// identifiers such as world seeds survive a round trip without losing
// precision; everything else is a float64.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Kind implements Node.
func (Number) Kind() Kind { return KindNumber }
func (Number) isNode()    {}

// Int returns an integral Number.
func Int(v int64) Number {
	return Number{i: v, isInt: true}
}

// Float returns a Number for v. Integral values that fit in an int64 are
// normalized to the integer form, so Float(20) == Int(20).
func Float(v float64) Number {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return Int(int64(v))
	}
	return Number{f: v}
}

// ParseNumber parses s as a finite decimal number. Partial parses, hex
// literals, Inf and NaN are rejected.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return Number{}, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	if integerPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return Float(f), nil
}

// IsInt reports whether the number is integral.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the value truncated to an int64.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value as a float64.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// String renders the canonical decimal form: integers without a fractional
// part, floats in the shortest form that round-trips, never with an exponent.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}
