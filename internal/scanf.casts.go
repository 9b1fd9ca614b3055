package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CastError reports a captured substring that failed its typed
// conversion. It is a hard error, never downgraded to a no-match.
type CastError struct {
	Conv  byte
	Value string
	Err   error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("%s: %%%c on %q", ErrMsgCastFailed, e.Conv, e.Value)
}

func (e *CastError) Unwrap() error {
	return e.Err
}

const ErrMsgCastFailed = "cast failed"

// ApplyCast converts one captured substring according to its
// (lowercased) conversion letter. Integer conversions yield int64,
// float conversions float64, s/c the text unchanged, and r the value
// of the literal evaluator.
func ApplyCast(conv byte, value string) (any, error) {
	switch conv {
	case 'd', 'u':
		return castInt(conv, value, 10)
	case 'o':
		return castInt(conv, value, 8)
	case 'x':
		return castHex(value)
	case 'i':
		// Base auto-detection: 0x/0X hex, leading zero octal, else
		// decimal. strconv's base 0 implements exactly this.
		return castInt(conv, value, 0)
	case 'e', 'f', 'g':
		return castFloat(conv, value)
	case 's', 'c':
		return value, nil
	case 'r':
		v, err := EvalLiteral(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, &CastError{Conv: conv, Value: value}
	}
}

func castInt(conv byte, value string, base int) (any, error) {
	n, err := strconv.ParseInt(value, base, 64)
	if err != nil {
		return nil, &CastError{Conv: conv, Value: value, Err: err}
	}
	return n, nil
}

// castHex strips an optional 0x/0X marker after the sign; ParseInt
// with an explicit base rejects the prefix form.
func castHex(value string) (any, error) {
	digits := value
	sign := ""
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	n, err := strconv.ParseInt(sign+digits, 16, 64)
	if err != nil {
		return nil, &CastError{Conv: 'x', Value: value, Err: err}
	}
	return n, nil
}

// castFloat handles the NaN/Inf spellings itself because ParseFloat
// rejects a signed NaN; everything else is delegated.
func castFloat(conv byte, value string) (any, error) {
	digits := value
	negative := false
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		negative = digits[0] == '-'
		digits = digits[1:]
	}
	switch strings.ToLower(digits) {
	case "nan":
		return math.NaN(), nil
	case "inf", "infinity":
		if negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, &CastError{Conv: conv, Value: value, Err: err}
	}
	return f, nil
}
