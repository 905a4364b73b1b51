package jsonschema

import (
	"fmt"
	"math/big"
	"strings"
)

// newRat converts a decoded JSON numeric literal (float64, or any Go
// integer kind produced by the constructor API) into an exact big.Rat.
// Using exact rational arithmetic throughout the numeric keywords is what
// lets multipleOf recognize 0.0075 as a multiple of 0.0001 without the
// representation error float64 division would introduce.
//
// Grounded on the teacher's rat.go: same convertToBigRat strategy, minus
// the JSON (un)marshal glue this system doesn't need on the hot path.
func newRat(value interface{}) (*big.Rat, bool) {
	var str string
	switch v := value.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	case *big.Rat:
		return v, true
	default:
		return nil, false
	}

	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, false
	}
	return r, true
}

// formatRat renders a big.Rat the way the diagnostic messages expect:
// plain integers print without a decimal point, and fractional values are
// trimmed of trailing zeros.
func formatRat(r *big.Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(20)
	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// isMultipleOf reports whether value divided by divisor, computed exactly
// in rational arithmetic, is an integer, so that multipleOf: 0.0001
// accepts 0.0075 and rejects 0.00751.
func isMultipleOf(value, divisor *big.Rat) bool {
	quotient := new(big.Rat).Quo(value, divisor)
	return quotient.IsInt()
}
