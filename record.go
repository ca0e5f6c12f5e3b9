package tradecal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifies one of the editable fields of a Record.
type Field int

const (
	Underlying Field = iota
	Profit
	Trades
)

// ErrUnknownField is returned when parsing a field name that does not exist.
var ErrUnknownField = errors.New("unknown field")

func (f Field) String() string {
	switch f {
	case Underlying:
		return "underlying"
	case Profit:
		return "profit"
	case Trades:
		return "trades"
	default:
		panic(fmt.Sprintf("unknown field %d", f))
	}
}

// ParseField parses a field name, case insensitive.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "underlying", "stock", "symbol":
		return Underlying, nil
	case "profit", "pnl":
		return Profit, nil
	case "trades", "count":
		return Trades, nil
	default:
		return Underlying, fmt.Errorf("%w %q", ErrUnknownField, s)
	}
}

// Record holds what was traded on a single day.
//
// Every field is the raw text as it was entered, "" means unset.
// The text is kept verbatim so that it can be written back unchanged,
// numeric values are only derived when needed.
type Record struct {
	Underlying string
	Profit     string
	Trades     string
}

// IsEmpty returns true if no field is set.
func (r Record) IsEmpty() bool { return r.Underlying == "" && r.Profit == "" && r.Trades == "" }

// Get returns the raw text of a field.
func (r Record) Get(f Field) string {
	switch f {
	case Underlying:
		return r.Underlying
	case Profit:
		return r.Profit
	case Trades:
		return r.Trades
	default:
		panic(fmt.Sprintf("unknown field %d", f))
	}
}

// With returns a copy of r where only the field f is set to value.
func (r Record) With(f Field, value string) Record {
	switch f {
	case Underlying:
		r.Underlying = value
	case Profit:
		r.Profit = value
	case Trades:
		r.Trades = value
	default:
		panic(fmt.Sprintf("unknown field %d", f))
	}
	return r
}

// ProfitValue returns the numeric value of the profit, 0 when unset or unreadable.
func (r Record) ProfitValue() decimal.Decimal { return parseDecimal(r.Profit) }

// TradesValue returns the numeric value of the trade count, 0 when unset or unreadable.
func (r Record) TradesValue() int { return parseInt(r.Trades) }

var (
	// leading decimal number, with an optional exponent.
	decimalPrefixRE = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefixRE     = regexp.MustCompile(`^[+-]?\d+`)
)

// parseDecimal reads the longest numeric prefix of s, "12.5 CAD" reads as 12.5.
// Anything without a numeric prefix reads as zero.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if v, err := decimal.NewFromString(s); err == nil {
		return v
	}
	prefix := decimalPrefixRE.FindString(s)
	if prefix == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// parseInt reads the leading integer of s, "2.7" reads as 2.
// Anything without a numeric prefix reads as zero.
func parseInt(s string) int {
	prefix := intPrefixRE.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		// overflow, far beyond any count of trades.
		return 0
	}
	return v
}
