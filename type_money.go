package shop

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported decimal source %T", value))
	}
}

// ParsePrice parses a decimal string like "12.50" into a Money in the
// given currency. Negative values are rejected: the catalog never holds
// a negative price.
func ParsePrice(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("invalid price %q: must not be negative", s)
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency we need to call the money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the currency-formatted representation, e.g. "$12.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the plain numeric representation with the currency's
// fraction digits and no symbol, e.g. "12.50". This is the form persisted
// to CSV files and printed in receipt columns.
func (m Money) Fixed() string {
	return m.value.StringFixed(int32(m.currency().Fraction))
}

func (m Money) Currency() string     { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }

// MulInt scales the value by an integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(qty))), cur: m.cur}
}

// Percent returns pct percent of the value.
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{value: m.value.Mul(pct).Div(decimal.NewFromInt(100)), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
