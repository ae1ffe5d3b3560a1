package model

import "github.com/shopspring/decimal"

// Decimal is a fixed point quantity or amount. Weights are in kilograms.
type Decimal struct {
	value decimal.Decimal
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: decimal.NewFromInt(i)}
}

// MustDecimal parses s and panics on malformed input. Intended for constants and tests.
func MustDecimal(s string) Decimal {
	d, err := NewDecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func SumDecimals(values ...Decimal) Decimal {
	total := Decimal{}
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{value: d.value.Add(o.value)}
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{value: d.value.Sub(o.value)}
}

func (d Decimal) Mul(o Decimal) Decimal {
	return Decimal{value: d.value.Mul(o.value)}
}

func (d Decimal) Div(o Decimal) Decimal {
	return Decimal{value: d.value.Div(o.value)}
}

func (d Decimal) Round(places int32) Decimal {
	return Decimal{value: d.value.Round(places)}
}

func (d Decimal) Cmp(o Decimal) int {
	return d.value.Cmp(o.value)
}

func (d Decimal) GreaterThan(o Decimal) bool {
	return d.value.GreaterThan(o.value)
}

func (d Decimal) Equal(o Decimal) bool {
	return d.value.Equal(o.value)
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) IsNegative() bool {
	return d.value.IsNegative()
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

// StringFixed formats d with exactly places decimals.
func (d Decimal) StringFixed(places int32) string {
	return d.value.StringFixed(places)
}

func (d Decimal) String() string {
	return d.value.String()
}
