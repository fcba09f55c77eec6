// Package types provides the opaque, totally-ordered decimal scalars used
// throughout the book: Price, Quantity and Notional. They wrap
// shopspring/decimal and carry the dimensional relations Price × Quantity =
// Notional, Notional / Price = Quantity and Notional / Quantity = Price.
package types

import "github.com/shopspring/decimal"

// Price is the unit price of a single quantity of the traded asset.
type Price struct{ d decimal.Decimal }

// Quantity is an amount of the base asset.
type Quantity struct{ d decimal.Decimal }

// Notional is an amount of quote currency, i.e. Price × Quantity.
type Notional struct{ d decimal.Decimal }

// ZeroPrice, ZeroQuantity and ZeroNotional are the zero values of each type.
var (
	ZeroPrice    = Price{decimal.Zero}
	ZeroQuantity = Quantity{decimal.Zero}
	ZeroNotional = Notional{decimal.Zero}
)

// NewPrice, NewQuantity and NewNotional build a scalar from a decimal string.
// They panic on malformed input; callers parsing untrusted wire data should
// use ParsePrice, ParseQuantity or ParseNotional instead.
func NewPrice(s string) Price       { return Price{mustDecimal(s)} }
func NewQuantity(s string) Quantity { return Quantity{mustDecimal(s)} }
func NewNotional(s string) Notional { return Notional{mustDecimal(s)} }

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("types: invalid decimal literal: " + s)
	}
	return d
}

// ParsePrice, ParseQuantity and ParseNotional parse a decimal string or JSON
// number rendered as text, surfacing a parse error to the caller.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	return Price{d}, err
}

func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	return Quantity{d}, err
}

func ParseNotional(s string) (Notional, error) {
	d, err := decimal.NewFromString(s)
	return Notional{d}, err
}

// IsZero reports whether the value is exactly zero.
func (p Price) IsZero() bool    { return p.d.IsZero() }
func (q Quantity) IsZero() bool { return q.d.IsZero() }
func (n Notional) IsZero() bool { return n.d.IsZero() }

func (p Price) String() string    { return p.d.String() }
func (q Quantity) String() string { return q.d.String() }
func (n Notional) String() string { return n.d.String() }

// Add, Sub and the comparisons below are monotone in each argument and
// consistent with the total order used by the book's price levels.

func (q Quantity) Add(other Quantity) Quantity { return Quantity{q.d.Add(other.d)} }
func (q Quantity) Sub(other Quantity) Quantity { return Quantity{q.d.Sub(other.d)} }

func (n Notional) Add(other Notional) Notional { return Notional{n.d.Add(other.d)} }
func (n Notional) Sub(other Notional) Notional { return Notional{n.d.Sub(other.d)} }

// Mul computes Price × Quantity = Notional (taker advantage trades always
// settle at the maker's price).
func (p Price) Mul(q Quantity) Notional { return Notional{p.d.Mul(q.d)} }

// Mul computes Quantity × Price = Notional, the commutative form of Price.Mul.
func (q Quantity) Mul(p Price) Notional { return Notional{q.d.Mul(p.d)} }

// Div computes Notional / Price = Quantity.
func (n Notional) Div(p Price) Quantity { return Quantity{n.d.Div(p.d)} }

// DivQty computes Notional / Quantity = Price.
func (n Notional) DivQty(q Quantity) Price { return Price{n.d.Div(q.d)} }

func (p Price) Cmp(other Price) int       { return p.d.Cmp(other.d) }
func (q Quantity) Cmp(other Quantity) int { return q.d.Cmp(other.d) }
func (n Notional) Cmp(other Notional) int { return n.d.Cmp(other.d) }

func (p Price) LessThan(other Price) bool       { return p.d.LessThan(other.d) }
func (p Price) GreaterThan(other Price) bool    { return p.d.GreaterThan(other.d) }
func (p Price) GreaterOrEqual(other Price) bool { return p.d.GreaterThanOrEqual(other.d) }
func (p Price) Equal(other Price) bool          { return p.d.Equal(other.d) }

func (q Quantity) LessThan(other Quantity) bool    { return q.d.LessThan(other.d) }
func (q Quantity) GreaterThan(other Quantity) bool { return q.d.GreaterThan(other.d) }
func (q Quantity) Equal(other Quantity) bool       { return q.d.Equal(other.d) }

func (n Notional) LessThan(other Notional) bool    { return n.d.LessThan(other.d) }
func (n Notional) GreaterThan(other Notional) bool { return n.d.GreaterThan(other.d) }
func (n Notional) Equal(other Notional) bool       { return n.d.Equal(other.d) }

// MinQuantity returns the smaller of two quantities.
func MinQuantity(a, b Quantity) Quantity {
	if a.LessThan(b) {
		return a
	}
	return b
}

// MinNotional returns the smaller of two notionals.
func MinNotional(a, b Notional) Notional {
	if a.LessThan(b) {
		return a
	}
	return b
}
