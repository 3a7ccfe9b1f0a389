package managed

import (
	"math/big"
	"strings"

	"github.com/coschain/vmhooks/vm/vmerr"
)

// MaxFloatExponent bounds the adjusted decimal exponent of a big float.
const MaxFloatExponent = 2000000000

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// Decimal is coef * 10^exp. Values produced by a floatContext are normalized:
// coef has at most precision digits and no trailing zeros, zero has exp 0.
type Decimal struct {
	coef big.Int
	exp  int64
}

func (d *Decimal) Sign() int {
	return d.coef.Sign()
}

func (d *Decimal) IsZero() bool {
	return d.coef.Sign() == 0
}

func (d *Decimal) Copy() *Decimal {
	c := &Decimal{exp: d.exp}
	c.coef.Set(&d.coef)
	return c
}

// String renders the value in scientific form, e.g. "-314e-2".
func (d *Decimal) String() string {
	var sb strings.Builder
	sb.WriteString(d.coef.String())
	sb.WriteString("e")
	sb.WriteString(big.NewInt(d.exp).String())
	return sb.String()
}

// Coefficient and exponent of the normalized value.
func (d *Decimal) Parts() (*big.Int, int64) {
	return new(big.Int).Set(&d.coef), d.exp
}

// floatContext carries the precision and exponent range of decimal arithmetic.
type floatContext struct {
	precision int
	maxExp    int64
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}

func numDigits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	s := x.String()
	if s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// round builds a normalized Decimal from coef*10^exp, rounding half to even.
func (c *floatContext) round(coef *big.Int, exp int64) (*Decimal, error) {
	d := &Decimal{}
	if coef.Sign() == 0 {
		return d, nil
	}
	q := new(big.Int).Set(coef)
	if digits := numDigits(q); digits > c.precision {
		shift := int64(digits - c.precision)
		divisor := pow10(shift)
		r := new(big.Int)
		q.QuoRem(q, divisor, r)
		// compare 2|r| against the divisor
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		if cmp := twice.Cmp(divisor); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
			if coef.Sign() < 0 {
				q.Sub(q, bigOne)
			} else {
				q.Add(q, bigOne)
			}
		}
		exp += shift
	}
	r := new(big.Int)
	for {
		t, m := new(big.Int).QuoRem(q, bigTen, r)
		if m.Sign() != 0 {
			break
		}
		q = t
		exp++
	}
	adjusted := exp + int64(numDigits(q)) - 1
	if adjusted > c.maxExp {
		return nil, vmerr.User("exponent overflow")
	}
	if adjusted < -c.maxExp {
		return d, nil
	}
	d.coef.Set(q)
	d.exp = exp
	return d, nil
}

func (c *floatContext) fromBigInt(x *big.Int) (*Decimal, error) {
	return c.round(x, 0)
}

func (c *floatContext) fromInt64(x int64) (*Decimal, error) {
	return c.round(big.NewInt(x), 0)
}

// fromString parses a plain decimal literal such as "-3.25".
func (c *floatContext) fromString(s string) (*Decimal, error) {
	digits := strings.Replace(s, ".", "", 1)
	exp := int64(0)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		exp = -int64(len(s) - dot - 1)
	}
	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, vmerr.Fatalf("bad decimal literal %q", s)
	}
	return c.round(coef, exp)
}

func (c *floatContext) add(a, b *Decimal) (*Decimal, error) {
	if a.IsZero() {
		return b.Copy(), nil
	}
	if b.IsZero() {
		return a.Copy(), nil
	}
	// make a the operand with the larger exponent
	if a.exp < b.exp {
		a, b = b, a
	}
	diff := a.exp - b.exp
	if diff > int64(c.precision+numDigits(&b.coef)+1) {
		// b is below half an ulp of any precision-digit result
		return a.Copy(), nil
	}
	sum := new(big.Int).Mul(&a.coef, pow10(diff))
	sum.Add(sum, &b.coef)
	return c.round(sum, b.exp)
}

func (c *floatContext) neg(a *Decimal) *Decimal {
	n := a.Copy()
	n.coef.Neg(&n.coef)
	return n
}

func (c *floatContext) abs(a *Decimal) *Decimal {
	n := a.Copy()
	n.coef.Abs(&n.coef)
	return n
}

func (c *floatContext) sub(a, b *Decimal) (*Decimal, error) {
	return c.add(a, c.neg(b))
}

func (c *floatContext) mul(a, b *Decimal) (*Decimal, error) {
	return c.round(new(big.Int).Mul(&a.coef, &b.coef), a.exp+b.exp)
}

// quotientWithSticky appends a sticky digit so that round() sees inexact ties.
func quotientWithSticky(num, den *big.Int, exp int64) (*big.Int, int64) {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q, exp
	}
	q.Mul(q, bigTen)
	if num.Sign()*den.Sign() < 0 {
		q.Sub(q, bigOne)
	} else {
		q.Add(q, bigOne)
	}
	return q, exp - 1
}

func (c *floatContext) quo(a, b *Decimal) (*Decimal, error) {
	if b.IsZero() {
		return nil, vmerr.User("division by 0")
	}
	if a.IsZero() {
		return &Decimal{}, nil
	}
	shift := int64(c.precision + 1 + numDigits(&b.coef) - numDigits(&a.coef))
	if shift < 0 {
		shift = 0
	}
	num := new(big.Int).Mul(&a.coef, pow10(shift))
	q, exp := quotientWithSticky(num, &b.coef, a.exp-b.exp-shift)
	return c.round(q, exp)
}

func (c *floatContext) sqrt(a *Decimal) (*Decimal, error) {
	if a.Sign() < 0 {
		return nil, vmerr.User("bad bounds (lower)")
	}
	if a.IsZero() {
		return &Decimal{}, nil
	}
	shift := int64(2*c.precision + 2 - numDigits(&a.coef))
	if shift < 0 {
		shift = 0
	}
	if (a.exp-shift)%2 != 0 {
		shift++
	}
	scaled := new(big.Int).Mul(&a.coef, pow10(shift))
	root := new(big.Int).Sqrt(scaled)
	exp := (a.exp - shift) / 2
	if new(big.Int).Mul(root, root).Cmp(scaled) != 0 {
		root.Mul(root, bigTen)
		root.Add(root, bigOne)
		exp--
	}
	return c.round(root, exp)
}

func (c *floatContext) powInt(a *Decimal, n int32) (*Decimal, error) {
	one, _ := c.fromInt64(1)
	if n == 0 {
		return one, nil
	}
	if a.IsZero() && n < 0 {
		return nil, vmerr.User("division by 0")
	}
	// work with guard digits, round once at the end
	wide := &floatContext{precision: c.precision + 20, maxExp: c.maxExp}
	e := int64(n)
	if e < 0 {
		e = -e
	}
	result := one
	base := a.Copy()
	var err error
	for e > 0 {
		if e&1 == 1 {
			if result, err = wide.mul(result, base); err != nil {
				return nil, err
			}
		}
		e >>= 1
		if e > 0 {
			if base, err = wide.mul(base, base); err != nil {
				return nil, err
			}
		}
	}
	if n < 0 {
		if result, err = wide.quo(one, result); err != nil {
			return nil, err
		}
	}
	return c.round(&result.coef, result.exp)
}

func (c *floatContext) cmp(a, b *Decimal) int {
	sa, sb := a.Sign(), b.Sign()
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	if sa == 0 {
		return 0
	}
	adjA := a.exp + int64(numDigits(&a.coef))
	adjB := b.exp + int64(numDigits(&b.coef))
	if adjA != adjB {
		if adjA > adjB {
			return sa
		}
		return -sa
	}
	x, y := new(big.Int).Set(&a.coef), new(big.Int).Set(&b.coef)
	if a.exp > b.exp {
		x.Mul(x, pow10(a.exp-b.exp))
	} else if b.exp > a.exp {
		y.Mul(y, pow10(b.exp-a.exp))
	}
	return x.Cmp(y)
}

func (c *floatContext) isInt(a *Decimal) bool {
	return a.IsZero() || a.exp >= 0
}

const (
	roundFloor = iota
	roundCeil
	roundTrunc
)

// toBigInt converts with the given rounding. Values above 10^maxExp are refused.
func (c *floatContext) toBigInt(a *Decimal, mode int, maxExp int64) (*big.Int, error) {
	if a.exp >= 0 {
		if a.exp+int64(numDigits(&a.coef)) > maxExp {
			return nil, vmerr.User("big float too large for conversion")
		}
		return new(big.Int).Mul(&a.coef, pow10(a.exp)), nil
	}
	q, r := new(big.Int), new(big.Int)
	if -a.exp > int64(numDigits(&a.coef)) {
		r.Set(&a.coef)
	} else {
		q.QuoRem(&a.coef, pow10(-a.exp), r)
	}
	if r.Sign() != 0 {
		switch {
		case mode == roundFloor && a.Sign() < 0:
			q.Sub(q, bigOne)
		case mode == roundCeil && a.Sign() > 0:
			q.Add(q, bigOne)
		}
	}
	return q, nil
}
