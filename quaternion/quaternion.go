/*
Package quaternion implements immutable quaternions over float64.

A quaternion a + b·i + c·j + d·k is a value type: every operation returns a
new quaternion and leaves its operands untouched, so values may be shared
freely between goroutines.

	q := quaternion.Must(1, -2, 0, 3)
	fmt.Println(q.Times(quaternion.I)) // 2+1i+3j

Multiplication is not commutative: I·J = K, but J·I = −K.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quaternion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned for coefficients which are not a number.
var ErrInvalidArgument = errors.New("quaternion: invalid argument")

// Quaternion is a + b·i + c·j + d·k. The zero value is Zero.
type Quaternion struct {
	a, b, c, d float64
}

// The additive identity and the three imaginary units.
var (
	Zero = Quaternion{}
	I    = Quaternion{b: 1}
	J    = Quaternion{c: 1}
	K    = Quaternion{d: 1}
)

// New creates a quaternion from its coefficients (real, i, j, k).
// None of the coefficients may be NaN.
func New(a, b, c, d float64) (Quaternion, error) {
	for i, x := range [4]float64{a, b, c, d} {
		if math.IsNaN(x) {
			return Zero, fmt.Errorf("%w: coefficient %c is NaN", ErrInvalidArgument, "abcd"[i])
		}
	}
	return Quaternion{a: a, b: b, c: c, d: d}, nil
}

// Must is like New, but panics instead of returning an error.
func Must(a, b, c, d float64) Quaternion {
	q, err := New(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return q
}

// Plus returns q + o. Plus does not check its result: adding opposite
// infinities yields a NaN coefficient, which New would have rejected.
func (q Quaternion) Plus(o Quaternion) Quaternion {
	return Quaternion{
		a: q.a + o.a,
		b: q.b + o.b,
		c: q.c + o.c,
		d: q.d + o.d,
	}
}

// Times returns the Hamilton product q · o. Operand order matters.
// As with Plus, infinite coefficients may produce NaN coefficients in the
// result; such a quaternion is not Equal to itself.
func (q Quaternion) Times(o Quaternion) Quaternion {
	return Quaternion{
		a: q.a*o.a - q.b*o.b - q.c*o.c - q.d*o.d,
		b: q.a*o.b + q.b*o.a + q.c*o.d - q.d*o.c,
		c: q.a*o.c - q.b*o.d + q.c*o.a + q.d*o.b,
		d: q.a*o.d + q.b*o.c - q.c*o.b + q.d*o.a,
	}
}

// Conjugate returns a − b·i − c·j − d·k.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{a: q.a, b: -q.b, c: -q.c, d: -q.d}
}

// Coefficients returns [a, b, c, d].
func (q Quaternion) Coefficients() [4]float64 {
	return [4]float64{q.a, q.b, q.c, q.d}
}

// Equal is true if all coefficients of q and o are equal.
// Positive and negative zero are considered equal.
func (q Quaternion) Equal(o Quaternion) bool {
	return q == o
}

// String renders q as a signed polynomial, e.g. "1-2i+3k". Terms with a
// zero coefficient are left out; a quaternion with all coefficients zero
// renders as "0". The format is for display only.
func (q Quaternion) String() string {
	var sb strings.Builder
	for i, x := range q.Coefficients() {
		if x == 0 {
			continue
		}
		num := strings.TrimPrefix(strconv.FormatFloat(x, 'g', -1, 64), "+")
		if sb.Len() > 0 && num[0] != '-' {
			sb.WriteByte('+')
		}
		sb.WriteString(num)
		if i > 0 {
			sb.WriteByte(" ijk"[i])
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
