package layout

import (
	"strconv"

	"github.com/pkg/errors"
)

// divCheck identifies the operation family that produced a deferred
// divisibility obligation, so a late failure surfaces the right sentinel.
type divCheck uint8

const (
	divNone divCheck = iota
	divComposition
	divDivision
)

// deferredDiv records a division performed on dynamic operands whose
// exactness could not be proven when the operation ran. The obligation is
// validated whenever a layout carrying it is evaluated.
//
// When strict is set, dividend must be a multiple of divisor. Otherwise
// divisibility in either direction satisfies the obligation (the relaxed
// form arises from mode-boundary cuts, where the cut may consume a whole
// mode instead of splitting it).
type deferredDiv struct {
	dividend int
	divisor  int
	check    divCheck
	strict   bool
}

// Int is a scalar leaf value. A static Int is known to the algebra and
// participates in simplification proofs. A dynamic Int carries the runtime
// value supplied by the host, but the algebra treats it as opaque: no
// simplification may depend on it, because the result must stay correct for
// every value the host could have supplied.
type Int struct {
	v   int
	dyn bool
	def deferredDiv
}

// S returns a static scalar.
func S(v int) Int { return Int{v: v} }

// D returns a dynamic scalar carrying the runtime value v.
func D(v int) Int { return Int{v: v, dyn: true} }

// Value returns the numeric value. For a dynamic scalar this is the runtime
// value and must not be used to justify simplification.
func (x Int) Value() int { return x.v }

// IsStatic reports whether the value is known to the algebra.
func (x Int) IsStatic() bool { return !x.dyn }

// IsDynamic reports whether the value is only known at run time.
func (x Int) IsDynamic() bool { return x.dyn }

// ProvablyOne reports whether the value is statically known to be 1.
func (x Int) ProvablyOne() bool { return !x.dyn && x.v == 1 }

// ProvablyZero reports whether the value is statically known to be 0.
func (x Int) ProvablyZero() bool { return !x.dyn && x.v == 0 }

// ProvablyEqual reports whether x and y are statically known to be equal.
// Dynamic values are never provably equal, even to themselves.
func (x Int) ProvablyEqual(y Int) bool {
	return !x.dyn && !y.dyn && x.v == y.v
}

// Mul returns the product. The result is dynamic if either operand is, and
// carries over a pending divisibility obligation from its operands.
func (x Int) Mul(y Int) Int {
	return Int{v: x.v * y.v, dyn: x.dyn || y.dyn, def: mergeDeferred(x.def, y.def)}
}

// Add returns the sum, with the same tag propagation as Mul.
func (x Int) Add(y Int) Int {
	return Int{v: x.v + y.v, dyn: x.dyn || y.dyn, def: mergeDeferred(x.def, y.def)}
}

// minInt returns the smaller value. Extents and offsets are at least 1
// here, so a static 1 operand is the minimum regardless of the other side.
func minInt(x, y Int) Int {
	if x.ProvablyOne() {
		return x
	}
	if y.ProvablyOne() {
		return y
	}
	m := x
	if y.v < x.v {
		m = y
	}
	return Int{v: m.v, dyn: x.dyn || y.dyn, def: mergeDeferred(x.def, y.def)}
}

func mergeDeferred(a, b deferredDiv) deferredDiv {
	if a.check != divNone {
		return a
	}
	return b
}

// exactDiv divides a by b, requiring b to divide a exactly. On static
// operands non-divisibility fails immediately; on dynamic operands the
// quotient is computed from the runtime values and tagged with the deferred
// obligation.
func exactDiv(a, b Int, check divCheck) (Int, error) {
	if b.v == 0 {
		return Int{}, errors.Wrapf(divisibilityErr(check), "division of %s by zero", a)
	}
	if a.IsStatic() && b.IsStatic() {
		if a.v%b.v != 0 {
			return Int{}, errors.Wrapf(divisibilityErr(check), "%d is not a multiple of %d", a.v, b.v)
		}
		return S(a.v / b.v), nil
	}
	return Int{
		v:   a.v / b.v,
		dyn: true,
		def: deferredDiv{dividend: a.v, divisor: b.v, check: check, strict: true},
	}, nil
}

// shapeDiv divides extent a by b at a mode boundary: either b divides a (the
// cut splits the mode, quotient a/b) or a divides b (the cut consumes the
// whole mode, quotient 1). Static operands satisfying neither fail
// immediately; dynamic operands compute from runtime values and defer.
func shapeDiv(a, b Int, check divCheck) (Int, error) {
	if b.v == 0 {
		return Int{}, errors.Wrapf(divisibilityErr(check), "division of %s by zero", a)
	}
	if a.IsStatic() && b.IsStatic() {
		switch {
		case a.v%b.v == 0:
			return S(a.v / b.v), nil
		case b.v%a.v == 0:
			return S(1), nil
		default:
			return Int{}, errors.Wrapf(divisibilityErr(check), "no exact cut between %d and %d", a.v, b.v)
		}
	}
	def := deferredDiv{dividend: a.v, divisor: b.v, check: check}
	v := a.v / b.v
	if a.v%b.v != 0 {
		// Either the cut consumes the whole mode, or the obligation is
		// already violated and evaluation will reject it; keep the value
		// a usable extent in both cases.
		v = 1
	}
	return Int{v: v, dyn: true, def: def}, nil
}

// validate re-checks a deferred divisibility obligation against the runtime
// values it recorded. It returns nil for values without an obligation.
func (x Int) validate() error {
	d := x.def
	if d.check == divNone {
		return nil
	}
	ok := d.divisor != 0 && d.dividend%d.divisor == 0
	if !ok && !d.strict {
		ok = d.dividend != 0 && d.divisor%d.dividend == 0
	}
	if ok {
		return nil
	}
	return errors.Wrapf(divisibilityErr(d.check),
		"runtime value %d is not divisible by %d", d.dividend, d.divisor)
}

// String renders a static value as its literal and a dynamic value as "?",
// annotated with the deferred divisor when one is pending.
func (x Int) String() string {
	if !x.dyn {
		return strconv.Itoa(x.v)
	}
	if x.def.check != divNone {
		return "?{div=" + strconv.Itoa(x.def.divisor) + "}"
	}
	return "?"
}
