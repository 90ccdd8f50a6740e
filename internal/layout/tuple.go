package layout

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// IntTuple is a recursively nested tuple of scalars: either a single leaf
// value or an ordered sequence of sub-tuples. Shapes, strides and structured
// coordinates are all IntTuples. Values are immutable; operations return
// fresh tuples and never alias caller-owned state.
type IntTuple struct {
	leaf  bool
	v     Int
	items []IntTuple
}

// Leaf returns a single-scalar tuple.
func Leaf(v Int) IntTuple { return IntTuple{leaf: true, v: v} }

// Tuple returns a tuple with the given modes.
func Tuple(modes ...IntTuple) IntTuple {
	return IntTuple{items: append([]IntTuple(nil), modes...)}
}

// Ints returns a flat tuple of static values. A single value produces a
// leaf, so Ints(4) and Leaf(S(4)) are interchangeable.
func Ints(vs ...int) IntTuple {
	if len(vs) == 1 {
		return Leaf(S(vs[0]))
	}
	modes := make([]IntTuple, len(vs))
	for i, v := range vs {
		modes[i] = Leaf(S(v))
	}
	return IntTuple{items: modes}
}

// IsLeaf reports whether the tuple is a single scalar.
func (t IntTuple) IsLeaf() bool { return t.leaf }

// Value returns the scalar of a leaf tuple.
func (t IntTuple) Value() Int { return t.v }

// Rank returns the arity at the top level. A leaf has rank 1.
func (t IntTuple) Rank() int {
	if t.leaf {
		return 1
	}
	return len(t.items)
}

// Depth returns the nesting depth: 0 for a leaf, one more than the deepest
// mode otherwise.
func (t IntTuple) Depth() int {
	if t.leaf {
		return 0
	}
	d := 0
	for _, m := range t.items {
		if md := m.Depth(); md > d {
			d = md
		}
	}
	return d + 1
}

// At returns the i-th top-level mode. A leaf is its own single mode.
func (t IntTuple) At(i int) IntTuple {
	if t.leaf {
		return t
	}
	return t.items[i]
}

// Size returns the product of all leaves. The result is dynamic if any leaf
// is dynamic. An empty tuple has size 1.
func (t IntTuple) Size() Int {
	if t.leaf {
		return t.v
	}
	sz := S(1)
	for _, m := range t.items {
		sz = sz.Mul(m.Size())
	}
	return sz
}

// Flatten returns the leaves in left-to-right order.
func (t IntTuple) Flatten() []Int {
	var out []Int
	t.walk(func(v Int) { out = append(out, v) })
	return out
}

func (t IntTuple) walk(f func(Int)) {
	if t.leaf {
		f(t.v)
		return
	}
	for _, m := range t.items {
		m.walk(f)
	}
}

// congruent reports whether two tuples have identical nesting and arity.
func congruent(a, b IntTuple) bool {
	if a.leaf != b.leaf {
		return false
	}
	if a.leaf {
		return true
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !congruent(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

// congruenceErrors collects one error per mode where the two trees diverge,
// so a caller sees every offending mode at once.
func congruenceErrors(a, b IntTuple, path string) error {
	if a.leaf != b.leaf {
		return errors.Wrapf(ErrShapeStrideMismatch, "mode %s: %s versus %s",
			modePath(path), kindOf(a), kindOf(b))
	}
	if a.leaf {
		return nil
	}
	if len(a.items) != len(b.items) {
		return errors.Wrapf(ErrShapeStrideMismatch, "mode %s: rank %d versus rank %d",
			modePath(path), len(a.items), len(b.items))
	}
	var err error
	for i := range a.items {
		err = multierr.Append(err, congruenceErrors(a.items[i], b.items[i], path+"["+strconv.Itoa(i)+"]"))
	}
	return err
}

func modePath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

func kindOf(t IntTuple) string {
	if t.leaf {
		return "a leaf"
	}
	return "a tuple of rank " + strconv.Itoa(len(t.items))
}

// withLeaves rebuilds a tuple with the nesting of profile and the given
// leaves, consumed in left-to-right order.
func withLeaves(profile IntTuple, leaves []Int) IntTuple {
	out, _ := withLeavesRec(profile, leaves)
	return out
}

func withLeavesRec(profile IntTuple, leaves []Int) (IntTuple, []Int) {
	if profile.leaf {
		return Leaf(leaves[0]), leaves[1:]
	}
	modes := make([]IntTuple, len(profile.items))
	for i, m := range profile.items {
		modes[i], leaves = withLeavesRec(m, leaves)
	}
	return IntTuple{items: modes}, leaves
}

// String renders the tuple in the parenthesized form used throughout the
// package, e.g. (2,(1,6)). Dynamic leaves render as "?".
func (t IntTuple) String() string {
	if t.leaf {
		return t.v.String()
	}
	parts := make([]string, len(t.items))
	for i, m := range t.items {
		parts[i] = m.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
