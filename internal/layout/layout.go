package layout

import (
	"github.com/pkg/errors"
)

// Layout is an immutable pair of congruent shape and stride tuples. It
// defines a function from the coordinate domain described by the shape to a
// linear index: a coordinate is decomposed per mode and each mode's
// component is scaled by the matching stride.
//
// Example:
//
//	l, _ := layout.MakeLayout(layout.Ints(4, 2), layout.Ints(2, 1))
//	idx, _ := l.At(5) // coordinate (1,1) -> 1*2 + 1*1 = 3
type Layout struct {
	shape  IntTuple
	stride IntTuple
}

// MakeLayout constructs a layout from a shape and a stride. The two tuples
// must be congruent; every divergence between the trees is reported.
func MakeLayout(shape, stride IntTuple) (Layout, error) {
	if err := congruenceErrors(shape, stride, ""); err != nil {
		return Layout{}, err
	}
	return Layout{shape: shape, stride: stride}, nil
}

// MakeLayoutPacked constructs a layout with the canonical left-to-right
// compact stride: the stride of each flattened leaf is the product of the
// extents ordered before it, so the leftmost mode varies fastest.
func MakeLayoutPacked(shape IntTuple) Layout {
	leaves := shape.Flatten()
	strides := make([]Int, len(leaves))
	cur := S(1)
	for i, s := range leaves {
		strides[i] = cur
		cur = cur.Mul(s)
	}
	return Layout{shape: shape, stride: withLeaves(shape, strides)}
}

// Shape returns the layout's shape tuple.
func (l Layout) Shape() IntTuple { return l.shape }

// Stride returns the layout's stride tuple.
func (l Layout) Stride() IntTuple { return l.stride }

// Size returns the number of coordinates in the domain: the product of all
// shape leaves.
func (l Layout) Size() Int { return l.shape.Size() }

// Cosize returns one past the largest index the layout can produce.
func (l Layout) Cosize() Int {
	ss := l.shape.Flatten()
	ds := l.stride.Flatten()
	acc := S(1)
	for i := range ss {
		acc = acc.Add(ss[i].Add(S(-1)).Mul(ds[i]))
	}
	return acc
}

// Depth returns the nesting depth of the shape.
func (l Layout) Depth() int { return l.shape.Depth() }

// Rank returns the arity at the top level of the shape.
func (l Layout) Rank() int { return l.shape.Rank() }

// At evaluates the layout at a flat linear index in [0, Size()). The index
// is decomposed against the shape left-to-right mixed-radix, each component
// scaled by its stride. The result is dynamic if any contributing extent or
// stride is dynamic. Deferred divisibility obligations on the layout are
// validated first; a violated obligation fails here with the sentinel of
// the operation that created it.
func (l Layout) At(i int) (Int, error) {
	if err := l.Validate(); err != nil {
		return Int{}, err
	}
	size := l.shape.Size().Value()
	if i < 0 || i >= size {
		return Int{}, errors.Wrapf(ErrCoordinateOutOfRange, "index %d outside [0, %d)", i, size)
	}
	ss := l.shape.Flatten()
	ds := l.stride.Flatten()
	idx, rem, dyn := 0, i, false
	for k := range ss {
		s := ss[k].Value()
		idx += (rem % s) * ds[k].Value()
		rem /= s
		dyn = dyn || ss[k].IsDynamic() || ds[k].IsDynamic()
	}
	return Int{v: idx, dyn: dyn}, nil
}

// AtCoord evaluates the layout at a structured coordinate. The coordinate
// must be weakly congruent with the shape: a leaf may stand in for a nested
// mode, in which case it is treated as a linear index into that mode.
func (l Layout) AtCoord(c IntTuple) (Int, error) {
	if err := l.Validate(); err != nil {
		return Int{}, err
	}
	return coordIndex(c, l.shape, l.stride)
}

func coordIndex(c, s, d IntTuple) (Int, error) {
	if c.IsLeaf() {
		ci := c.Value().Value()
		size := s.Size().Value()
		if ci < 0 || ci >= size {
			return Int{}, errors.Wrapf(ErrCoordinateOutOfRange,
				"coordinate %d exceeds extent %s", ci, s)
		}
		if s.IsLeaf() {
			prod := d.Value().Mul(S(ci))
			return Int{v: prod.v, dyn: s.Value().IsDynamic() || d.Value().IsDynamic()}, nil
		}
		// Linear index into a nested mode: decompose against its leaves.
		ss := s.Flatten()
		ds := d.Flatten()
		idx, rem, dyn := 0, ci, false
		for k := range ss {
			sv := ss[k].Value()
			idx += (rem % sv) * ds[k].Value()
			rem /= sv
			dyn = dyn || ss[k].IsDynamic() || ds[k].IsDynamic()
		}
		return Int{v: idx, dyn: dyn}, nil
	}
	if s.IsLeaf() || c.Rank() != s.Rank() {
		return Int{}, errors.Wrapf(ErrCoordinateOutOfRange,
			"coordinate %s does not match shape %s", c, s)
	}
	acc := S(0)
	for i := range c.items {
		part, err := coordIndex(c.items[i], s.items[i], d.items[i])
		if err != nil {
			return Int{}, err
		}
		acc = Int{v: acc.v + part.v, dyn: acc.dyn || part.dyn}
	}
	return acc, nil
}

// Validate re-checks every deferred divisibility obligation carried by the
// layout's leaves against the runtime values they recorded.
func (l Layout) Validate() error {
	for _, v := range l.shape.Flatten() {
		if err := v.validate(); err != nil {
			return err
		}
	}
	for _, v := range l.stride.Flatten() {
		if err := v.validate(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the layout as Shape:Stride, e.g. (2,(1,6)):(1,(6,2)).
func (l Layout) String() string {
	return l.shape.String() + ":" + l.stride.String()
}

// topModes splits a layout into its top-level modes. A depth-0 layout is
// its own single mode.
func topModes(l Layout) []Layout {
	if l.shape.IsLeaf() {
		return []Layout{l}
	}
	out := make([]Layout, len(l.shape.items))
	for i := range l.shape.items {
		out[i] = Layout{shape: l.shape.items[i], stride: l.stride.items[i]}
	}
	return out
}
