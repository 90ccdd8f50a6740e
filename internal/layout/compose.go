package layout

import "github.com/pkg/errors"

// composeFlat composes the flattened modes of an outer layout with a single
// (extent s, stride d) mode of an inner layout, locating the cut through the
// outer extents that the inner mode implies.
//
// The offset phase skips the first d elements of the outer domain, cutting
// whole or partial outer modes and scaling the strides of what remains. The
// take phase then keeps the first s elements of what is left. Both phases
// require exact cuts; on dynamic values the cut is assumed and recorded as a
// deferred obligation on the produced leaves.
func composeFlat(outer []mode, s, d Int, check divCheck) ([]mode, error) {
	if d.Value() == 0 {
		return []mode{{s: s, d: d}}, nil
	}

	// Offset phase: divide the leading d elements out of the outer modes.
	rest := d
	cur := make([]mode, 0, len(outer))
	for _, m := range outer {
		keep, err := shapeDiv(m.s, rest, check)
		if err != nil {
			return nil, err
		}
		cur = append(cur, mode{s: keep, d: m.d.Mul(minInt(rest, m.s))})
		rest, err = shapeDiv(rest, m.s, check)
		if err != nil {
			return nil, err
		}
	}

	// Take phase: keep the first s elements.
	rest = s
	out := make([]mode, 0, len(cur))
	for _, m := range cur {
		out = append(out, mode{s: minInt(m.s, rest), d: m.d})
		var err error
		rest, err = shapeDiv(rest, m.s, check)
		if err != nil {
			return nil, err
		}
	}
	if rest.IsStatic() && rest.Value() > 1 {
		return nil, errors.Wrapf(divisibilityErr(check),
			"inner extent %s exceeds the outer layout", s)
	}
	return out, nil
}

// composeTree composes outer with the inner layout's shape/stride trees,
// mirroring the inner nesting so the result's domain equals the inner
// domain. Each composed leaf is coalesced independently.
func composeTree(outer []mode, bs, bd IntTuple, check divCheck) (IntTuple, IntTuple, error) {
	if bs.IsLeaf() {
		ms, err := composeFlat(outer, bs.Value(), bd.Value(), check)
		if err != nil {
			return IntTuple{}, IntTuple{}, err
		}
		sub := modesToLayout(coalesceModes(ms, false))
		return sub.shape, sub.stride, nil
	}
	shapes := make([]IntTuple, len(bs.items))
	strides := make([]IntTuple, len(bs.items))
	for i := range bs.items {
		var err error
		shapes[i], strides[i], err = composeTree(outer, bs.items[i], bd.items[i], check)
		if err != nil {
			return IntTuple{}, IntTuple{}, err
		}
	}
	return Tuple(shapes...), Tuple(strides...), nil
}

// Compose returns the functional composition of two layouts: a layout R
// with R(c) = A(B(c)) for every coordinate c in B's domain. It fails when
// B's modes do not cut A's flattened extents exactly; cuts controlled by
// dynamic values are assumed and deferred to evaluation.
func Compose(a, b Layout) (Layout, error) {
	return composeChecked(a, b, divComposition)
}

func composeChecked(a, b Layout, check divCheck) (Layout, error) {
	shape, stride, err := composeTree(flatModes(a), b.shape, b.stride, check)
	if err != nil {
		return Layout{}, err
	}
	return Layout{shape: shape, stride: stride}, nil
}

// ComposeTiler applies composition by mode. A single-layout tiler composes
// with the whole of a; a tuple tiler composes each top-level mode of a with
// its corresponding entry, and modes without an entry pass through.
func ComposeTiler(a Layout, t Tiler) (Layout, error) {
	if t.leaf {
		return Compose(a, t.layout)
	}
	modes := topModes(a)
	if len(t.items) > len(modes) {
		return Layout{}, errors.Wrapf(ErrShapeStrideMismatch,
			"tiler has %d entries for %d top-level modes", len(t.items), len(modes))
	}
	shapes := make([]IntTuple, len(modes))
	strides := make([]IntTuple, len(modes))
	for i, m := range modes {
		r := m
		if i < len(t.items) {
			var err error
			r, err = ComposeTiler(m, t.items[i])
			if err != nil {
				return Layout{}, err
			}
		}
		shapes[i] = r.shape
		strides[i] = r.stride
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}, nil
}
