package layout

import "github.com/pkg/errors"

// mode is one flattened (extent, stride) pair.
type mode struct {
	s, d Int
}

func flatModes(l Layout) []mode {
	ss := l.shape.Flatten()
	ds := l.stride.Flatten()
	out := make([]mode, len(ss))
	for i := range ss {
		out[i] = mode{s: ss[i], d: ds[i]}
	}
	return out
}

// coalesceModes flattens and merges a run of modes without changing the
// layout function. A mode with a provable extent of 1 contributes nothing
// and is dropped, unless keepDynamicUnits is set and its stride is dynamic.
// Two adjacent modes (s0:d0),(s1:d1) merge into (s0*s1:d0) only when
// d1 == d0*s0 is provable; a relation involving dynamic values is never
// assumed, so the result stays correct for every runtime value.
func coalesceModes(ms []mode, keepDynamicUnits bool) []mode {
	var out []mode
	for _, m := range ms {
		if m.s.ProvablyOne() && !(keepDynamicUnits && m.d.IsDynamic()) {
			continue
		}
		if n := len(out); n > 0 {
			p := out[n-1]
			if p.s.IsStatic() && p.d.IsStatic() && m.d.IsStatic() &&
				m.d.Value() == p.d.Value()*p.s.Value() {
				out[n-1] = mode{s: p.s.Mul(m.s), d: p.d}
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// modesToLayout rebuilds a flat layout from merged modes. An empty run
// collapses to the trivial single-point layout 1:0.
func modesToLayout(ms []mode) Layout {
	switch len(ms) {
	case 0:
		return Layout{shape: Leaf(S(1)), stride: Leaf(S(0))}
	case 1:
		return Layout{shape: Leaf(ms[0].s), stride: Leaf(ms[0].d)}
	}
	shapes := make([]IntTuple, len(ms))
	strides := make([]IntTuple, len(ms))
	for i, m := range ms {
		shapes[i] = Leaf(m.s)
		strides[i] = Leaf(m.d)
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}
}

// Coalesce fully flattens and merges a layout. The result has depth at most
// one, the same size, and evaluates identically at every index.
func Coalesce(l Layout) Layout {
	return modesToLayout(coalesceModes(flatModes(l), false))
}

// CoalesceProfile coalesces each top-level mode independently, never merging
// across mode boundaries. The profile must have one entry per top-level
// mode: 0 coalesces the mode and lets a fully collapsed mode dissolve; 1
// coalesces within the mode but keeps the mode present, preserving extent-1
// modes whose stride is dynamic.
func CoalesceProfile(l Layout, profile []int) (Layout, error) {
	modes := topModes(l)
	if len(profile) != len(modes) {
		return Layout{}, errors.Wrapf(ErrShapeStrideMismatch,
			"profile has %d entries for %d top-level modes", len(profile), len(modes))
	}
	var shapes, strides []IntTuple
	for i, m := range modes {
		keep := profile[i] == 1
		ms := coalesceModes(flatModes(m), keep)
		switch {
		case len(ms) == 0:
			if keep {
				shapes = append(shapes, Leaf(S(1)))
				strides = append(strides, Leaf(S(0)))
			}
		case len(ms) == 1:
			shapes = append(shapes, Leaf(ms[0].s))
			strides = append(strides, Leaf(ms[0].d))
		default:
			sub := modesToLayout(ms)
			shapes = append(shapes, sub.shape)
			strides = append(strides, sub.stride)
		}
	}
	if len(shapes) == 0 {
		return Layout{shape: Leaf(S(1)), stride: Leaf(S(0))}, nil
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}, nil
}
