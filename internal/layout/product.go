package layout

import "github.com/pkg/errors"

// productMode computes the replication layout for a single tiler layout t
// applied to l: a restriding of t whose steps walk between whole copies of
// l inside [0, size(l)*cosize(t)), while l itself keeps addressing the
// elements within one copy.
func productMode(l, t Layout) (Layout, error) {
	n := l.Size().Mul(t.Cosize())
	comp, err := complementOf(l, n, divDivision)
	if err != nil {
		return Layout{}, err
	}
	return composeChecked(comp, t, divDivision)
}

// productSplit pairs one top-level mode with its replication layout.
type productSplit struct {
	targeted bool
	base     Layout
	rep      Layout
}

func productSplits(l Layout, t Tiler) ([]productSplit, bool, error) {
	if t.leaf {
		rep, err := productMode(l, t.layout)
		if err != nil {
			return nil, false, err
		}
		return []productSplit{{targeted: true, base: l, rep: rep}}, true, nil
	}
	modes := topModes(l)
	if len(t.items) > len(modes) {
		return nil, false, errors.Wrapf(ErrShapeStrideMismatch,
			"tiler has %d entries for %d top-level modes", len(t.items), len(modes))
	}
	out := make([]productSplit, len(modes))
	for i, m := range modes {
		if i < len(t.items) {
			if !t.items[i].leaf {
				return nil, false, errors.Wrapf(ErrShapeStrideMismatch,
					"product tiler entries must be layouts, mode %d is a tuple", i)
			}
			rep, err := productMode(m, t.items[i].layout)
			if err != nil {
				return nil, false, err
			}
			out[i] = productSplit{targeted: true, base: m, rep: rep}
		} else {
			out[i] = productSplit{base: m}
		}
	}
	return out, false, nil
}

// LogicalProduct replicates a layout by a tiler. A single-layout tiler
// produces the rank-2 result (l, replication); a tuple tiler replicates
// each targeted top-level mode in place, leaving unaddressed modes where
// they are. The result's size is size(l) times the tiler size.
func LogicalProduct(l Layout, t Tiler) (Layout, error) {
	splits, whole, err := productSplits(l, t)
	if err != nil {
		return Layout{}, err
	}
	if whole {
		sp := splits[0]
		return Layout{
			shape:  Tuple(sp.base.shape, sp.rep.shape),
			stride: Tuple(sp.base.stride, sp.rep.stride),
		}, nil
	}
	shapes := make([]IntTuple, len(splits))
	strides := make([]IntTuple, len(splits))
	for i, sp := range splits {
		if sp.targeted {
			shapes[i] = Tuple(sp.base.shape, sp.rep.shape)
			strides[i] = Tuple(sp.base.stride, sp.rep.stride)
		} else {
			shapes[i] = sp.base.shape
			strides[i] = sp.base.stride
		}
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}, nil
}

// BlockedProduct pairs each original mode of l with its corresponding
// replication factor, so the result's top-level structure mirrors l's and
// semantically matching modes stay together, giving a block distribution.
// With a single-layout tiler the pairing is positional between l's modes
// and the replication layout's modes.
func BlockedProduct(l Layout, t Tiler) (Layout, error) {
	return pairedProduct(l, t, false)
}

// RakedProduct is BlockedProduct with each pair's internal order swapped:
// the replication factor varies faster than the base extent, giving a
// cyclic, interleaved distribution.
func RakedProduct(l Layout, t Tiler) (Layout, error) {
	return pairedProduct(l, t, true)
}

func pairedProduct(l Layout, t Tiler, swap bool) (Layout, error) {
	splits, whole, err := productSplits(l, t)
	if err != nil {
		return Layout{}, err
	}
	var shapes, strides []IntTuple
	appendMode := func(m Layout) {
		cs, cd := coalesceMode(m)
		shapes = append(shapes, cs)
		strides = append(strides, cd)
	}
	if whole {
		sp := splits[0]
		bases := topModes(sp.base)
		reps := topModes(sp.rep)
		n := len(bases)
		if len(reps) > n {
			n = len(reps)
		}
		for i := 0; i < n; i++ {
			switch {
			case i >= len(reps):
				appendMode(bases[i])
			case i >= len(bases):
				appendMode(reps[i])
			default:
				appendMode(pairModes(bases[i], reps[i], swap))
			}
		}
	} else {
		for _, sp := range splits {
			if sp.targeted {
				appendMode(pairModes(sp.base, sp.rep, swap))
			} else {
				shapes = append(shapes, sp.base.shape)
				strides = append(strides, sp.base.stride)
			}
		}
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}, nil
}

// pairModes joins a base mode and its replication factor into one mode.
func pairModes(base, rep Layout, swap bool) Layout {
	if swap {
		base, rep = rep, base
	}
	return Layout{
		shape:  Tuple(base.shape, rep.shape),
		stride: Tuple(base.stride, rep.stride),
	}
}

// coalesceMode coalesces within one mode, keeping the mode itself present.
func coalesceMode(m Layout) (IntTuple, IntTuple) {
	ms := coalesceModes(flatModes(m), false)
	sub := modesToLayout(ms)
	return sub.shape, sub.stride
}

// ZippedProduct gathers the base modes into the first top-level mode and
// the replication modes into the second; unaddressed modes of a tuple tiler
// follow as their own top-level modes.
func ZippedProduct(l Layout, t Tiler) (Layout, error) {
	splits, whole, err := productSplits(l, t)
	if err != nil {
		return Layout{}, err
	}
	if whole {
		sp := splits[0]
		return Layout{
			shape:  Tuple(sp.base.shape, sp.rep.shape),
			stride: Tuple(sp.base.stride, sp.rep.stride),
		}, nil
	}
	var baseS, baseD, repS, repD, passS, passD []IntTuple
	for _, sp := range splits {
		if sp.targeted {
			baseS = append(baseS, sp.base.shape)
			baseD = append(baseD, sp.base.stride)
			repS = append(repS, sp.rep.shape)
			repD = append(repD, sp.rep.stride)
		} else {
			passS = append(passS, sp.base.shape)
			passD = append(passD, sp.base.stride)
		}
	}
	shapes := append([]IntTuple{Tuple(baseS...), Tuple(repS...)}, passS...)
	strides := append([]IntTuple{Tuple(baseD...), Tuple(repD...)}, passD...)
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}, nil
}

// TiledProduct is ZippedProduct with the replication group unpacked into
// separate top-level modes.
func TiledProduct(l Layout, t Tiler) (Layout, error) {
	z, err := ZippedProduct(l, t)
	if err != nil {
		return Layout{}, err
	}
	return spliceTop(z, func(i int) bool { return i == 1 }), nil
}

// FlatProduct unpacks both groups: every base mode, then every replication
// mode, then any unaddressed mode, each as its own top-level mode.
func FlatProduct(l Layout, t Tiler) (Layout, error) {
	z, err := ZippedProduct(l, t)
	if err != nil {
		return Layout{}, err
	}
	return spliceTop(z, func(i int) bool { return i <= 1 }), nil
}
