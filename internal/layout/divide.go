package layout

import "github.com/pkg/errors"

// tileSplit is the decomposition of one top-level mode by a tiler: either
// a (tile, rest) pair for a targeted mode or the untouched mode itself.
type tileSplit struct {
	tiled      bool
	tile, rest Layout
	pass       Layout
}

// divideMode splits a layout against a single tiler layout. The tile part
// addresses the elements t reaches; the rest part addresses what remains,
// so that size(tile)*size(rest) == size(l).
func divideMode(l, t Layout) (Layout, Layout, error) {
	ls, ts := l.Size(), t.Size()
	if ls.IsStatic() && ts.IsStatic() {
		if ts.Value() == 0 || ls.Value()%ts.Value() != 0 {
			return Layout{}, Layout{}, errors.Wrapf(ErrDivisionDivisibility,
				"tiler size %d does not divide extent %d", ts.Value(), ls.Value())
		}
	}
	comp, err := complementOf(t, ls, divDivision)
	if err != nil {
		return Layout{}, Layout{}, err
	}
	tile, err := composeChecked(l, t, divDivision)
	if err != nil {
		return Layout{}, Layout{}, err
	}
	rest, err := composeChecked(l, comp, divDivision)
	if err != nil {
		return Layout{}, Layout{}, err
	}
	return tile, rest, nil
}

// splitMode applies a tiler to one mode, recursing through nested tuple
// tilers. Submodes a nested tiler does not address join the rest side.
func splitMode(l Layout, t Tiler) (tileSplit, error) {
	if t.leaf {
		tile, rest, err := divideMode(l, t.layout)
		return tileSplit{tiled: true, tile: tile, rest: rest}, err
	}
	modes := topModes(l)
	if len(t.items) > len(modes) {
		return tileSplit{}, errors.Wrapf(ErrShapeStrideMismatch,
			"tiler has %d entries for %d top-level modes", len(t.items), len(modes))
	}
	var tileS, tileD, restS, restD []IntTuple
	for i, m := range modes {
		if i < len(t.items) {
			sp, err := splitMode(m, t.items[i])
			if err != nil {
				return tileSplit{}, err
			}
			tileS = append(tileS, sp.tile.shape)
			tileD = append(tileD, sp.tile.stride)
			restS = append(restS, sp.rest.shape)
			restD = append(restD, sp.rest.stride)
		} else {
			restS = append(restS, m.shape)
			restD = append(restD, m.stride)
		}
	}
	return tileSplit{
		tiled: true,
		tile:  Layout{shape: Tuple(tileS...), stride: Tuple(tileD...)},
		rest:  Layout{shape: Tuple(restS...), stride: Tuple(restD...)},
	}, nil
}

// divideSplits computes the per-mode decomposition driven by a tiler. The
// whole return is true when the tiler is a single layout splitting the
// whole target, in which case exactly one split is returned.
func divideSplits(l Layout, t Tiler) ([]tileSplit, bool, error) {
	if t.leaf {
		tile, rest, err := divideMode(l, t.layout)
		if err != nil {
			return nil, false, err
		}
		return []tileSplit{{tiled: true, tile: tile, rest: rest}}, true, nil
	}
	modes := topModes(l)
	if len(t.items) > len(modes) {
		return nil, false, errors.Wrapf(ErrShapeStrideMismatch,
			"tiler has %d entries for %d top-level modes", len(t.items), len(modes))
	}
	out := make([]tileSplit, len(modes))
	for i, m := range modes {
		if i < len(t.items) {
			sp, err := splitMode(m, t.items[i])
			if err != nil {
				return nil, false, err
			}
			out[i] = sp
		} else {
			out[i] = tileSplit{pass: m}
		}
	}
	return out, false, nil
}

// LogicalDivide splits a layout by a tiler. A single-layout tiler splits
// the whole target into a (tile, rest) pair; a tuple tiler splits each
// targeted top-level mode in place into its own (tile, rest) pair, leaving
// unaddressed modes where they are.
func LogicalDivide(l Layout, t Tiler) (Layout, error) {
	splits, whole, err := divideSplits(l, t)
	if err != nil {
		return Layout{}, err
	}
	if whole {
		sp := splits[0]
		return Layout{
			shape:  Tuple(sp.tile.shape, sp.rest.shape),
			stride: Tuple(sp.tile.stride, sp.rest.stride),
		}, nil
	}
	shapes := make([]IntTuple, len(splits))
	strides := make([]IntTuple, len(splits))
	for i, sp := range splits {
		if sp.tiled {
			shapes[i] = Tuple(sp.tile.shape, sp.rest.shape)
			strides[i] = Tuple(sp.tile.stride, sp.rest.stride)
		} else {
			shapes[i] = sp.pass.shape
			strides[i] = sp.pass.stride
		}
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}, nil
}

// ZippedDivide splits like LogicalDivide but gathers every tile submode
// into the first top-level mode and every rest submode, together with
// unaddressed modes, into the second.
func ZippedDivide(l Layout, t Tiler) (Layout, error) {
	splits, whole, err := divideSplits(l, t)
	if err != nil {
		return Layout{}, err
	}
	if whole {
		sp := splits[0]
		return Layout{
			shape:  Tuple(sp.tile.shape, sp.rest.shape),
			stride: Tuple(sp.tile.stride, sp.rest.stride),
		}, nil
	}
	var tileS, tileD, restS, restD []IntTuple
	for _, sp := range splits {
		if sp.tiled {
			tileS = append(tileS, sp.tile.shape)
			tileD = append(tileD, sp.tile.stride)
			restS = append(restS, sp.rest.shape)
			restD = append(restD, sp.rest.stride)
		} else {
			restS = append(restS, sp.pass.shape)
			restD = append(restD, sp.pass.stride)
		}
	}
	return Layout{
		shape:  Tuple(Tuple(tileS...), Tuple(restS...)),
		stride: Tuple(Tuple(tileD...), Tuple(restD...)),
	}, nil
}

// TiledDivide is ZippedDivide with the rest group unpacked: the tile group
// stays as the first top-level mode and each rest or unaddressed mode
// becomes its own subsequent top-level mode.
func TiledDivide(l Layout, t Tiler) (Layout, error) {
	z, err := ZippedDivide(l, t)
	if err != nil {
		return Layout{}, err
	}
	return spliceTop(z, func(i int) bool { return i == 1 }), nil
}

// FlatDivide unpacks both groups: every tile, rest and unaddressed mode is
// a top-level mode, tiles first, in mode order.
func FlatDivide(l Layout, t Tiler) (Layout, error) {
	z, err := ZippedDivide(l, t)
	if err != nil {
		return Layout{}, err
	}
	return spliceTop(z, func(int) bool { return true }), nil
}

// spliceTop unpacks the selected top-level modes of a layout by one nesting
// level; leaf modes stay as they are.
func spliceTop(l Layout, selected func(i int) bool) Layout {
	var shapes, strides []IntTuple
	for i, m := range topModes(l) {
		if selected(i) && !m.shape.IsLeaf() {
			shapes = append(shapes, m.shape.items...)
			strides = append(strides, m.stride.items...)
			continue
		}
		shapes = append(shapes, m.shape)
		strides = append(strides, m.stride)
	}
	return Layout{shape: Tuple(shapes...), stride: Tuple(strides...)}
}
