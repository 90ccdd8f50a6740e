package layout

// Tiler selects per-mode parameters for composition, division and product.
// It is either a single layout, applied to a target as a whole, or a tuple
// whose entries address the target's top-level modes in order. Modes with
// no corresponding entry pass through the operation untouched.
type Tiler struct {
	leaf   bool
	layout Layout
	items  []Tiler
}

// TileOf returns a tiler holding a single layout.
func TileOf(l Layout) Tiler { return Tiler{leaf: true, layout: l} }

// Tile returns a tuple tiler with the given entries.
func Tile(items ...Tiler) Tiler {
	return Tiler{items: append([]Tiler(nil), items...)}
}

// IsLayout reports whether the tiler is a single layout.
func (t Tiler) IsLayout() bool { return t.leaf }

// Layout returns the layout of a single-layout tiler.
func (t Tiler) Layout() Layout { return t.layout }

// Rank returns the number of entries of a tuple tiler, or 1 for a layout.
func (t Tiler) Rank() int {
	if t.leaf {
		return 1
	}
	return len(t.items)
}
