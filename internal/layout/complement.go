package layout

import "sort"

// complementOf returns a layout covering the part of [0, n) that t does not
// reach, ordered so that concatenating (t, complement) covers [0, n)
// exactly. Modes of provable extent 1 and provable stride 0 reach nothing
// and are ignored. The remaining modes, taken by increasing stride, must
// tile the interval without overlap: each stride must be a multiple of the
// span covered so far, and n a multiple of the total span. Divisions
// controlled by dynamic values are deferred.
func complementOf(t Layout, n Int, check divCheck) (Layout, error) {
	ms := flatModes(t)
	kept := ms[:0:0]
	for _, m := range ms {
		if m.s.ProvablyOne() || m.d.ProvablyZero() {
			continue
		}
		kept = append(kept, m)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].d.Value() < kept[j].d.Value()
	})

	cur := S(1)
	out := make([]mode, 0, len(kept)+1)
	for _, m := range kept {
		q, err := exactDiv(m.d, cur, check)
		if err != nil {
			return Layout{}, err
		}
		out = append(out, mode{s: q, d: cur})
		cur = m.s.Mul(m.d)
	}
	q, err := exactDiv(n, cur, check)
	if err != nil {
		return Layout{}, err
	}
	out = append(out, mode{s: q, d: cur})
	return Coalesce(modesToLayout(out)), nil
}
