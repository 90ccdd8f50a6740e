package layout

import "errors"

var (
	// ErrShapeStrideMismatch indicates a shape and stride whose tuple trees
	// are not congruent (different nesting or per-mode arity).
	ErrShapeStrideMismatch = errors.New("layout: shape and stride tuples are not congruent")
	// ErrCoordinateOutOfRange indicates an evaluation coordinate or linear
	// index outside the layout's domain.
	ErrCoordinateOutOfRange = errors.New("layout: coordinate outside the layout domain")
	// ErrCompositionDivisibility indicates an inner layout that is not an
	// exact, stride-respecting sublayout of the outer layout's extents.
	ErrCompositionDivisibility = errors.New("layout: inner layout does not cut the outer layout exactly")
	// ErrDivisionDivisibility indicates a tiler extent that does not exactly
	// divide the extent of the mode it targets.
	ErrDivisionDivisibility = errors.New("layout: tiler extent does not divide the targeted extent")
)

func divisibilityErr(c divCheck) error {
	if c == divDivision {
		return ErrDivisionDivisibility
	}
	return ErrCompositionDivisibility
}
