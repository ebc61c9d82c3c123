package slidekit

import (
	"errors"
	"fmt"
)

// Arrangement errors.
var (
	ErrSelectionCount  = errors.New("wrong number of shapes selected")
	ErrNotPositionable = errors.New("shape has no explicit position")
)

// checkPositionable verifies every selected shape carries its own xfrm.
func checkPositionable(sel []*ShapeRef) error {
	for _, ref := range sel {
		if !ref.Positionable() {
			return fmt.Errorf("%w: %q (id %d) inherits geometry from its layout", ErrNotPositionable, ref.name, ref.id)
		}
	}
	return nil
}

// SwapPositions exchanges the (x, y) origins of exactly two shapes,
// leaving both extents unchanged. Both positions are read before either
// is written; applying the operation twice restores the original layout.
// Selections that are not exactly two positionable shapes are rejected
// without mutating the slide.
func (s *SlidePart) SwapPositions(sel []*ShapeRef) error {
	if len(sel) != 2 {
		return fmt.Errorf("%w: swap needs exactly 2 shapes, got %d", ErrSelectionCount, len(sel))
	}
	if err := checkPositionable(sel); err != nil {
		return err
	}

	a, b := sel[0], sel[1]
	aFrame, bFrame := a.frame, b.frame

	plan := &splicePlan{}
	plan.replace(a.offSpan.start, a.offSpan.end, offXML(bFrame.X, bFrame.Y))
	plan.replace(b.offSpan.start, b.offSpan.end, offXML(aFrame.X, aFrame.Y))
	return s.commit(plan)
}

// matchDimensions applies the reference shape's width and/or height to
// every other shape in the selection and reports how many were changed.
func (s *SlidePart) matchDimensions(sel []*ShapeRef, width, height bool) (int, error) {
	if len(sel) < 2 {
		return 0, fmt.Errorf("%w: match needs at least 2 shapes, got %d", ErrSelectionCount, len(sel))
	}
	if err := checkPositionable(sel); err != nil {
		return 0, err
	}

	ref := sel[0]
	plan := &splicePlan{}
	for _, sh := range sel[1:] {
		cx, cy := sh.frame.CX, sh.frame.CY
		if width {
			cx = ref.frame.CX
		}
		if height {
			cy = ref.frame.CY
		}
		plan.replace(sh.extSpan.start, sh.extSpan.end, extXML(cx, cy))
	}
	if err := s.commit(plan); err != nil {
		return 0, err
	}
	return len(sel) - 1, nil
}

// MatchWidth sets the width of every shape after the first to the first
// shape's width. Returns the count of shapes changed (N-1).
func (s *SlidePart) MatchWidth(sel []*ShapeRef) (int, error) {
	return s.matchDimensions(sel, true, false)
}

// MatchHeight sets the height of every shape after the first to the first
// shape's height. Returns the count of shapes changed (N-1).
func (s *SlidePart) MatchHeight(sel []*ShapeRef) (int, error) {
	return s.matchDimensions(sel, false, true)
}

// MatchSize sets both dimensions of every shape after the first to the
// first shape's. Returns the count of shapes changed (N-1).
func (s *SlidePart) MatchSize(sel []*ShapeRef) (int, error) {
	return s.matchDimensions(sel, true, true)
}
