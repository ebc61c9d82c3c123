package slidekit

import (
	"fmt"
	"strings"
)

// Validate checks the opened deck for structural issues and returns an
// error describing all problems found, or nil if the deck is valid.
func (d *Deck) Validate() error {
	var errs []string

	if d.parts == nil {
		errs = append(errs, "deck is closed")
	}
	if len(d.slideNames) == 0 {
		errs = append(errs, "presentation has no slides")
	}
	if d.slideCX <= 0 || d.slideCY <= 0 {
		errs = append(errs, "slide size is missing or not positive")
	}
	if d.themeName == "" {
		errs = append(errs, "presentation has no theme part")
	}

	for i := range d.slideNames {
		num := i + 1
		slide, err := d.Slide(num)
		if err != nil {
			errs = append(errs, fmt.Sprintf("slide %d: %v", num, err))
			continue
		}
		errs = append(errs, validateSlide(slide)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateSlide(s *SlidePart) []string {
	var errs []string
	prefix := fmt.Sprintf("slide %d", s.number)
	for j, sh := range s.shapes {
		shapePrefix := fmt.Sprintf("%s shape %d", prefix, j+1)
		if sh.id <= 0 {
			errs = append(errs, shapePrefix+": missing or non-positive cNvPr id")
		}
		if sh.frame.CX < 0 {
			errs = append(errs, shapePrefix+": width is negative")
		}
		if sh.frame.CY < 0 {
			errs = append(errs, shapePrefix+": height is negative")
		}
		if sh.hasXfrm {
			if !sh.offSpan.valid() || sh.offSpan.end > len(s.data) {
				errs = append(errs, shapePrefix+": offset span out of bounds")
			}
			if !sh.extSpan.valid() || sh.extSpan.end > len(s.data) {
				errs = append(errs, shapePrefix+": extent span out of bounds")
			}
		}
	}
	return errs
}
