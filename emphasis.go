package slidekit

import "fmt"

// solidFillXML renders a run-property solid fill for the given color.
func solidFillXML(c Color) []byte {
	return fmt.Appendf(nil, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, c.RGB())
}

// ColorBoldRuns recolors every bold text run on the slide with the given
// color and returns the number of runs changed. A run with an existing
// solid fill has the fill replaced in place; a run without one gets a
// fill inserted at the front of its run properties, expanding the rPr
// element if it was written self-closing. A slide with no bold runs is
// left untouched and reports zero.
func (s *SlidePart) ColorBoldRuns(c Color) (int, error) {
	plan := &splicePlan{}
	count := 0
	for _, sh := range s.shapes {
		for _, run := range sh.boldRuns {
			fill := solidFillXML(c)
			switch {
			case run.solidFill.valid():
				plan.replace(run.solidFill.start, run.solidFill.end, fill)
			case run.selfClosing:
				// <a:rPr b="1"/> -> <a:rPr b="1"><a:solidFill>...</a:solidFill></a:rPr>
				opened := expandSelfClosing(s.data[run.rPr.start:run.rPr.end], fill)
				if opened == nil {
					return 0, fmt.Errorf("malformed run properties in shape %q (id %d)", sh.name, sh.id)
				}
				plan.replace(run.rPr.start, run.rPr.end, opened)
			default:
				// run properties order the outline before the fill group
				pos := run.startTagEnd
				if run.lnEnd > 0 {
					pos = run.lnEnd
				}
				plan.insert(pos, fill)
			}
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	if err := s.commit(plan); err != nil {
		return 0, err
	}
	return count, nil
}

// expandSelfClosing rewrites a self-closing element with inner content,
// preserving its attributes. Returns nil if src is not self-closing.
func expandSelfClosing(src, inner []byte) []byte {
	if len(src) < 2 || src[len(src)-2] != '/' || src[len(src)-1] != '>' {
		return nil
	}
	nameEnd := 1
	for nameEnd < len(src) && src[nameEnd] != ' ' && src[nameEnd] != '/' && src[nameEnd] != '>' {
		nameEnd++
	}
	name := src[1:nameEnd]

	out := make([]byte, 0, len(src)+len(inner)+len(name)+3)
	out = append(out, src[:len(src)-2]...)
	out = append(out, '>')
	out = append(out, inner...)
	out = append(out, '<', '/')
	out = append(out, name...)
	out = append(out, '>')
	return out
}
