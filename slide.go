package slidekit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Shape lookup errors.
var (
	ErrShapeNotFound  = errors.New("shape not found")
	ErrShapeAmbiguous = errors.New("shape name is ambiguous")
)

// SlidePart is one ppt/slides/slideN.xml part of an opened deck. It keeps
// the raw part bytes plus parsed references into them; every mutation is a
// byte splice followed by a reparse, so untouched markup survives exactly
// as the authoring application wrote it.
type SlidePart struct {
	deck   *Deck
	name   string // zip part name, e.g. "ppt/slides/slide1.xml"
	number int    // 1-based slide number in presentation order

	data        []byte
	shapes      []*ShapeRef
	maxID       int
	spTreeClose int // offset of the closing </p:spTree> tag
}

// Number returns the 1-based slide number.
func (s *SlidePart) Number() int { return s.number }

// PartName returns the zip part name of the slide.
func (s *SlidePart) PartName() string { return s.name }

// Shapes returns the top-level shapes of the slide in document order.
// Shapes nested inside a group are not individually addressable; the
// group itself is. Shapes wrapped in mc:AlternateContent markup are not
// listed either, though their ids still count toward MaxShapeID.
func (s *SlidePart) Shapes() []*ShapeRef { return s.shapes }

// MaxShapeID returns the largest cNvPr id present anywhere in the slide,
// including shapes nested in groups. Inserted shapes use MaxShapeID()+1.
func (s *SlidePart) MaxShapeID() int { return s.maxID }

// ShapeByID returns the top-level shape with the given cNvPr id.
func (s *SlidePart) ShapeByID(id int) (*ShapeRef, error) {
	for _, sh := range s.shapes {
		if sh.id == id {
			return sh, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d on slide %d", ErrShapeNotFound, id, s.number)
}

// ShapeByName returns the top-level shape with the given name. An exact
// match wins; otherwise a unique case-insensitive match is accepted.
func (s *SlidePart) ShapeByName(name string) (*ShapeRef, error) {
	for _, sh := range s.shapes {
		if sh.name == name {
			return sh, nil
		}
	}
	var found *ShapeRef
	for _, sh := range s.shapes {
		if strings.EqualFold(sh.name, name) {
			if found != nil {
				return nil, fmt.Errorf("%w: %q on slide %d", ErrShapeAmbiguous, name, s.number)
			}
			found = sh
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q on slide %d", ErrShapeNotFound, name, s.number)
	}
	return found, nil
}

// Select resolves a list of id-or-name selectors into an ordered shape
// selection. Numeric selectors are tried as ids first, then as names.
// Unknown or duplicate selectors fail the whole selection; nothing pins
// a partially resolved result.
func (s *SlidePart) Select(selectors ...string) ([]*ShapeRef, error) {
	sel := make([]*ShapeRef, 0, len(selectors))
	seen := make(map[*ShapeRef]string, len(selectors))
	for _, raw := range selectors {
		ref, err := s.resolveSelector(raw)
		if err != nil {
			return nil, err
		}
		if prior, dup := seen[ref]; dup {
			return nil, fmt.Errorf("selectors %q and %q resolve to the same shape (id %d)", prior, raw, ref.id)
		}
		seen[ref] = raw
		sel = append(sel, ref)
	}
	return sel, nil
}

func (s *SlidePart) resolveSelector(raw string) (*ShapeRef, error) {
	sel := strings.TrimSpace(raw)
	if sel == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrShapeNotFound)
	}
	if id, err := strconv.Atoi(sel); err == nil {
		if ref, err := s.ShapeByID(id); err == nil {
			return ref, nil
		}
	}
	return s.ShapeByName(sel)
}

// commit applies a splice plan to the part and reparses it. On success the
// receiver is updated in place and the owning deck's part table picks up
// the new bytes; on failure the part is untouched.
func (s *SlidePart) commit(plan *splicePlan) error {
	out, err := plan.apply(s.data)
	if err != nil {
		return fmt.Errorf("slide %d: %w", s.number, err)
	}
	reparsed, err := parseSlidePart(s.deck, s.name, s.number, out)
	if err != nil {
		return fmt.Errorf("slide %d: reparse after edit: %w", s.number, err)
	}
	*s = *reparsed
	if s.deck != nil {
		s.deck.setPart(s.name, out)
	}
	return nil
}

// shapeKinds are the spTree children that count as shapes.
var shapeKinds = map[string]ShapeKind{
	"sp":           ShapeKindAuto,
	"pic":          ShapeKindPicture,
	"graphicFrame": ShapeKindGraphicFrame,
	"cxnSp":        ShapeKindConnector,
	"grpSp":        ShapeKindGroup,
}

// parseSlidePart walks the slide XML once, recording for every top-level
// shape its identity, its xfrm offset/extent spans, and the rPr span of
// every bold text run. Offsets come from the decoder's input positions,
// so spans index directly into the raw part bytes.
func parseSlidePart(deck *Deck, name string, number int, data []byte) (*SlidePart, error) {
	sp := &SlidePart{
		deck:        deck,
		name:        name,
		number:      number,
		data:        data,
		spTreeClose: -1,
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		stack       []string
		spTreeDepth = -1

		cur      *ShapeRef
		curDepth int
		curNamed bool
		offDone  bool
		extDone  bool
		offStart = -1
		extStart = -1

		curBold   *boldRun
		boldDepth int
		fillStart = -1
	)

	for {
		before := decoder.InputOffset()
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			local := t.Name.Local
			parentIsSpTree := spTreeDepth > 0 && len(stack) == spTreeDepth
			stack = append(stack, local)
			after := decoder.InputOffset()

			if kind, isShape := shapeKinds[local]; isShape && cur == nil && parentIsSpTree {
				cur = &ShapeRef{kind: kind}
				curDepth = len(stack)
				curNamed = false
				offDone, extDone = false, false
				continue
			}

			switch local {
			case "spTree":
				if spTreeDepth < 0 {
					spTreeDepth = len(stack)
				}
			case "cNvPr":
				id, shapeName := -1, ""
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "id":
						if v, err := strconv.Atoi(attr.Value); err == nil {
							id = v
						}
					case "name":
						shapeName = attr.Value
					}
				}
				if id > sp.maxID {
					sp.maxID = id
				}
				if cur != nil && !curNamed {
					cur.id = id
					cur.name = shapeName
					curNamed = true
				}
			case "off":
				if cur != nil && !offDone && offStart < 0 {
					offStart = int(before)
					for _, attr := range t.Attr {
						switch attr.Name.Local {
						case "x":
							if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
								cur.frame.X = EMU(v)
							}
						case "y":
							if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
								cur.frame.Y = EMU(v)
							}
						}
					}
				}
			case "ext":
				if cur != nil && !extDone && extStart < 0 {
					extStart = int(before)
					for _, attr := range t.Attr {
						switch attr.Name.Local {
						case "cx":
							if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
								cur.frame.CX = EMU(v)
							}
						case "cy":
							if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
								cur.frame.CY = EMU(v)
							}
						}
					}
				}
			case "rPr":
				if cur != nil && curBold == nil && runIsBold(t.Attr) {
					curBold = &boldRun{
						rPr:         span{start: int(before)},
						startTagEnd: int(after),
						solidFill:   span{start: -1, end: -1},
					}
					boldDepth = len(stack)
					fillStart = -1
				}
			case "solidFill":
				if curBold != nil && len(stack) == boldDepth+1 && fillStart < 0 && !curBold.solidFill.valid() {
					fillStart = int(before)
				}
			}

		case xml.EndElement:
			local := t.Name.Local
			if len(stack) == 0 {
				return nil, fmt.Errorf("failed to parse %s: unbalanced element %s", name, local)
			}
			stack = stack[:len(stack)-1]
			after := decoder.InputOffset()

			switch local {
			case "off":
				if cur != nil && offStart >= 0 {
					cur.offSpan = span{start: offStart, end: int(after)}
					offStart = -1
					offDone = true
				}
			case "ext":
				if cur != nil && extStart >= 0 {
					cur.extSpan = span{start: extStart, end: int(after)}
					extStart = -1
					extDone = true
				}
			case "solidFill":
				if curBold != nil && fillStart >= 0 {
					curBold.solidFill = span{start: fillStart, end: int(after)}
					fillStart = -1
				}
			case "ln":
				// a direct outline child; fills must be inserted after it
				if curBold != nil && len(stack) == boldDepth && curBold.lnEnd == 0 {
					curBold.lnEnd = int(after)
				}
			case "rPr":
				if curBold != nil && len(stack) == boldDepth-1 {
					curBold.rPr.end = int(after)
					curBold.selfClosing = curBold.rPr.end == curBold.startTagEnd
					cur.boldRuns = append(cur.boldRuns, *curBold)
					curBold = nil
				}
			case "spTree":
				if len(stack) == spTreeDepth-1 && sp.spTreeClose < 0 {
					sp.spTreeClose = int(before)
				}
			}

			if cur != nil && len(stack) < curDepth {
				cur.hasXfrm = offDone && extDone
				sp.shapes = append(sp.shapes, cur)
				cur = nil
				curBold = nil
			}
		}
	}

	if spTreeDepth < 0 || sp.spTreeClose < 0 {
		return nil, fmt.Errorf("failed to parse %s: no shape tree found", name)
	}
	return sp, nil
}

// runIsBold reports whether an rPr attribute list marks the run bold.
func runIsBold(attrs []xml.Attr) bool {
	for _, attr := range attrs {
		if attr.Name.Local == "b" {
			return attr.Value == "1" || attr.Value == "true"
		}
	}
	return false
}
