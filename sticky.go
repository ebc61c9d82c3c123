package slidekit

import (
	"fmt"
	"strconv"
	"strings"
)

// stickyNamePrefix names inserted notes; the count of existing notes
// drives the placement cascade.
const stickyNamePrefix = "Sticky Note"

// StickyNoteOptions configure an inserted note. Zero values fall back to
// the defaults: 2x2 inches, classic sticky yellow, text color picked by
// fill luminance.
type StickyNoteOptions struct {
	Width     EMU
	Height    EMU
	Fill      Color
	TextColor Color // empty means automatic contrast against the fill
}

func (o *StickyNoteOptions) fillDefaults() {
	if o.Width <= 0 {
		o.Width = Inch(2)
	}
	if o.Height <= 0 {
		o.Height = Inch(2)
	}
	if o.Fill.ARGB == "" {
		o.Fill = ColorStickyYellow
	}
	if o.TextColor.ARGB == "" {
		o.TextColor = o.Fill.ContrastText()
	}
}

// InsertStickyNote appends a rounded-rectangle note shape to the slide and
// returns a reference to it. Notes cascade down-right from the top-left
// margin, one step per note already on the slide, clamped to the slide
// bounds. Empty text produces a blank note.
func (s *SlidePart) InsertStickyNote(text string, opts StickyNoteOptions) (*ShapeRef, error) {
	opts.fillDefaults()

	id := s.maxID + 1
	existing, seq := s.stickySeq()
	name := fmt.Sprintf("%s %d", stickyNamePrefix, seq)
	x, y := s.stickyOrigin(existing, opts.Width, opts.Height)

	xml := stickyNoteXML(id, name, x, y, opts, text)
	plan := &splicePlan{}
	plan.insert(s.spTreeClose, []byte(xml))
	if err := s.commit(plan); err != nil {
		return nil, err
	}
	return s.ShapeByID(id)
}

// stickySeq counts existing notes for the placement cascade and picks
// the next note number past the highest existing suffix, so an inserted
// name never collides with a note already on the slide.
func (s *SlidePart) stickySeq() (existing, next int) {
	next = 1
	for _, sh := range s.shapes {
		suffix, ok := strings.CutPrefix(sh.name, stickyNamePrefix+" ")
		if !ok {
			continue
		}
		existing++
		if n, err := strconv.Atoi(suffix); err == nil && n >= next {
			next = n + 1
		}
	}
	return existing, next
}

// stickyOrigin cascades note placement and clamps it to the slide bounds.
func (s *SlidePart) stickyOrigin(existing int, w, h EMU) (EMU, EMU) {
	margin := Inch(0.5)
	step := Inch(0.25)
	x := margin + EMU(existing)*step
	y := margin + EMU(existing)*step

	if s.deck != nil {
		cx, cy := s.deck.SlideSize()
		if cx > 0 && x+w > cx {
			x = cx - w
		}
		if cy > 0 && y+h > cy {
			y = cy - h
		}
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// stickyNoteXML renders the complete <p:sp> element for a note.
func stickyNoteXML(id int, name string, x, y EMU, opts StickyNoteOptions, text string) string {
	border := opts.Fill.Darken(0.25)
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom>`+
		`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`+
		`<a:ln><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></p:spPr>`+
		`<p:txBody><a:bodyPr wrap="square" anchor="t"/><a:lstStyle/>`+
		`<a:p><a:r><a:rPr lang="en-US" dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`+
		`<a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, escapeXML(name),
		int64(x), int64(y), int64(opts.Width), int64(opts.Height),
		opts.Fill.RGB(), border.RGB(), opts.TextColor.RGB(),
		escapeXML(text))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
