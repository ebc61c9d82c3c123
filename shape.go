package slidekit

import "fmt"

// ShapeKind identifies the spTree element a shape was parsed from.
type ShapeKind string

const (
	ShapeKindAuto         ShapeKind = "sp"           // text boxes, auto shapes, placeholders
	ShapeKindPicture      ShapeKind = "pic"          // images
	ShapeKindGraphicFrame ShapeKind = "graphicFrame" // tables, charts, smartart
	ShapeKindConnector    ShapeKind = "cxnSp"        // connectors and lines
	ShapeKindGroup        ShapeKind = "grpSp"        // shape groups
)

// Frame is a shape's position and extent on the slide, in EMU.
type Frame struct {
	X  EMU // left offset
	Y  EMU // top offset
	CX EMU // width
	CY EMU // height
}

// String renders the frame in inches for human-readable output.
func (f Frame) String() string {
	return fmt.Sprintf("@(%s, %s) %s x %s", f.X, f.Y, f.CX, f.CY)
}

// span is a half-open byte range [start, end) within a slide part.
type span struct {
	start int
	end   int
}

func (s span) valid() bool { return s.end > s.start }

// boldRun records a bold text run's <a:rPr> element so its fill can be
// rewritten in place.
type boldRun struct {
	rPr         span // the full rPr element, start tag through closing tag
	startTagEnd int  // offset just past the rPr start tag's '>'
	selfClosing bool // rPr written as <a:rPr .../>
	solidFill   span // existing direct <a:solidFill> child, if any
	lnEnd       int  // offset just past a direct <a:ln> child, if any
}

// ShapeRef describes one top-level shape of a slide. It records where the
// shape's geometry and bold-run properties live inside the slide part so
// operations can splice new values in place. References are only valid
// until the slide part is next mutated.
type ShapeRef struct {
	id   int
	name string
	kind ShapeKind

	frame   Frame
	hasXfrm bool

	offSpan  span // <a:off .../> element bytes
	extSpan  span // <a:ext .../> element bytes
	boldRuns []boldRun
}

// ID returns the shape's cNvPr id.
func (s *ShapeRef) ID() int { return s.id }

// Name returns the shape's cNvPr name.
func (s *ShapeRef) Name() string { return s.name }

// Kind returns the shape's spTree element kind.
func (s *ShapeRef) Kind() ShapeKind { return s.kind }

// Frame returns the shape's position and extent.
func (s *ShapeRef) Frame() Frame { return s.frame }

// Positionable reports whether the shape carries its own xfrm. Placeholder
// shapes inheriting geometry from their layout do not, and cannot be moved
// or resized by this package.
func (s *ShapeRef) Positionable() bool {
	return s.hasXfrm && s.offSpan.valid() && s.extSpan.valid()
}

// BoldRunCount returns the number of bold text runs recorded in the shape.
func (s *ShapeRef) BoldRunCount() int { return len(s.boldRuns) }

// offXML renders an <a:off> element for the given origin.
func offXML(x, y EMU) []byte {
	return fmt.Appendf(nil, `<a:off x="%d" y="%d"/>`, int64(x), int64(y))
}

// extXML renders an <a:ext> element for the given extent.
func extXML(cx, cy EMU) []byte {
	return fmt.Appendf(nil, `<a:ext cx="%d" cy="%d"/>`, int64(cx), int64(cy))
}
