package slidekit

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// The fixture builders assemble a minimal but structurally honest .pptx
// in memory: content types, package rels, presentation part with slide
// list and size, per-slide parts, and a theme carrying the stock Office
// color scheme.

const fixtureSlideCX = 12192000 // 13.333in, 16:9
const fixtureSlideCY = 6858000  // 7.5in

const fixtureContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`</Types>`

const fixtureRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`</Relationships>`

// fixtureThemeXML renders a theme part with the stock Office scheme and
// the given accent1 value, so theme-replacement tests can vary one slot.
func fixtureThemeXML(accent1 string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">` +
		`<a:themeElements><a:clrScheme name="Office">` +
		`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
		`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
		`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
		`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
		`<a:accent1><a:srgbClr val="` + accent1 + `"/></a:accent1>` +
		`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
		`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
		`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
		`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
		`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
		`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
		`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
		`</a:clrScheme></a:themeElements></a:theme>`
}

// slideXML wraps shape markup in a complete slide part. The spTree opens
// with the usual group properties PowerPoint writes, including the id=1
// root cNvPr.
func slideXML(shapes ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		strings.Join(shapes, "") +
		`</p:spTree></p:cSld></p:sld>`
}

// spXML renders a plain rectangle with an explicit xfrm.
func spXML(id int, name string, x, y, cx, cy int64) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:p><a:r><a:rPr lang="en-US"/><a:t>text</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, name, x, y, cx, cy)
}

// placeholderXML renders a title placeholder with no xfrm of its own;
// its geometry comes from the slide layout.
func placeholderXML(id int, name string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/>`+
		`<p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr><p:spPr/>`+
		`<p:txBody><a:bodyPr/><a:p><a:r><a:rPr lang="en-US"/><a:t>Title</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, name)
}

// textSpXML renders a shape whose text body is supplied verbatim, for
// bold-run variants.
func textSpXML(id int, name string, runs string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="914400" y="914400"/><a:ext cx="914400" cy="914400"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:p>%s</a:p></p:txBody></p:sp>`,
		id, name, runs)
}

// groupXML renders a group with its own xfrm wrapping the given child
// shape markup.
func groupXML(id int, name string, x, y, cx, cy int64, children ...string) string {
	return fmt.Sprintf(`<p:grpSp><p:nvGrpSpPr><p:cNvPr id="%d" name="%s"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`+
		`<p:grpSpPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/>`+
		`<a:chOff x="%d" y="%d"/><a:chExt cx="%d" cy="%d"/></a:xfrm></p:grpSpPr>%s</p:grpSp>`,
		id, name, x, y, cx, cy, x, y, cx, cy, strings.Join(children, ""))
}

// fixture describes the deck to assemble. A nil theme pointer keeps the
// stock theme; an explicit empty string omits the theme part entirely.
type fixture struct {
	slides  []string
	noTheme bool
	theme   string
}

// buildPPTX assembles the fixture into .pptx bytes.
func buildPPTX(t *testing.T, fx fixture) []byte {
	t.Helper()

	var sldIDs, slideRels strings.Builder
	for i := range fx.slides {
		fmt.Fprintf(&sldIDs, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+1)
		fmt.Fprintf(&slideRels,
			`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`,
			i+1, i+1)
	}
	themeRel := ""
	if !fx.noTheme {
		themeRel = `<Relationship Id="rId90" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`
	}

	presentation := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:sldIdLst>` + sldIDs.String() + `</p:sldIdLst>` +
		fmt.Sprintf(`<p:sldSz cx="%d" cy="%d"/>`, fixtureSlideCX, fixtureSlideCY) +
		`</p:presentation>`

	presentationRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		slideRels.String() + themeRel + `</Relationships>`

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", fixtureContentTypes},
		{"_rels/.rels", fixtureRootRels},
		{"ppt/presentation.xml", presentation},
		{"ppt/_rels/presentation.xml.rels", presentationRels},
	}
	for i, s := range fx.slides {
		parts = append(parts, struct {
			name string
			data string
		}{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), s})
	}
	if !fx.noTheme {
		theme := fx.theme
		if theme == "" {
			theme = fixtureThemeXML("4472C4")
		}
		parts = append(parts, struct {
			name string
			data string
		}{"ppt/theme/theme1.xml", theme})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			t.Fatalf("failed to create fixture part %s: %v", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			t.Fatalf("failed to write fixture part %s: %v", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close fixture zip: %v", err)
	}
	return buf.Bytes()
}

// openFixture builds the fixture and opens it as a Deck.
func openFixture(t *testing.T, fx fixture) *Deck {
	t.Helper()
	data := buildPPTX(t, fx)
	d, err := OpenFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open fixture deck: %v", err)
	}
	return d
}

// openSlideFixture opens a one-slide deck built from the given shapes.
func openSlideFixture(t *testing.T, shapes ...string) (*Deck, *SlidePart) {
	t.Helper()
	d := openFixture(t, fixture{slides: []string{slideXML(shapes...)}})
	s, err := d.Slide(1)
	if err != nil {
		t.Fatalf("failed to load slide 1: %v", err)
	}
	return d, s
}

// zipParts reads every entry of a zip archive into a name -> data map.
func zipParts(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to read zip: %v", err)
	}
	out := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		rc.Close()
		out[f.Name] = buf.Bytes()
	}
	return out
}
