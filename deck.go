// Package slidekit provides in-place shape arrangement for existing
// PowerPoint presentation files (.pptx) following the Office Open XML
// (OOXML) standard.
//
// Unlike generator libraries, slidekit never regenerates a deck from a
// model: it opens the package, records where each shape's geometry and
// text run properties live inside the slide parts, and applies edits as
// byte splices. Everything an operation does not touch is written back
// exactly as the authoring application produced it.
//
// See the Version variable for the current library version.
package slidekit

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Deck errors.
var (
	ErrNotPresentation = errors.New("file is not a PowerPoint presentation")
	ErrSlideOutOfRange = errors.New("slide number out of range")
)

// maxZipEntrySize is the maximum allowed size for a single part extracted
// from a deck. This prevents zip bomb attacks. 50 MB is generous for any
// legitimate PPTX part.
const maxZipEntrySize = 50 << 20 // 50 MB

// maxZipTotalSize is the cumulative limit for all extracted content.
const maxZipTotalSize = 200 << 20 // 200 MB

// maxZipEntries is the maximum number of parts allowed in a deck.
const maxZipEntries = 10000

// part is one file inside the pptx package.
type part struct {
	name     string
	data     []byte
	modified bool
}

// Deck is an opened .pptx presentation held in memory. Parts this package
// does not understand are carried through Save byte-for-byte; only parts
// touched by an operation are rewritten.
type Deck struct {
	parts []*part
	index map[string]*part

	slideNames []string // slide part names in presentation order
	slideCache map[int]*SlidePart

	slideCX EMU
	slideCY EMU

	themeName string
	palette   *Palette
}

// Open reads a .pptx file from disk.
func Open(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return OpenFrom(f, info.Size())
}

// OpenFrom reads a .pptx from an io.ReaderAt with the given size.
func OpenFrom(r io.ReaderAt, size int64) (*Deck, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid reader size: %d", size)
	}
	if size > int64(maxZipTotalSize) {
		return nil, fmt.Errorf("file size %d exceeds maximum allowed (%d bytes)", size, maxZipTotalSize)
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("zip archive contains too many entries (%d > %d)", len(zr.File), maxZipEntries)
	}

	d := &Deck{
		index:      make(map[string]*part, len(zr.File)),
		slideCache: make(map[int]*SlidePart),
	}

	var total int64
	for _, f := range zr.File {
		if f.UncompressedSize64 > maxZipEntrySize {
			return nil, fmt.Errorf("part %s exceeds maximum allowed size (%d bytes)", f.Name, maxZipEntrySize)
		}
		data, err := readZipEntry(f)
		if err != nil {
			return nil, err
		}
		total += int64(len(data))
		if total > maxZipTotalSize {
			return nil, fmt.Errorf("archive content exceeds maximum allowed size (%d bytes)", maxZipTotalSize)
		}
		p := &part{name: f.Name, data: data}
		d.parts = append(d.parts, p)
		d.index[f.Name] = p
	}

	if err := d.readPresentation(); err != nil {
		return nil, err
	}
	return d, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in zip: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, int64(maxZipEntrySize)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from zip: %w", f.Name, err)
	}
	if int64(len(data)) > int64(maxZipEntrySize) {
		return nil, fmt.Errorf("part %s actual size exceeds maximum allowed size", f.Name)
	}
	return data, nil
}

// --- Relationship reading ---

type xmlRelForRead struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type xmlRelsForRead struct {
	XMLName       xml.Name        `xml:"Relationships"`
	Relationships []xmlRelForRead `xml:"Relationship"`
}

func (d *Deck) readRelationships(name string) ([]xmlRelForRead, error) {
	p, ok := d.index[name]
	if !ok {
		return nil, nil // relationships part may not exist
	}
	var rels xmlRelsForRead
	if err := xml.Unmarshal(p.data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships %s: %w", name, err)
	}
	return rels.Relationships, nil
}

// readPresentation walks ppt/presentation.xml for the slide order and the
// slide size, then joins the sldIdLst r:ids against the presentation rels
// to find the slide part names.
func (d *Deck) readPresentation() error {
	p, ok := d.index["ppt/presentation.xml"]
	if !ok {
		return fmt.Errorf("%w: missing ppt/presentation.xml", ErrNotPresentation)
	}

	var slideRelIDs []string
	decoder := xml.NewDecoder(bytes.NewReader(p.data))
	inSldIdLst := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse presentation.xml: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sldIdLst":
				inSldIdLst = true
			case "sldId":
				if !inSldIdLst {
					continue
				}
				for _, attr := range t.Attr {
					// r:id carries the relationship; the plain id attr is the slide id
					if attr.Name.Local == "id" && attr.Name.Space != "" {
						slideRelIDs = append(slideRelIDs, attr.Value)
					}
				}
			case "sldSz":
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "cx":
						d.slideCX = parseEMUAttr(attr.Value)
					case "cy":
						d.slideCY = parseEMUAttr(attr.Value)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "sldIdLst" {
				inSldIdLst = false
			}
		}
	}

	rels, err := d.readRelationships("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return err
	}
	byID := make(map[string]xmlRelForRead, len(rels))
	for _, rel := range rels {
		byID[rel.ID] = rel
	}

	for _, rid := range slideRelIDs {
		rel, ok := byID[rid]
		if !ok {
			continue
		}
		target := rel.Target
		if !strings.HasPrefix(target, "ppt/") {
			target = "ppt/" + target
		}
		if _, exists := d.index[target]; exists {
			d.slideNames = append(d.slideNames, target)
		}
	}

	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, "/theme") {
			target := rel.Target
			if !strings.HasPrefix(target, "ppt/") {
				target = "ppt/" + target
			}
			if _, exists := d.index[target]; exists {
				d.themeName = target
				break
			}
		}
	}
	if d.themeName == "" {
		if _, exists := d.index["ppt/theme/theme1.xml"]; exists {
			d.themeName = "ppt/theme/theme1.xml"
		}
	}
	return nil
}

func parseEMUAttr(s string) EMU {
	var v int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		v = v*10 + int64(c-'0')
	}
	return EMU(v)
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() int { return len(d.slideNames) }

// SlideSize returns the slide width and height in EMU.
func (d *Deck) SlideSize() (EMU, EMU) { return d.slideCX, d.slideCY }

// Slide returns the slide with the given 1-based number, parsing it on
// first access. The returned SlidePart stays valid across its own edits.
func (d *Deck) Slide(number int) (*SlidePart, error) {
	if number < 1 || number > len(d.slideNames) {
		return nil, fmt.Errorf("%w: %d (deck has slides 1-%d)", ErrSlideOutOfRange, number, len(d.slideNames))
	}
	if s, ok := d.slideCache[number]; ok {
		return s, nil
	}
	name := d.slideNames[number-1]
	s, err := parseSlidePart(d, name, number, d.index[name].data)
	if err != nil {
		return nil, err
	}
	d.slideCache[number] = s
	return s, nil
}

// Palette returns the resolved theme color palette, cached until the theme
// part is replaced.
func (d *Deck) Palette() (*Palette, error) {
	if d.palette != nil {
		return d.palette, nil
	}
	if d.themeName == "" {
		return nil, ErrNoTheme
	}
	scheme, err := parseColorScheme(d.index[d.themeName].data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", d.themeName, err)
	}
	d.palette = &Palette{scheme: scheme}
	return d.palette, nil
}

// ReplaceTheme swaps the theme part bytes and invalidates the cached
// palette, the deck-file analog of the host's theme-change event.
func (d *Deck) ReplaceTheme(data []byte) error {
	if d.themeName == "" {
		return ErrNoTheme
	}
	d.setPart(d.themeName, data)
	d.palette = nil
	return nil
}

// setPart replaces a part's bytes and marks it modified.
func (d *Deck) setPart(name string, data []byte) {
	if p, ok := d.index[name]; ok {
		p.data = data
		p.modified = true
	}
}

// Modified reports whether any part has been changed since the deck
// was opened.
func (d *Deck) Modified() bool {
	for _, p := range d.parts {
		if p.modified {
			return true
		}
	}
	return false
}

// Close releases the deck's part table to allow garbage collection.
func (d *Deck) Close() error {
	d.parts = nil
	d.index = nil
	d.slideNames = nil
	d.slideCache = nil
	d.palette = nil
	return nil
}
