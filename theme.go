package slidekit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Theme palette errors.
var (
	ErrNoTheme          = errors.New("deck has no theme part")
	ErrUnknownThemeSlot = errors.New("unknown theme color slot")
)

// ThemeSlot identifies one of the 12 scheme color slots of the active
// theme, plus the zero value None meaning "automatic, leave color alone".
type ThemeSlot int

// Theme color slots in OOXML clrScheme order.
const (
	SlotNone ThemeSlot = iota
	SlotDark1
	SlotLight1
	SlotDark2
	SlotLight2
	SlotAccent1
	SlotAccent2
	SlotAccent3
	SlotAccent4
	SlotAccent5
	SlotAccent6
	SlotHyperlink
	SlotFollowedHyperlink
)

// slotSchemeNames maps slots to the element names used in <a:clrScheme>.
var slotSchemeNames = [13]string{
	"", "dk1", "lt1", "dk2", "lt2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// String returns the clrScheme element name for the slot ("none" for SlotNone).
func (s ThemeSlot) String() string {
	if s == SlotNone {
		return "none"
	}
	if s < SlotNone || s > SlotFollowedHyperlink {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotSchemeNames[s]
}

// IsValid reports whether the slot is within 0–12.
func (s ThemeSlot) IsValid() bool {
	return s >= SlotNone && s <= SlotFollowedHyperlink
}

// ParseThemeSlot resolves a slot from either its numeric index (0–12), its
// clrScheme name ("accent1"), a clrMap alias ("bg1", "tx2"), or a human
// alias ("hyperlink"). Matching is case-insensitive.
func ParseThemeSlot(s string) (ThemeSlot, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(name); err == nil {
		slot := ThemeSlot(n)
		if !slot.IsValid() {
			return SlotNone, fmt.Errorf("%w: index %d (valid range 0-12)", ErrUnknownThemeSlot, n)
		}
		return slot, nil
	}
	switch name {
	case "none", "automatic":
		return SlotNone, nil
	case "tx1", "text1":
		return SlotDark1, nil
	case "bg1", "background1":
		return SlotLight1, nil
	case "tx2", "text2":
		return SlotDark2, nil
	case "bg2", "background2":
		return SlotLight2, nil
	case "hyperlink":
		return SlotHyperlink, nil
	case "folhlink", "followedhyperlink":
		return SlotFollowedHyperlink, nil
	}
	for i, n := range slotSchemeNames {
		if i > 0 && strings.EqualFold(n, name) {
			return ThemeSlot(i), nil
		}
	}
	return SlotNone, fmt.Errorf("%w: %q", ErrUnknownThemeSlot, s)
}

// ColorScheme holds the 12 scheme colors of a theme, resolved to ARGB.
type ColorScheme struct {
	Name   string
	colors [13]Color // indexed by ThemeSlot; slot 0 unused
}

// Color returns the concrete color for a slot.
// SlotNone and out-of-range slots report an error.
func (cs *ColorScheme) Color(slot ThemeSlot) (Color, error) {
	if slot == SlotNone || !slot.IsValid() {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownThemeSlot, slot)
	}
	return cs.colors[slot], nil
}

// Slots returns all 12 slots in clrScheme order.
func (cs *ColorScheme) Slots() []ThemeSlot {
	slots := make([]ThemeSlot, 0, 12)
	for s := SlotDark1; s <= SlotFollowedHyperlink; s++ {
		slots = append(slots, s)
	}
	return slots
}

// parseColorScheme extracts the <a:clrScheme> from a theme part.
// Each slot element carries either <a:srgbClr val="RRGGBB"/> or
// <a:sysClr val="..." lastClr="RRGGBB"/>.
func parseColorScheme(data []byte) (*ColorScheme, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	cs := &ColorScheme{}
	inScheme := false
	current := SlotNone
	seen := 0

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "clrScheme":
				inScheme = true
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						cs.Name = attr.Value
					}
				}
			case "srgbClr":
				if inScheme && current != SlotNone {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							cs.colors[current] = NewColor(attr.Value)
							seen++
						}
					}
				}
			case "sysClr":
				if inScheme && current != SlotNone {
					for _, attr := range t.Attr {
						if attr.Name.Local == "lastClr" {
							cs.colors[current] = NewColor(attr.Value)
							seen++
						}
					}
				}
			default:
				if inScheme {
					if slot, err := ParseThemeSlot(t.Name.Local); err == nil && slot != SlotNone {
						current = slot
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "clrScheme":
				inScheme = false
			default:
				if inScheme && current != SlotNone && t.Name.Local == current.String() {
					current = SlotNone
				}
			}
		}
	}

	if seen == 0 {
		return nil, fmt.Errorf("theme part has no color scheme")
	}
	return cs, nil
}

// Palette resolves theme color slots to concrete colors at use time.
// It is cached by the owning Deck and invalidated when the theme part
// is replaced.
type Palette struct {
	scheme *ColorScheme
}

// SchemeName returns the name of the underlying color scheme.
func (p *Palette) SchemeName() string {
	return p.scheme.Name
}

// Resolve returns the concrete color for a slot.
func (p *Palette) Resolve(slot ThemeSlot) (Color, error) {
	return p.scheme.Color(slot)
}

// ResolveName resolves a slot given by name or index ("accent1", "bg2", "7").
func (p *Palette) ResolveName(name string) (Color, error) {
	slot, err := ParseThemeSlot(name)
	if err != nil {
		return Color{}, err
	}
	return p.scheme.Color(slot)
}
