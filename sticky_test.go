package slidekit

import (
	"fmt"
	"strings"
	"testing"
)

func TestInsertStickyNote(t *testing.T) {
	_, s := openSlideFixture(t, spXML(2, "Existing", 0, 0, 914400, 914400))

	note, err := s.InsertStickyNote("remember this", StickyNoteOptions{})
	if err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	if note.ID() != 3 {
		t.Errorf("note id = %d, want max id + 1 = 3", note.ID())
	}
	if note.Name() != "Sticky Note 1" {
		t.Errorf("note name = %q, want \"Sticky Note 1\"", note.Name())
	}
	if note.Kind() != ShapeKindAuto {
		t.Errorf("note kind = %s, want %s", note.Kind(), ShapeKindAuto)
	}
	want := Frame{X: Inch(0.5), Y: Inch(0.5), CX: Inch(2), CY: Inch(2)}
	if note.Frame() != want {
		t.Errorf("note frame = %v, want %v", note.Frame(), want)
	}
	if !note.Positionable() {
		t.Error("inserted note is not Positionable")
	}
	if !strings.Contains(string(s.data), `val="FFF599"`) {
		t.Error("default sticky fill missing from the slide")
	}
	if !strings.Contains(string(s.data), "remember this") {
		t.Error("note text missing from the slide")
	}
}

func TestStickyNoteCascade(t *testing.T) {
	_, s := openSlideFixture(t)

	for i := 0; i < 3; i++ {
		if _, err := s.InsertStickyNote("note", StickyNoteOptions{}); err != nil {
			t.Fatalf("insert %d: %v", i+1, err)
		}
	}

	wantX := []EMU{Inch(0.5), Inch(0.75), Inch(1.0)}
	for i, want := range wantX {
		name := fmt.Sprintf("Sticky Note %d", i+1)
		note, err := s.ShapeByName(name)
		if err != nil {
			t.Fatalf("note %q missing: %v", name, err)
		}
		if note.Frame().X != want || note.Frame().Y != want {
			t.Errorf("%s origin = (%s, %s), want (%s, %s)",
				name, note.Frame().X, note.Frame().Y, want, want)
		}
	}
}

func TestStickyNoteClampsToSlide(t *testing.T) {
	_, s := openSlideFixture(t)

	w := EMU(fixtureSlideCX) - Inch(0.1)
	h := EMU(fixtureSlideCY) - Inch(0.1)
	note, err := s.InsertStickyNote("big", StickyNoteOptions{Width: w, Height: h})
	if err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	f := note.Frame()
	if f.X+f.CX > fixtureSlideCX || f.Y+f.CY > fixtureSlideCY {
		t.Errorf("note overflows the slide: %v", f)
	}
	if f.X < 0 || f.Y < 0 {
		t.Errorf("note clamped past the origin: %v", f)
	}
}

func TestStickyNoteEscapesText(t *testing.T) {
	_, s := openSlideFixture(t)

	if _, err := s.InsertStickyNote(`a <b> & "c"`, StickyNoteOptions{}); err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	if !strings.Contains(string(s.data), `a &lt;b&gt; &amp; &quot;c&quot;`) {
		t.Error("note text not escaped")
	}

	note, err := s.ShapeByName("Sticky Note 1")
	if err != nil {
		t.Fatalf("note missing after insert: %v", err)
	}
	if note.BoldRunCount() != 0 {
		t.Errorf("note reports %d bold runs, want 0", note.BoldRunCount())
	}
}

func TestStickyNoteContrastText(t *testing.T) {
	_, s := openSlideFixture(t)

	// a dark fill gets white text, and the border is darker than the fill
	if _, err := s.InsertStickyNote("dark", StickyNoteOptions{Fill: NewColor("203040")}); err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	data := string(s.data)
	if !strings.Contains(data, `val="FFFFFF"`) {
		t.Error("dark fill did not get white text")
	}
	if !strings.Contains(data, `val="203040"`) {
		t.Error("custom fill missing")
	}

	_, s2 := openSlideFixture(t)
	if _, err := s2.InsertStickyNote("light", StickyNoteOptions{Fill: NewColor("FFF599")}); err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	if !strings.Contains(string(s2.data), `val="000000"`) {
		t.Error("light fill did not get black text")
	}
}

func TestStickyNoteExplicitTextColor(t *testing.T) {
	_, s := openSlideFixture(t)
	if _, err := s.InsertStickyNote("x", StickyNoteOptions{TextColor: NewColor("112233")}); err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	if !strings.Contains(string(s.data), `val="112233"`) {
		t.Error("explicit text color not used")
	}
}

func TestStickyNoteNumbersPastHighestSuffix(t *testing.T) {
	_, s := openSlideFixture(t, spXML(2, "Sticky Note 7", 0, 0, 914400, 914400))

	note, err := s.InsertStickyNote("next", StickyNoteOptions{})
	if err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	if note.Name() != "Sticky Note 8" {
		t.Errorf("note name = %q, want \"Sticky Note 8\"", note.Name())
	}
	// placement still cascades by note count, not by suffix
	if note.Frame().X != Inch(0.75) {
		t.Errorf("note origin x = %s, want %s", note.Frame().X, Inch(0.75))
	}
}

func TestStickyNoteNamesNeverCollide(t *testing.T) {
	_, s := openSlideFixture(t, spXML(2, "Sticky Note 2", 0, 0, 914400, 914400))

	note, err := s.InsertStickyNote("x", StickyNoteOptions{})
	if err != nil {
		t.Fatalf("InsertStickyNote: %v", err)
	}
	if note.Name() != "Sticky Note 3" {
		t.Errorf("note name = %q, want \"Sticky Note 3\"", note.Name())
	}
	// both notes stay addressable by name
	if _, err := s.ShapeByName("Sticky Note 2"); err != nil {
		t.Errorf("existing note no longer addressable: %v", err)
	}
	if _, err := s.ShapeByName("Sticky Note 3"); err != nil {
		t.Errorf("inserted note not addressable: %v", err)
	}
}
