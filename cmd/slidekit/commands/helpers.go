package commands

import (
	"errors"
	"fmt"
	"strings"

	slidekit "github.com/VantageDataChat/GoSlideKit"
)

// openDeck opens the deck named by the persistent --file flag.
func openDeck() (*slidekit.Deck, error) {
	if deckFile == "" {
		return nil, errors.New("no presentation given; use --file deck.pptx")
	}
	d, err := slidekit.Open(deckFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", deckFile, err)
	}
	return d, nil
}

// openSlide opens the deck and returns the slide selected by --slide.
func openSlide() (*slidekit.Deck, *slidekit.SlidePart, error) {
	d, err := openDeck()
	if err != nil {
		return nil, nil, err
	}
	slide, err := d.Slide(slideNum)
	if err != nil {
		return nil, nil, err
	}
	return d, slide, nil
}

// saveDeck writes the deck back, in place unless --output was given.
func saveDeck(d *slidekit.Deck) error {
	path := outFile
	if path == "" {
		path = deckFile
	}
	if err := d.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// parseShapeList splits a comma-separated --shapes value into selectors.
func parseShapeList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// resolveColorArg turns a --color value into a concrete color: a theme
// slot name or index is resolved against the deck's palette, anything
// else must be RRGGBB hex (optionally #-prefixed).
func resolveColorArg(d *slidekit.Deck, arg string) (slidekit.Color, error) {
	if slot, err := slidekit.ParseThemeSlot(arg); err == nil {
		if slot == slidekit.SlotNone {
			return slidekit.Color{}, fmt.Errorf("theme slot %q carries no color", arg)
		}
		palette, err := d.Palette()
		if err != nil {
			return slidekit.Color{}, err
		}
		return palette.Resolve(slot)
	}
	if c, ok := slidekit.ParseColor(arg); ok {
		return c, nil
	}
	return slidekit.Color{}, fmt.Errorf("unrecognized color %q: expected a theme slot (accent1, 5, ...) or hex (#RRGGBB)", arg)
}
