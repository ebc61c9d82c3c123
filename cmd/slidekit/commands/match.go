package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchShapes string

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringVar(&matchShapes, "shapes", "", "two or more shape ids or names, comma-separated; the first is the reference (required)")
	matchCmd.MarkFlagRequired("shapes")
}

var matchCmd = &cobra.Command{
	Use:       "match {width|height|size}",
	Short:     "Match shape dimensions to a reference shape",
	ValidArgs: []string{"width", "height", "size"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Match sets the width, height, or both of every selected shape to the
first selected shape's dimension(s). The reference shape itself is never
changed.`,
	Example: `  # Give three pictures the width of the first
  slidekit match width -f deck.pptx --slide 2 --shapes 5,6,8

  # Equalize both dimensions
  slidekit match size -f deck.pptx --shapes "Header,Box 2,Box 3"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, slide, err := openSlide()
		if err != nil {
			return err
		}
		defer d.Close()

		sel, err := slide.Select(parseShapeList(matchShapes)...)
		if err != nil {
			return err
		}

		var changed int
		switch args[0] {
		case "width":
			changed, err = slide.MatchWidth(sel)
		case "height":
			changed, err = slide.MatchHeight(sel)
		case "size":
			changed, err = slide.MatchSize(sel)
		default:
			return fmt.Errorf("unknown dimension %q", args[0])
		}
		if err != nil {
			return err
		}
		if err := saveDeck(d); err != nil {
			return err
		}
		notifier.Infof("matched %s of %d shape(s) to %q on slide %d", args[0], changed, sel[0].Name(), slide.Number())
		return nil
	},
}
