package commands

import (
	"github.com/spf13/cobra"
)

var swapShapes string

func init() {
	rootCmd.AddCommand(swapCmd)
	swapCmd.Flags().StringVar(&swapShapes, "shapes", "", "exactly two shape ids or names, comma-separated (required)")
	swapCmd.MarkFlagRequired("shapes")
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap the positions of two shapes",
	Long: `Swap exchanges the (x, y) origins of exactly two shapes on a slide,
leaving their sizes unchanged. Running the same swap twice restores the
original layout.`,
	Example: `  # Swap two shapes by id
  slidekit swap -f deck.pptx --slide 3 --shapes 4,7

  # Swap by name
  slidekit swap -f deck.pptx --shapes "Title 1,Picture 2"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, slide, err := openSlide()
		if err != nil {
			return err
		}
		defer d.Close()

		sel, err := slide.Select(parseShapeList(swapShapes)...)
		if err != nil {
			return err
		}
		if err := slide.SwapPositions(sel); err != nil {
			return err
		}
		if err := saveDeck(d); err != nil {
			return err
		}
		notifier.Infof("swapped %q and %q on slide %d", sel[0].Name(), sel[1].Name(), slide.Number())
		return nil
	},
}
