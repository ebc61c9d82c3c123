package commands

import (
	"github.com/spf13/cobra"

	slidekit "github.com/VantageDataChat/GoSlideKit"
)

var (
	stickyText   string
	stickyFill   string
	stickyWidth  float64
	stickyHeight float64
)

func init() {
	rootCmd.AddCommand(stickyCmd)
	stickyCmd.Flags().StringVar(&stickyText, "text", "", "note text (empty for a blank note)")
	stickyCmd.Flags().StringVar(&stickyFill, "fill", "", "fill color as hex (default from config, sticky yellow)")
	stickyCmd.Flags().Float64Var(&stickyWidth, "width", 0, "note width in inches (default from config)")
	stickyCmd.Flags().Float64Var(&stickyHeight, "height", 0, "note height in inches (default from config)")
}

var stickyCmd = &cobra.Command{
	Use:   "sticky",
	Short: "Insert a sticky note onto a slide",
	Long: `Sticky drops a rounded-rectangle note shape onto the selected slide.
Notes cascade from the top-left margin and stay within the slide bounds;
the text color is picked automatically for contrast against the fill.`,
	Example: `  slidekit sticky -f deck.pptx --slide 2 --text "Replace this chart"

  slidekit sticky -f deck.pptx --text "Check numbers" --fill "#FFC7CE"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, slide, err := openSlide()
		if err != nil {
			return err
		}
		defer d.Close()

		opts := stickyOptions()
		ref, err := slide.InsertStickyNote(stickyText, opts)
		if err != nil {
			return err
		}
		if err := saveDeck(d); err != nil {
			return err
		}
		notifier.Infof("added %q (id %d) at %s on slide %d", ref.Name(), ref.ID(), ref.Frame(), slide.Number())
		return nil
	},
}

// stickyOptions merges flag values over the configured defaults.
func stickyOptions() slidekit.StickyNoteOptions {
	opts := slidekit.StickyNoteOptions{
		Fill:   slidekit.NewColor(cfg.Sticky.Fill),
		Width:  slidekit.Inch(cfg.Sticky.WidthIn),
		Height: slidekit.Inch(cfg.Sticky.HeightIn),
	}
	if stickyFill != "" {
		opts.Fill = slidekit.NewColor(stickyFill)
	}
	if stickyWidth > 0 {
		opts.Width = slidekit.Inch(stickyWidth)
	}
	if stickyHeight > 0 {
		opts.Height = slidekit.Inch(stickyHeight)
	}
	return opts
}
