package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	slidekit "github.com/VantageDataChat/GoSlideKit"
)

var inspectAll bool

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectAll, "all", false, "list shapes of every slide, not just --slide")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List slides and shapes",
	Long:  "Inspect prints the shapes of a slide (or of every slide with --all) with their ids, names, kinds, and frames.",
	Example: `  slidekit inspect -f deck.pptx --slide 2

  slidekit inspect -f deck.pptx --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck()
		if err != nil {
			return err
		}
		defer d.Close()

		cx, cy := d.SlideSize()
		fmt.Fprintf(os.Stdout, "%s: %d slide(s), %s x %s\n", deckFile, d.SlideCount(), cx, cy)

		first, last := slideNum, slideNum
		if inspectAll {
			first, last = 1, d.SlideCount()
		}
		for num := first; num <= last; num++ {
			slide, err := d.Slide(num)
			if err != nil {
				return err
			}
			if err := printSlide(slide); err != nil {
				return err
			}
		}
		return nil
	},
}

func printSlide(slide *slidekit.SlidePart) error {
	fmt.Fprintf(os.Stdout, "\nslide %d (%s)\n", slide.Number(), slide.PartName())
	headers := []string{"ID", "NAME", "KIND", "FRAME", "MOVABLE", "BOLD RUNS"}
	rows := make([][]string, 0, len(slide.Shapes()))
	for _, sh := range slide.Shapes() {
		frame := "(inherited)"
		if sh.Positionable() {
			frame = sh.Frame().String()
		}
		rows = append(rows, []string{
			strconv.Itoa(sh.ID()),
			sh.Name(),
			string(sh.Kind()),
			frame,
			formatYesNo(sh.Positionable()),
			strconv.Itoa(sh.BoldRunCount()),
		})
	}
	return writeTable(os.Stdout, headers, rows)
}
