package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	slidekit "github.com/VantageDataChat/GoSlideKit"
)

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the deck's theme color palette",
	Long:  "Theme resolves and prints the 12 scheme color slots of the deck's active theme.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck()
		if err != nil {
			return err
		}
		defer d.Close()

		palette, err := d.Palette()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "scheme: %s\n", palette.SchemeName())
		headers := []string{"SLOT", "NAME", "COLOR"}
		rows := make([][]string, 0, 12)
		for slot := slidekit.SlotDark1; slot <= slidekit.SlotFollowedHyperlink; slot++ {
			color, err := palette.Resolve(slot)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				strconv.Itoa(int(slot)),
				slot.String(),
				"#" + color.RGB(),
			})
		}
		return writeTable(os.Stdout, headers, rows)
	},
}
