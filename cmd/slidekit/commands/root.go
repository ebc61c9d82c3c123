package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	slidekit "github.com/VantageDataChat/GoSlideKit"
	"github.com/VantageDataChat/GoSlideKit/internal/config"
	"github.com/VantageDataChat/GoSlideKit/internal/logging"
	"github.com/VantageDataChat/GoSlideKit/internal/notify"
)

var (
	// persistent flags
	cfgFile  string
	deckFile string
	outFile  string
	slideNum int
	verbose  bool

	cfg      *config.Config
	logger   zerolog.Logger
	notifier notify.Notifier
)

var rootCmd = &cobra.Command{
	Use:     "slidekit",
	Short:   "Arrange shapes in PowerPoint presentations",
	Version: slidekit.Version,
	Long: `slidekit applies shape-arrangement commands to existing .pptx decks:
swap two shapes' positions, match dimensions across a selection, recolor
bold text, and drop sticky notes onto a slide.

Edits are made in place inside the package; everything a command does not
touch is preserved byte-for-byte.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logging.Setup(level, logging.Format(cfg.Log.Format), os.Stderr)
		logger = logging.Component("cli")
		notifier = notify.NewLogNotifier(logger)
		return nil
	},
}

// Execute runs the CLI and returns the outcome severity; main exits
// non-zero on SeverityBlocking. Blocking errors have already been
// reported to the user when it returns.
func Execute() notify.Severity {
	err := rootCmd.Execute()
	sev := notify.Classify(err)
	if sev != notify.SeverityBlocking {
		return sev
	}
	if notifier == nil {
		// flag or config failure before the notifier was wired
		fmt.Fprintln(os.Stderr, "slidekit:", err)
		return sev
	}
	if !notify.UserFacing(err) {
		// not fixable by adjusting the command; keep the full chain
		// on the debug channel for --verbose runs
		logger.Debug().Err(err).Msg("command failed")
	}
	notifier.Blockingf("%v", err)
	return sev
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.slidekit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&deckFile, "file", "f", "", "presentation file (.pptx)")
	rootCmd.PersistentFlags().StringVarP(&outFile, "output", "o", "", "write the result here instead of editing in place")
	rootCmd.PersistentFlags().IntVar(&slideNum, "slide", 1, "slide number to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
