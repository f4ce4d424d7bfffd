package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gifscii",
	Short: "Convert GIFs and images to character art",
	Long: `gifscii turns GIFs and static images into character-cell art:
ASCII ramps, Unicode blocks or braille, with optional per-cell ANSI color.

Animated GIFs are recomposited frame by frame (disposal methods
respected) before conversion, so partial-update GIFs come out right.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"gifscii %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[gifscii] "+format+"\n", args...)
	}
}
