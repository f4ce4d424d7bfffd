package cmd

import (
	"fmt"

	"github.com/AnyUserName/gifscii-cli/internal/charset"
	"github.com/spf13/cobra"
)

var charsetsCmd = &cobra.Command{
	Use:   "charsets",
	Short: "List available character sets",
	RunE:  runCharsets,
}

func init() {
	rootCmd.AddCommand(charsetsCmd)
}

func runCharsets(_ *cobra.Command, _ []string) error {
	for _, name := range charset.Names() {
		cs, err := charset.Lookup(name)
		if err != nil {
			return err
		}
		if cs.Braille {
			fmt.Printf("  %-10s 2x4 dot cells (256 glyphs, U+2800..U+28FF)\n", cs.Name)
			continue
		}
		fmt.Printf("  %-10s %d levels  %q\n", cs.Name, cs.Levels(), string(cs.Runes))
	}
	return nil
}
