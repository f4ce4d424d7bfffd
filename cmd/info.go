package cmd

import (
	"fmt"

	"github.com/AnyUserName/gifscii-cli/internal/gifseq"
	"github.com/AnyUserName/gifscii-cli/internal/media"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show frame and canvas details for a media file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	m, err := media.Load(args[0])
	if err != nil {
		return err
	}

	var totalMS int
	disposals := map[gifseq.Disposal]int{}
	for _, f := range m.Frames {
		d := f.DelayMS
		if d <= 0 {
			d = gifseq.DefaultDelayMS
		}
		totalMS += d
		disposals[f.Disposal]++
	}

	fmt.Printf("  Format:   %s\n", m.Format)
	fmt.Printf("  Canvas:   %dx%d px\n", m.W, m.H)
	fmt.Printf("  Frames:   %d\n", len(m.Frames))
	fmt.Printf("  Duration: %d ms\n", totalMS)
	if len(m.Frames) > 1 {
		fmt.Printf("  Disposal: keep=%d background=%d previous=%d\n",
			disposals[gifseq.DisposalKeep],
			disposals[gifseq.DisposalBackground],
			disposals[gifseq.DisposalPrevious])
	}
	return nil
}
