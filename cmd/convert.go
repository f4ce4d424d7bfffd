package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/gifscii-cli/internal/gifseq"
	"github.com/AnyUserName/gifscii-cli/internal/media"
	"github.com/AnyUserName/gifscii-cli/internal/pipeline"
	"github.com/AnyUserName/gifscii-cli/internal/render"
	"github.com/AnyUserName/gifscii-cli/internal/term"
	"github.com/spf13/cobra"
)

var (
	convertOutput     string
	convertFormat     string
	convertCharset    string
	convertColor      string
	convertDither     bool
	convertBrightness int
	convertContrast   int
	convertInvert     bool
	convertWidth      int
	convertHeight     int
	convertWorkers    int
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a GIF or image to character art",
	Long: `Decodes the input (gif, png, jpeg, webp, bmp, tiff), composites
animated GIF frames onto a logical canvas, and converts every frame to a
character grid with optional per-cell color.

Output formats: text (plain lines), ansi (colored, for terminals),
json (structured document with lines, colors and delays).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "out", "o", "", "output file (default: stdout)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "output format: text, ansi, json (default: by extension, else ansi)")
	convertCmd.Flags().StringVar(&convertCharset, "charset", "simple", "character set: simple, detailed, blocks, braille")
	convertCmd.Flags().StringVar(&convertColor, "color", "truecolor", "color mode: none, indexed, truecolor")
	convertCmd.Flags().BoolVar(&convertDither, "dither", false, "enable Floyd-Steinberg dithering")
	convertCmd.Flags().IntVar(&convertBrightness, "brightness", 0, "brightness adjustment, -100 to 100")
	convertCmd.Flags().IntVar(&convertContrast, "contrast", 100, "contrast adjustment, 0 to 200 (100 = neutral)")
	convertCmd.Flags().BoolVar(&convertInvert, "invert", false, "invert luminance (and sampled colors)")
	convertCmd.Flags().IntVarP(&convertWidth, "width", "W", 80, "output width in character cells")
	convertCmd.Flags().IntVarP(&convertHeight, "height", "H", 24, "output height in character cells")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	settings := pipeline.Settings{
		Charset:    convertCharset,
		ColorMode:  term.Mode(convertColor),
		Dither:     convertDither,
		Brightness: convertBrightness,
		Contrast:   convertContrast,
		Invert:     convertInvert,
		Width:      convertWidth,
		Height:     convertHeight,
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	m, err := media.Load(input)
	if err != nil {
		return err
	}
	logVerbose("input:  %s (%s, %d frames, %dx%d px)",
		input, m.Format, len(m.Frames), m.W, m.H)

	frames, err := gifseq.Composite(m.Frames, m.W, m.H)
	if err != nil {
		return fmt.Errorf("composite: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	processed, err := pipeline.New(settings, convertWorkers).Run(ctx, frames)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	doc := render.NewDocument(filepath.Base(input), settings, processed)
	r, err := render.Lookup(resolveFormat())
	if err != nil {
		return err
	}

	if convertOutput == "" {
		if err := r.Render(os.Stdout, doc); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		f, err := os.Create(convertOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := r.Render(f, doc); err != nil {
			f.Close()
			return fmt.Errorf("render: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logVerbose("wrote %s (%s)", convertOutput, r.Format())
	}

	logVerbose("converted %d frames (%d ms of animation) in %s",
		doc.Stats.FrameCount, doc.Stats.TotalDurationMS,
		time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveFormat picks the renderer: explicit --format wins, then the
// output file extension, then ansi for terminals.
func resolveFormat() string {
	if convertFormat != "" {
		return convertFormat
	}
	switch strings.ToLower(filepath.Ext(convertOutput)) {
	case ".json":
		return "json"
	case ".txt":
		return "text"
	}
	if convertOutput != "" {
		return "text"
	}
	return "ansi"
}
