package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MeKo-Tech/hocrkit/internal/builders"
	"github.com/MeKo-Tech/hocrkit/internal/hocr"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render [boxes.json]",
	Short: "Render parsed boxes back into a minimal hOCR document",
	Long: `Render a JSON document produced by "hocrkit parse --format json" back
into a simplified hOCR file.

The word builder emits a flat document of ocrx_word spans; the line builder
nests word spans inside ocr_line spans. The output is readable by the
Tesseract-dialect parser only; the character-position dialect cannot
round-trip it.

Examples:
  hocrkit render boxes.json --output page.hocr
  hocrkit render lines.json --builder line`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("exactly one input file is required")
		}

		cfg := GetConfig()
		kind := flagOr(cmd, "builder", cfg.Builder.Kind)
		outputFile := flagOr(cmd, "output", cfg.Output.File)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		out := io.Writer(cmd.OutOrStdout())
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		switch kind {
		case builders.KindWord, builders.KindChar:
			boxes, err := hocr.WordsFromJSON(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			return hocr.WriteWords(out, boxes)
		case builders.KindLine:
			lines, err := hocr.LinesFromJSON(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			return hocr.WriteLines(out, lines)
		default:
			return fmt.Errorf("builder kind %q cannot render hOCR (use word or line)", kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("builder", "b", "", "builder kind (word, line)")
	renderCmd.Flags().StringP("output", "o", "", "write the document to file instead of stdout")
}
