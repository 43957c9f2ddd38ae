package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MeKo-Tech/hocrkit/internal/builders"
	"github.com/MeKo-Tech/hocrkit/internal/config"
	"github.com/MeKo-Tech/hocrkit/internal/hocr"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse OCR engine output into structured results",
	Long: `Parse one or more OCR engine output documents with the selected builder.

The word and line builders read Tesseract-style hOCR and fall back to the
Cuneiform character-position dialect when the former yields nothing. The
char builder reads tesseract makebox files, the text builder plain text.

With --probe each argument is treated as the base name the engine was
invoked with, and the builder's preferred output extensions are tried in
order (e.g. page.html, then page.hocr).

Examples:
  hocrkit parse page.hocr --builder word --format json
  hocrkit parse page --probe --builder line --format csv
  hocrkit parse page.txt --builder text --format text`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input files provided")
		}

		cfg := GetConfig()
		kind := flagOr(cmd, "builder", cfg.Builder.Kind)
		format := flagOr(cmd, "format", cfg.Output.Format)
		outputFile := flagOr(cmd, "output", cfg.Output.File)
		probe, _ := cmd.Flags().GetBool("probe")

		cfg.Builder.Kind = kind
		cfg.Output.Format = format
		if err := cfg.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		for _, arg := range args {
			path := arg
			if probe {
				b, err := cfg.NewBuilder()
				if err != nil {
					return err
				}
				path, err = probeOutputFile(arg, b.Extensions())
				if err != nil {
					return err
				}
			}
			result, err := parseFile(cfg, path)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if _, err := fmt.Fprintln(out, result); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("builder", "b", "", "builder kind (text, word, line, char)")
	parseCmd.Flags().StringP("format", "f", "", "output format (text, json, csv)")
	parseCmd.Flags().StringP("output", "o", "", "write results to file instead of stdout")
	parseCmd.Flags().Bool("probe", false,
		"treat arguments as engine output base names and probe the builder's extensions")
}

// flagOr returns the flag's value when it was set on the command line, and
// the configured fallback otherwise.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

// probeOutputFile tries base.<ext> for each extension in order and returns
// the first file that exists; this mirrors how an engine collaborator
// locates the document its process produced.
func probeOutputFile(base string, exts []string) (string, error) {
	for _, ext := range exts {
		candidate := base + "." + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q (tried extensions: %s)",
		builders.ErrNoOutput, base, strings.Join(exts, ", "))
}

func parseFile(cfg *config.Config, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	return parseDocument(cfg, f)
}

// parseDocument runs the configured builder's batch read over r and
// renders the result in the configured output format.
func parseDocument(cfg *config.Config, r io.Reader) (string, error) {
	opts := cfg.BuilderOptions()
	format := cfg.Output.Format

	switch cfg.Builder.Kind {
	case builders.KindText:
		text, err := builders.NewTextBuilder(opts...).Read(r)
		if err != nil {
			return "", err
		}
		return formatText(text, format)
	case builders.KindWord:
		boxes, err := builders.NewWordBoxBuilder(opts...).Read(r)
		if err != nil {
			return "", err
		}
		return formatWords(boxes, format)
	case builders.KindLine:
		lines, err := builders.NewLineBoxBuilder(opts...).Read(r)
		if err != nil {
			return "", err
		}
		return formatLines(lines, format)
	case builders.KindChar:
		boxes, err := builders.NewCharBoxBuilder(opts...).Read(r)
		if err != nil {
			return "", err
		}
		return formatWords(boxes, format)
	default:
		return "", fmt.Errorf("unknown builder kind: %q", cfg.Builder.Kind)
	}
}

func formatText(text, format string) (string, error) {
	switch format {
	case config.FormatText:
		return text, nil
	case config.FormatJSON:
		b, err := json.MarshalIndent(struct {
			Text string `json:"text"`
		}{Text: text}, "", "  ")
		return string(b), err
	default:
		return "", fmt.Errorf("format %q is not supported for text output", format)
	}
}

func formatWords(boxes []hocr.Box, format string) (string, error) {
	switch format {
	case config.FormatText:
		lines := make([]string, 0, len(boxes))
		for _, b := range boxes {
			lines = append(lines, b.String())
		}
		return strings.Join(lines, "\n"), nil
	case config.FormatJSON:
		b, err := hocr.WordsToJSON(boxes)
		return string(b), err
	case config.FormatCSV:
		return hocr.WordsToCSV(boxes)
	default:
		return "", fmt.Errorf("invalid output format: %q", format)
	}
}

func formatLines(lines []hocr.LineBox, format string) (string, error) {
	switch format {
	case config.FormatText:
		contents := make([]string, 0, len(lines))
		for _, l := range lines {
			contents = append(contents, l.Content())
		}
		return strings.Join(contents, "\n"), nil
	case config.FormatJSON:
		b, err := hocr.LinesToJSON(lines)
		return string(b), err
	case config.FormatCSV:
		return hocr.LinesToCSV(lines)
	default:
		return "", fmt.Errorf("invalid output format: %q", format)
	}
}
