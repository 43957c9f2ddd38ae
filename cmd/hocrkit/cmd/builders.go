package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MeKo-Tech/hocrkit/internal/builders"
	"github.com/MeKo-Tech/hocrkit/internal/config"
	"github.com/spf13/cobra"
)

// builderInfo is the serializable description of one builder's advertised
// engine parameters.
type builderInfo struct {
	Kind             string   `json:"kind"`
	Name             string   `json:"name"`
	Extensions       []string `json:"extensions"`
	TesseractFlags   []string `json:"tesseract_flags"`
	TesseractConfigs []string `json:"tesseract_configs"`
	CuneiformArgs    []string `json:"cuneiform_args"`
	Capabilities     []string `json:"required_capabilities,omitempty"`
}

// buildersCmd represents the builders command.
var buildersCmd = &cobra.Command{
	Use:   "builders",
	Short: "Show the engine parameters each builder advertises",
	Long: `List every builder together with the invocation parameters it advertises
to the OCR engine: output file extensions to probe (in preference order),
tesseract flags and configuration tokens, cuneiform arguments, and the
engine capabilities the configuration requires.

Global builder options (--digits, layout, psm flag spelling) from the
configuration are applied before listing.

Examples:
  hocrkit builders
  hocrkit builders --format json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		format := flagOr(cmd, "format", config.FormatText)

		infos := make([]builderInfo, 0, len(builders.Kinds()))
		for _, kind := range builders.Kinds() {
			b, err := builders.New(kind, cfg.BuilderOptions()...)
			if err != nil {
				return err
			}
			info := builderInfo{
				Kind:             kind,
				Name:             b.Name(),
				Extensions:       b.Extensions(),
				TesseractFlags:   b.TesseractFlags(),
				TesseractConfigs: b.TesseractConfigs(),
				CuneiformArgs:    b.CuneiformArgs(),
			}
			for _, c := range b.RequiredCapabilities() {
				info.Capabilities = append(info.Capabilities, string(c))
			}
			infos = append(infos, info)
		}

		out := cmd.OutOrStdout()
		if format == config.FormatJSON {
			data, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		for _, info := range infos {
			_, _ = fmt.Fprintf(out, "%s (%s)\n", info.Kind, info.Name)
			_, _ = fmt.Fprintf(out, "  extensions:        %s\n", strings.Join(info.Extensions, ", "))
			_, _ = fmt.Fprintf(out, "  tesseract flags:   %s\n", strings.Join(info.TesseractFlags, " "))
			_, _ = fmt.Fprintf(out, "  tesseract configs: %s\n", strings.Join(info.TesseractConfigs, " "))
			_, _ = fmt.Fprintf(out, "  cuneiform args:    %s\n", strings.Join(info.CuneiformArgs, " "))
			if len(info.Capabilities) > 0 {
				_, _ = fmt.Fprintf(out, "  requires:          %s\n", strings.Join(info.Capabilities, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildersCmd)

	buildersCmd.Flags().StringP("format", "f", "", "output format (text, json)")
}
