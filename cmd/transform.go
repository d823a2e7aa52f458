package cmd

import (
	"github.com/spf13/cobra"

	"github.com/funscript-tools/fsdiff/internal/funscript"
	"github.com/funscript-tools/fsdiff/internal/runner"
	"github.com/funscript-tools/fsdiff/pkg/output"
)

var (
	transformInput       string
	transformOutput      string
	transformPretty      bool
	transformPreset      string
	transformMetricsFile string
)

var transformCmd = &cobra.Command{
	Use:   "transform [commands...]",
	Short: "Derive the rate signal of a script and reshape it",
	Long: `Derive the rate signal of a funscript, apply a chain of operations to it and
write the result as a funscript.

Commands are applied in the order given and may repeat:
  normalize            Normalize the signal to the range 0-100
  scale-linear <num>   Multiply every value by a factor
  scale-sqrt           Take the square root of every value
  shorten <num>        Drop points that differ from the previous point by less than num

Flags must come before the first command, so negative parameters need no escaping.
Use - as input or output to read stdin or write stdout.

Examples:
  fsdiff transform -i in.funscript -o out.funscript normalize shorten 5
  fsdiff transform -i in.funscript -o out.funscript scale-linear -1 normalize
  fsdiff transform -i in.funscript -o - --preset smooth`,
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().SetInterspersed(false)
	transformCmd.Flags().StringVarP(&transformInput, "input", "i", "", "input funscript file (- for stdin)")
	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "destination to write to (- for stdout)")
	transformCmd.Flags().BoolVarP(&transformPretty, "pretty", "p", false, "pretty-print the output JSON (default: from config)")
	transformCmd.Flags().StringVar(&transformPreset, "preset", "", "run a named command list from the config before the given commands")
	transformCmd.Flags().StringVar(&transformMetricsFile, "metrics-file", "", "write Prometheus metrics for the run to this textfile")
	_ = transformCmd.MarkFlagRequired("input")
	_ = transformCmd.MarkFlagRequired("output")
}

func runTransform(cmd *cobra.Command, args []string) error {
	tokens := args
	if transformPreset != "" {
		preset, err := cfg.Preset(transformPreset)
		if err != nil {
			return err
		}
		tokens = runner.ResolveTokens(preset, args)
	}

	pretty := cfg.Output.Pretty
	if cmd.Flags().Changed("pretty") {
		pretty = transformPretty
	}
	metricsFile := cfg.MetricsFile
	if cmd.Flags().Changed("metrics-file") {
		metricsFile = transformMetricsFile
	}

	res, err := runner.New(newLogger(cmd.ErrOrStderr())).Run(runner.Request{
		Input:       transformInput,
		Output:      transformOutput,
		Pretty:      pretty,
		Tokens:      tokens,
		MetricsFile: metricsFile,
	})
	if err != nil {
		return err
	}

	if transformOutput != funscript.StdStream {
		output.Success(cmd.OutOrStdout(), "Wrote %s (%s)", transformOutput, res)
	}
	return nil
}
