package cmd

import (
	"github.com/spf13/cobra"

	"github.com/funscript-tools/fsdiff/internal/funscript"
	"github.com/funscript-tools/fsdiff/internal/generator"
	"github.com/funscript-tools/fsdiff/pkg/output"
)

var (
	generateOutput string
	generatePretty bool
	generateOpts   = generator.DefaultOptions()
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic funscript",
	Long: `Generate a funscript of alternating strokes with randomized metadata.

Useful as a fixture for trying out command chains.

Examples:
  fsdiff generate -o sample.funscript
  fsdiff generate -o - --count 20 --seed 42 --typed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := generator.Generate(generateOpts)
		if err != nil {
			return err
		}

		if err := funscript.Save(generateOutput, script, generatePretty); err != nil {
			return err
		}

		if generateOutput != funscript.StdStream {
			output.Success(cmd.OutOrStdout(), "Generated %d actions in %s", len(script.Actions), generateOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := generator.DefaultOptions()
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "destination to write to (- for stdout)")
	generateCmd.Flags().BoolVarP(&generatePretty, "pretty", "p", false, "pretty-print the output JSON")
	generateCmd.Flags().IntVar(&generateOpts.Count, "count", defaults.Count, "number of actions")
	generateCmd.Flags().Int64Var(&generateOpts.Interval, "interval", defaults.Interval, "mean spacing between actions in milliseconds")
	generateCmd.Flags().Float64Var(&generateOpts.Jitter, "jitter", defaults.Jitter, "fraction of the interval each timestamp may deviate by")
	generateCmd.Flags().Int64Var(&generateOpts.Seed, "seed", 0, "random seed (0 picks one)")
	generateCmd.Flags().BoolVar(&generateOpts.Typed, "typed", false, "attach type tags to actions")
	_ = generateCmd.MarkFlagRequired("output")
}
