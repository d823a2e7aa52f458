package cmd

import (
	"github.com/spf13/cobra"

	"github.com/funscript-tools/fsdiff/internal/funscript"
	"github.com/funscript-tools/fsdiff/internal/inspect"
	"github.com/funscript-tools/fsdiff/pkg/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarize a script and its rate signal",
	Long: `Print statistics about a funscript: action count, time span, position range
and the range of the rate signal fsdiff derives from it.

Use - to read the script from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := funscript.Load(args[0])
		if err != nil {
			return err
		}

		summary, err := inspect.Summarize(script)
		if err != nil {
			return err
		}

		return output.Render(cmd.OutOrStdout(), outputFormat, summary)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
