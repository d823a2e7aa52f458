package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funscript-tools/fsdiff/internal/config"
	"github.com/funscript-tools/fsdiff/pkg/output"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  "Create and display the fsdiff configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		c := config.Default()
		c.SetPath(path)
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		output.Success(cmd.OutOrStdout(), "Wrote %s", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := outputFormat
		if format == output.FormatTable {
			format = output.FormatYAML
		}
		return output.Render(cmd.OutOrStdout(), format, cfg)
	},
}

var configPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the command presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Render(cmd.OutOrStdout(), outputFormat, presetList{cfg: cfg})
	},
}

// presetList renders the configured presets. JSON and YAML output is the
// plain name to commands map.
type presetList struct {
	cfg *config.Config
}

func (p presetList) Table() *output.Table {
	t := output.NewTable([]string{"PRESET", "COMMANDS"})
	for _, name := range p.cfg.PresetNames() {
		t.AddRow([]string{name, strings.Join(p.cfg.Presets[name], " ")})
	}
	return t
}

func (p presetList) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.cfg.Presets)
}

func (p presetList) MarshalYAML() (interface{}, error) {
	return p.cfg.Presets, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPresetsCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
}
