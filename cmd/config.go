package cmd

import (
	"fmt"

	"github.com/samzong/vmc/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Show vmc configuration",
		Long: `Show the effective vmc configuration.

Values come from built-in defaults, the config file and VMC_* environment
variables (for example VMC_MODEL or VMC_PROVIDER). The file is never written
by vmc; edit it by hand.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow()
		},
	}

	configModelsCmd = &cobra.Command{
		Use:   "models",
		Short: "List suggested model identifiers",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(outWriter(), "Suggested models (any identifier your provider accepts works):")
			for _, m := range config.GetSuggestedModels() {
				fmt.Fprintf(outWriter(), "- %s\n", m)
			}
		},
	}
)

func init() {
	configCmd.AddCommand(configModelsCmd)
}

func runConfigShow() error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	if path := config.ConfigFileUsed(); path != "" {
		fmt.Fprintf(outWriter(), "# config file: %s\n", path)
	} else {
		fmt.Fprintln(outWriter(), "# config file: <none>")
	}

	enc := yaml.NewEncoder(outWriter())
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Masked()); err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	return enc.Close()
}
