package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samzong/vmc/internal/cmdexec"
	"github.com/samzong/vmc/internal/config"
	"github.com/samzong/vmc/internal/llm"
	"github.com/samzong/vmc/internal/vcs"
	"github.com/samzong/vmc/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	toolName   string
	modelName  string
	commitMode bool
	editMode   bool
	verbose    bool
	configErr  error
	rootCmd    = &cobra.Command{
		Use:   "vmc",
		Short: "vmc - VCS Message Assistant",
		Long: `vmc generates a Conventional Commit message for your pending changes ` +
			`using an LLM, for jj and git repositories.

jj repositories describe the working copy; git repositories describe the staged index.
By default the message is printed to stdout. Use --commit to record it, or --edit to
review it in the backend's editor first.

Examples:
  vmc                    # print a message for the pending changes
  vmc -c                 # generate and commit
  vmc -e --tool git      # generate, then edit in git's commit editor
  vmc -m claude-3.5-sonnet`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return runGenerate(cmd.Context())
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// newTools and newGenerator are replaced in tests.
var (
	newTools = func(verbose bool, logger io.Writer) vcs.Tools {
		return vcs.Tools{
			JJ:  cmdexec.Runner{Name: "jj", Verbose: verbose, Logger: logger},
			Git: cmdexec.Runner{Name: "git", Verbose: verbose, Logger: logger},
		}
	}
	newGenerator = func(cfg *config.Config, verbose bool, logger io.Writer) (workflow.Generator, error) {
		service, err := llm.NewService(llm.Options{
			Provider: cfg.Provider,
			Command:  cfg.LLMCommand,
			APIKey:   cfg.APIKey,
			APIBase:  cfg.APIBase,
			Timeout:  time.Duration(cfg.Timeout) * time.Second,
			Verbose:  verbose,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}
		return llm.NewClient(service), nil
	}
)

func Execute() error {
	return rootCmd.Execute()
}

// SetContext sets the context used by command execution.
func SetContext(ctx context.Context) {
	rootCmd.SetContext(ctx)
}

// RootCmd exposes the command tree for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/vmc/config.yaml)")
	rootCmd.Flags().StringVar(&toolName, "tool", "",
		"Backend to use: "+strings.Join(vcs.ToolNames(), " or ")+" (default: jj if available, else git)")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "", "Model identifier (default from config: "+config.DefaultModel+")")
	rootCmd.Flags().BoolVarP(&commitMode, "commit", "c", false, "Commit with the generated message")
	rootCmd.Flags().BoolVarP(&editMode, "edit", "e", false, "Review the generated message in the backend's editor before recording it")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show every external command that runs")
	rootCmd.MarkFlagsMutuallyExclusive("commit", "edit")

	_ = rootCmd.RegisterFlagCompletionFunc("tool", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return vcs.ToolNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("model", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.GetSuggestedModels(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func resolveMode() vcs.Mode {
	switch {
	case commitMode:
		return vcs.ModeCommit
	case editMode:
		return vcs.ModeEdit
	default:
		return vcs.ModePrint
	}
}

func runGenerate(ctx context.Context) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	tool := toolName
	if tool == "" {
		tool = cfg.Tool
	}
	explicit, err := vcs.ParseKind(tool)
	if err != nil {
		return err
	}

	model := modelName
	if model == "" {
		model = cfg.Model
	}

	backend, err := vcs.Detect(ctx, newTools(verbose, errWriter()), explicit)
	if err != nil {
		return err
	}
	fmt.Fprintf(errWriter(), "Using %s backend\n", backend.Kind())

	gen, err := newGenerator(cfg, verbose, errWriter())
	if err != nil {
		return err
	}

	flow := workflow.NewFlow(backend, gen, workflow.Options{
		Model:     model,
		Mode:      resolveMode(),
		Stdin:     inReader(),
		OutWriter: outWriter(),
		ErrWriter: errWriter(),
	})
	return flow.Run(ctx)
}
