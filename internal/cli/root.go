package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tacogips/liscaf/internal/config"
	"github.com/tacogips/liscaf/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// loadedConfig is set by PersistentPreRunE.
var loadedConfig = config.DefaultConfig()

// rootCmd represents the base command; it runs a scaffold.
var rootCmd = &cobra.Command{
	Use:   "liscaf [flags] <new-name> [repo-url]",
	Short: "Scaffold a new project from a template repository",
	Long: `liscaf clones a template repository and replaces every naming variant of
the template's project name with the new name, in file contents and in file
and directory names.

The template name (--base, default "acme-app") is expanded into kebab-case,
snake_case, UPPER_SNAKE, lowerconcat, UPPERCONCAT, camelCase, PascalCase and
Pascal_Underscore forms, each mapped to the same form of the new name.

The result becomes a fresh repository in ./<new-name> (or
./<new-name>_from_template when taken), or with --into is merged into an
existing directory. Divergent text files receive conflict markers; divergent
binary files keep the existing bytes and get .liscaf-incoming and
.liscaf-conflict sidecars.

Repository formats:
  - Full URL: https://github.com/owner/repo, ssh://git@host/owner/repo
  - SCP-style: git@github.com:owner/repo.git
  - Short form: github.com/owner/repo or owner/repo
  - Local path: ./my-template, /abs/path, file:///abs/path

Examples:
  liscaf shiny-app owner/acme-template
  liscaf shiny-app owner/acme-template --dry-run
  liscaf shiny-app owner/acme-template --into ../existing-app --yes
  liscaf shiny-app --manifest https://example.com/templates.txt
  liscaf shiny-app ./templates/acme --base acme-app --strategy confluent`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)

		cfg, err := loadConfig(globalConfig, cmd.Flags().Changed(FlagConfig))
		if err != nil {
			return err
		}
		loadedConfig = cfg
		debug.DebugYAML("[cli] Configuration", cfg)
		return nil
	},
	RunE: runScaffold,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if errors.Is(err, errAborted) {
		fmt.Println("Aborted by user.")
		return
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig+" (default ~/.config/liscaf/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file. An explicit --config must exist; the
// default location is optional.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	loader := config.NewLoader()
	if explicit {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		return loader.Load(expanded)
	}
	return loader.LoadOrDefault(config.DefaultConfigPath())
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
