package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacogips/liscaf/internal/app"
	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/naming"
	"github.com/tacogips/liscaf/internal/source"
)

// Scaffold command flags
var (
	scaffoldDryRun   bool
	scaffoldYes      bool
	scaffoldBase     string
	scaffoldInto     string
	scaffoldOutput   string
	scaffoldManifest string
	scaffoldStrategy string
	scaffoldReport   string
)

func init() {
	rootCmd.Flags().BoolVar(&scaffoldDryRun, FlagDryRun, false, DescDryRun)
	rootCmd.Flags().BoolVarP(&scaffoldYes, FlagYes, "y", false, DescYes)
	rootCmd.Flags().StringVar(&scaffoldBase, FlagBase, "", DescBase)
	rootCmd.Flags().StringVar(&scaffoldInto, FlagInto, "", DescInto)
	rootCmd.Flags().StringVarP(&scaffoldOutput, FlagOutput, "o", ".", DescOutput)
	rootCmd.Flags().StringVar(&scaffoldManifest, FlagManifest, "", DescManifest)
	rootCmd.Flags().StringVar(&scaffoldStrategy, FlagStrategy, "", DescStrategy)
	rootCmd.Flags().StringVar(&scaffoldReport, FlagReport, "", DescReport)
}

// prompter is replaced in tests.
var prompter Prompter = surveyPrompter{}

// stdinInteractive is replaced in tests.
var stdinInteractive = func() bool { return isInteractive(os.Stdin.Fd()) }

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	out := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), globalQuiet, globalDebug,
		colorEnabled(globalNoColor, cfg.Output.Color, fdOf(cmd.OutOrStdout())))

	in := scaffoldInputs{
		NewName:      args[0],
		RepoURL:      cfg.Template.Repo,
		TemplateBase: cfg.Template.Base,
	}
	if len(args) > 1 {
		in.RepoURL = args[1]
	}
	if scaffoldBase != "" {
		in.TemplateBase = scaffoldBase
	}

	strategyName := cfg.Replace.Strategy
	if scaffoldStrategy != "" {
		strategyName = scaffoldStrategy
	}
	strategy, err := naming.ParseStrategy(strategyName)
	if err != nil {
		return app.NewValidationError("invalid --strategy", err)
	}

	manifestURL := scaffoldManifest
	if manifestURL == "" {
		manifestURL = cfg.Template.Manifest
	}
	var manifest manifestLoader
	if manifestURL != "" {
		manifest = func() ([]source.ManifestEntry, error) {
			return app.LoadManifest(cmd.Context(), manifestURL, cfg.HTTP.TimeoutDuration())
		}
	}

	interactive := !scaffoldYes && stdinInteractive()
	debug.DebugValue("[cli] Interactive", interactive)

	in, err = resolveInputs(prompter, in, interactive, manifest)
	if err != nil {
		return err
	}
	if interactive {
		if err := confirmProceed(prompter, in); err != nil {
			return err
		}
	}

	repoURL := source.NormalizeRepoURL(in.RepoURL)
	git := source.NewGitClient(cfg.Git.Binary, cfg.Git.Depth)

	result, err := app.Scaffold(cmd.Context(), app.ScaffoldOptions{
		NewName:       in.NewName,
		RepoURL:       repoURL,
		TemplateBase:  in.TemplateBase,
		Into:          scaffoldInto,
		OutputDir:     scaffoldOutput,
		DryRun:        scaffoldDryRun,
		Strategy:      strategy,
		CommitMessage: cfg.Git.CommitMessage,
		Cloner:        source.ClonerFor(repoURL, git),
		Initializer:   git,
		Sink:          out,
		Progress: func(msg string) {
			out.progress(msg)
		},
	})
	if err != nil {
		if result != nil && result.TempDir != "" {
			out.errorMsg("Scaffold kept at " + result.TempDir)
		}
		return err
	}

	if scaffoldReport != "" {
		if err := app.WriteReport(scaffoldReport, result, time.Now()); err != nil {
			return err
		}
		out.info(fmt.Sprintf("Report written to %s", scaffoldReport))
	}

	out.summary(result)
	return nil
}
