package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/liscaf/internal/naming"
)

// variantsCmd prints the mapping set for two names.
var variantsCmd = &cobra.Command{
	Use:   "variants <old-name> <new-name>",
	Short: "Show the name variant mappings for two names",
	Long: `Print the tokens of both names and every old -> new variant pair that a
scaffold run would replace, in the order they are applied.

Examples:
  liscaf variants acme-app shiny-app
  liscaf variants AcmeApp shiny-app --apply "type AcmeApp struct{}"
  liscaf variants app my-app --apply app --strategy confluent`,
	Args: cobra.ExactArgs(2),
	RunE: runVariants,
}

// Variants command flags
var (
	variantsApply    string
	variantsStrategy string
)

func init() {
	variantsCmd.Flags().StringVar(&variantsApply, "apply", "", "Replace variants in this text and print the result")
	variantsCmd.Flags().StringVar(&variantsStrategy, FlagStrategy, "", DescStrategy)
}

func runVariants(cmd *cobra.Command, args []string) error {
	out := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), false, false,
		colorEnabled(globalNoColor, loadedConfig.Output.Color, fdOf(cmd.OutOrStdout())))

	oldTokens := naming.Tokenize(args[0])
	newTokens := naming.Tokenize(args[1])
	mappings := naming.Generate(oldTokens, newTokens)

	out.info(fmt.Sprintf("Old tokens: %v", []string(oldTokens)))
	out.info(fmt.Sprintf("New tokens: %v", []string(newTokens)))
	out.info(fmt.Sprintf("Generated %d variant mappings", len(mappings)))
	out.mappings(mappings)

	if !cmd.Flags().Changed("apply") {
		return nil
	}

	strategyName := loadedConfig.Replace.Strategy
	if variantsStrategy != "" {
		strategyName = variantsStrategy
	}
	strategy, err := naming.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	out.info("")
	out.info(fmt.Sprintf("Result (%s): %s", strategy, naming.NewReplacer(mappings, strategy).Replace(variantsApply)))
	return nil
}
