package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/qa/scenarios"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios <file>",
	Short: "Evaluate range scenarios from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	sc, err := scenarios.Load(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	results, err := scenarios.Evaluate(sc)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.Pass {
			status = "FAIL"
			failed++
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-30s %4d km (%d mi) [%d-%d] %s\n",
			r.Name, r.Estimate.RangeKm, r.Estimate.RangeMiles, r.Expected.MinKm, r.Expected.MaxKm, status); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases out of band", failed, len(results))
	}
	return nil
}
