package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	diffType    string
	diffJSON    bool
	diffFilters reportFilterFlags
)

var diffCmd = &cobra.Command{
	Use:   "diff [base-run] [new-run]",
	Short: "Compare the reports of two runs",
	Long: `Compares two runs by bug hash:
  new         reports only in the new run
  resolved    reports only in the base run
  unresolved  reports in both runs`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffType, "type", "new", "new, resolved or unresolved")
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "output as JSON")
	diffFilters.register(diffCmd)
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	dt, err := domain.ParseDiffType(diffType)
	if err != nil {
		return err
	}
	filter, err := diffFilters.build()
	if err != nil {
		return err
	}
	if err := requireReportService(cmd); err != nil {
		return err
	}
	if resultsService == nil {
		return errors.New("results service not configured")
	}

	baseID, err := resolveRunID(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	newID, err := resolveRunID(cmd.Context(), args[1])
	if err != nil {
		return err
	}

	cmp := &domain.CompareData{RunIDs: []int64{newID}, DiffType: dt}
	reports, err := resultsService.AllRunResults(cmd.Context(), []int64{baseID}, filter, cmp)
	if err != nil {
		return fmt.Errorf("diff runs: %w", err)
	}

	if diffJSON {
		return printJSON(cmd, reports)
	}
	cmd.Println(header(fmt.Sprintf("%s reports between run %d and run %d", dt, baseID, newID)))
	return outputReportTable(cmd, reports)
}
