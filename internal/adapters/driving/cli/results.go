package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	resultsJSON    bool
	resultsFilters reportFilterFlags
)

var resultsCmd = &cobra.Command{
	Use:   "results [run...]",
	Short: "List the reports of runs",
	Long: `Lists every report of the given runs. Runs are given by ID or exact
name. Results are fetched page by page until the server has no more.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResults,
}

var resultsCountCmd = &cobra.Command{
	Use:   "count [run...]",
	Short: "Count the reports of runs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResultsCount,
}

func init() {
	resultsCmd.Flags().BoolVar(&resultsJSON, "json", false, "output as JSON")
	resultsFilters.register(resultsCmd)
	resultsCountCmd.Flags().StringSliceVar(&resultsFilters.severities, "severity", nil, "filter by severity")
	resultsCountCmd.Flags().StringSliceVar(&resultsFilters.reviews, "review-status", nil, "filter by review status")
	resultsCmd.AddCommand(resultsCountCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	if resultsService == nil {
		if err := requireReportService(cmd); err != nil {
			return err
		}
	}
	if resultsService == nil {
		return errors.New("results service not configured")
	}

	filter, err := resultsFilters.build()
	if err != nil {
		return err
	}
	runIDs, err := resolveRunIDs(cmd.Context(), args)
	if err != nil {
		return err
	}

	reports, err := resultsService.AllRunResults(cmd.Context(), runIDs, filter, nil)
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}

	if resultsJSON {
		return printJSON(cmd, reports)
	}
	return outputReportTable(cmd, reports)
}

func outputReportTable(cmd *cobra.Command, reports []domain.ReportData) error {
	if len(reports) == 0 {
		cmd.Println("No reports found.")
		return nil
	}

	for i := range reports {
		r := &reports[i]
		cmd.Printf("  [%d] %s %s: %s [%s]\n",
			r.ReportID, severityLabel(r.Severity), formatLocation(*r), r.CheckerMsg, r.CheckerID)
		cmd.Printf("      %s  %s  %s\n",
			reviewLabel(r.ReviewData.Status), r.DetectionStatus, mutedStyle.Render(r.BugHash))
	}
	cmd.Printf("\n%d reports\n", len(reports))
	return nil
}

func runResultsCount(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	filter, err := resultsFilters.build()
	if err != nil {
		return err
	}
	runIDs, err := resolveRunIDs(cmd.Context(), args)
	if err != nil {
		return err
	}

	count, err := reportService.GetRunResultCount(cmd.Context(), runIDs, filter, nil)
	if err != nil {
		return fmt.Errorf("count results: %w", err)
	}
	cmd.Println(count)
	return nil
}
