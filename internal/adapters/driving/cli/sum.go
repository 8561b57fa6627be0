package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	sumJSON     bool
	sumCheckers int64
	sumFilters  reportFilterFlags
)

var sumCmd = &cobra.Command{
	Use:   "sum [run...]",
	Short: "Summarise the reports of runs",
	Long:  `Prints report counts by severity, review status, detection status and checker.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSum,
}

func init() {
	sumCmd.Flags().BoolVar(&sumJSON, "json", false, "output as JSON")
	sumCmd.Flags().Int64Var(&sumCheckers, "checkers", 10, "number of checkers to list (0 = all)")
	sumFilters.register(sumCmd)
	rootCmd.AddCommand(sumCmd)
}

// summary is the JSON form of the sum command.
type summary struct {
	Total           int64                            `json:"total"`
	Severity        map[domain.Severity]int64        `json:"severity"`
	ReviewStatus    map[domain.ReviewStatus]int64    `json:"reviewStatus"`
	DetectionStatus map[domain.DetectionStatus]int64 `json:"detectionStatus"`
	Checkers        []domain.CheckerCount            `json:"checkers"`
}

func runSum(cmd *cobra.Command, args []string) error {
	filter, err := sumFilters.build()
	if err != nil {
		return err
	}
	if err := requireReportService(cmd); err != nil {
		return err
	}
	ctx := cmd.Context()

	runIDs, err := resolveRunIDs(ctx, args)
	if err != nil {
		return err
	}

	var s summary
	if s.Total, err = reportService.GetRunResultCount(ctx, runIDs, filter, nil); err != nil {
		return fmt.Errorf("count results: %w", err)
	}
	if s.Severity, err = reportService.GetSeverityCounts(ctx, runIDs, filter, nil); err != nil {
		return fmt.Errorf("severity counts: %w", err)
	}
	if s.ReviewStatus, err = reportService.GetReviewStatusCounts(ctx, runIDs, filter, nil); err != nil {
		return fmt.Errorf("review status counts: %w", err)
	}
	if s.DetectionStatus, err = reportService.GetDetectionStatusCounts(ctx, runIDs, filter, nil); err != nil {
		return fmt.Errorf("detection status counts: %w", err)
	}
	if s.Checkers, err = reportService.GetCheckerCounts(ctx, runIDs, filter, nil, sumCheckers, 0); err != nil {
		return fmt.Errorf("checker counts: %w", err)
	}

	if sumJSON {
		return printJSON(cmd, s)
	}

	cmd.Printf("%s %d\n", header("Total reports:"), s.Total)

	cmd.Println(header("Severity:"))
	severities := sortedKeys(s.Severity)
	for i := len(severities) - 1; i >= 0; i-- {
		cmd.Printf("  %-14s %d\n", severityLabel(severities[i]), s.Severity[severities[i]])
	}

	cmd.Println(header("Review status:"))
	for _, st := range sortedKeys(s.ReviewStatus) {
		cmd.Printf("  %-14s %d\n", reviewLabel(st), s.ReviewStatus[st])
	}

	cmd.Println(header("Detection status:"))
	for _, st := range sortedKeys(s.DetectionStatus) {
		cmd.Printf("  %-14s %d\n", st, s.DetectionStatus[st])
	}

	if len(s.Checkers) > 0 {
		cmd.Println(header("Checkers:"))
		for _, c := range s.Checkers {
			cmd.Printf("  %-40s %-10s %d\n", c.Name, severityLabel(c.Severity), c.Count)
		}
	}
	return nil
}

func sortedKeys[K ~int, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
