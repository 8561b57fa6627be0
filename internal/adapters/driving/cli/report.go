package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	reportJSON   bool
	reportSource bool
)

var reportCmd = &cobra.Command{
	Use:   "report [report-id]",
	Short: "Show the bug path of a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output as JSON")
	reportCmd.Flags().BoolVar(&reportSource, "source", false, "print the source lines of each bug path event")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	reportID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: report ID must be a number: %q", domain.ErrInvalidInput, args[0])
	}
	if err := requireReportService(cmd); err != nil {
		return err
	}

	details, err := reportService.GetReportDetails(cmd.Context(), reportID)
	if err != nil {
		return fmt.Errorf("report details: %w", err)
	}
	if details == nil {
		return fmt.Errorf("report %d: %w", reportID, domain.ErrNotFound)
	}
	if reportJSON {
		return printJSON(cmd, details)
	}

	var lines map[int64]map[int64]string
	if reportSource {
		lines, err = reportService.GetLinesInSourceFileContents(
			cmd.Context(), eventLines(details.PathEvents), domain.EncodingDefault)
		if err != nil {
			return fmt.Errorf("source lines: %w", err)
		}
	}

	cmd.Println(header(fmt.Sprintf("Report %d", reportID)))
	for i, ev := range details.PathEvents {
		cmd.Printf("  %d. %s:%d:%d %s\n", i+1, ev.FilePath, ev.StartLine, ev.StartCol, ev.Msg)
		if src, ok := lines[ev.FileID][ev.StartLine]; ok {
			cmd.Printf("     %s\n", mutedStyle.Render(src))
		}
	}
	for _, note := range details.Notes {
		cmd.Printf("  note: %s:%d %s\n", note.FilePath, note.StartLine, note.Msg)
	}
	return nil
}

// eventLines groups the start lines of the events by file.
func eventLines(events []domain.BugPathEvent) []domain.LinesInFilesRequested {
	index := make(map[int64]int)
	var requested []domain.LinesInFilesRequested
	for _, ev := range events {
		i, ok := index[ev.FileID]
		if !ok {
			i = len(requested)
			index[ev.FileID] = i
			requested = append(requested, domain.LinesInFilesRequested{FileID: ev.FileID})
		}
		requested[i].Lines = append(requested[i].Lines, ev.StartLine)
	}
	return requested
}
