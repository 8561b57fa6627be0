package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	runsJSON         bool
	runsLimit        int64
	runsSort         string
	runsDesc         bool
	runsHistoryLimit int64
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List and manage analysis runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list [name...]",
	Short: "List runs, optionally filtered by name",
	Long: `Lists the runs of the product. Name arguments match as substrings;
use * as a wildcard.`,
	RunE: runRunsList,
}

var runsHistoryCmd = &cobra.Command{
	Use:   "history [run...]",
	Short: "Show the store history of runs",
	RunE:  runRunsHistory,
}

var runsRenameCmd = &cobra.Command{
	Use:   "rename [run] [new-name]",
	Short: "Rename a run",
	Args:  cobra.ExactArgs(2),
	RunE:  runRunsRename,
}

var runsRemoveCmd = &cobra.Command{
	Use:   "remove [run...]",
	Short: "Remove runs and all their results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRunsRemove,
}

var runSortTypes = map[string]domain.RunSortType{
	"name":       domain.RunSortTypeName,
	"unresolved": domain.RunSortTypeUnresolved,
	"date":       domain.RunSortTypeDate,
	"duration":   domain.RunSortTypeDuration,
	"version":    domain.RunSortTypeCCVersion,
}

func init() {
	runsListCmd.Flags().BoolVar(&runsJSON, "json", false, "output as JSON")
	runsListCmd.Flags().Int64VarP(&runsLimit, "limit", "n", 0, "maximum number of runs (0 = all)")
	runsListCmd.Flags().StringVar(&runsSort, "sort", "date", "sort by name, unresolved, date, duration or version")
	runsListCmd.Flags().BoolVar(&runsDesc, "desc", true, "sort in descending order")
	runsHistoryCmd.Flags().BoolVar(&runsJSON, "json", false, "output as JSON")
	runsHistoryCmd.Flags().Int64VarP(&runsHistoryLimit, "limit", "n", 0, "maximum number of entries (0 = all)")

	runsCmd.AddCommand(runsListCmd, runsHistoryCmd, runsRenameCmd, runsRemoveCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	sortType, ok := runSortTypes[runsSort]
	if !ok {
		return fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, runsSort)
	}
	sortMode := &domain.RunSortMode{Type: sortType, Ord: domain.OrderAsc}
	if runsDesc {
		sortMode.Ord = domain.OrderDesc
	}

	var filter *domain.RunFilter
	if len(args) > 0 {
		filter = &domain.RunFilter{Names: args}
	}

	runs, err := reportService.GetRunData(cmd.Context(), filter, runsLimit, 0, sortMode)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if runsJSON {
		return printJSON(cmd, runs)
	}
	if len(runs) == 0 {
		cmd.Println("No runs found.")
		return nil
	}

	cmd.Println(header("Runs:"))
	for i := range runs {
		r := &runs[i]
		cmd.Printf("  [%d] %s  %d reports  %s\n", r.RunID, r.Name, r.ResultCount, mutedStyle.Render(r.RunDate))
		if r.VersionTag != "" {
			cmd.Printf("      Tag: %s\n", r.VersionTag)
		}
		if r.Duration > 0 {
			cmd.Printf("      Duration: %s\n", time.Duration(r.Duration)*time.Second)
		}
		if r.Description != "" {
			cmd.Printf("      %s\n", r.Description)
		}
	}
	return nil
}

func runRunsHistory(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	runIDs, err := resolveRunIDs(cmd.Context(), args)
	if err != nil {
		return err
	}

	history, err := reportService.GetRunHistory(cmd.Context(), runIDs, runsHistoryLimit, 0, nil)
	if err != nil {
		return fmt.Errorf("run history: %w", err)
	}

	if runsJSON {
		return printJSON(cmd, history)
	}
	if len(history) == 0 {
		cmd.Println("No history found.")
		return nil
	}

	for i := range history {
		h := &history[i]
		tag := ""
		if h.VersionTag != "" {
			tag = " (" + h.VersionTag + ")"
		}
		cmd.Printf("  %s  %s%s  by %s\n", h.Time, h.RunName, tag, h.User)
	}
	return nil
}

func runRunsRename(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	runID, err := resolveRunID(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	ok, err := reportService.UpdateRunData(cmd.Context(), runID, args[1])
	if err != nil {
		return fmt.Errorf("rename run: %w", err)
	}
	if !ok {
		return errors.New("server did not rename the run")
	}
	cmd.Printf("Renamed run %d to %s\n", runID, args[1])
	return nil
}

func runRunsRemove(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	runIDs, err := resolveRunIDs(cmd.Context(), args)
	if err != nil {
		return err
	}

	for _, id := range runIDs {
		ok, err := reportService.RemoveRun(cmd.Context(), id, nil)
		if err != nil {
			return fmt.Errorf("remove run %d: %w", id, err)
		}
		if !ok {
			return fmt.Errorf("server did not remove run %d", id)
		}
		cmd.Printf("Removed run %d\n", id)
	}
	return nil
}
