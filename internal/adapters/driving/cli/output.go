package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// resolveRunIDs turns run arguments into IDs. Numeric arguments are used as
// is; anything else is looked up as an exact run name.
func resolveRunIDs(ctx context.Context, runs []string) ([]int64, error) {
	var ids []int64
	var names []string
	for _, r := range runs {
		if id, err := strconv.ParseInt(r, 10, 64); err == nil {
			ids = append(ids, id)
			continue
		}
		names = append(names, r)
	}
	if len(names) == 0 {
		return ids, nil
	}

	filter := &domain.RunFilter{Names: names, ExactMatch: true}
	found, err := reportService.GetRunData(ctx, filter, 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve runs: %w", err)
	}
	byName := make(map[string]int64, len(found))
	for _, run := range found {
		byName[run.Name] = run.RunID
	}
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("run %q: %w", name, domain.ErrNotFound)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// resolveRunID resolves exactly one run.
func resolveRunID(ctx context.Context, run string) (int64, error) {
	ids, err := resolveRunIDs(ctx, []string{run})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// reportFilterFlags are the result filter flags shared by the results, diff
// and sum commands.
type reportFilterFlags struct {
	severities   []string
	reviews      []string
	detections   []string
	checkers     []string
	files        []string
	messages     []string
	components   []string
	uniqueByHash bool
}

func (f *reportFilterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVar(&f.severities, "severity", nil, "filter by severity (critical, high, medium, low, style, unspecified)")
	flags.StringSliceVar(&f.reviews, "review-status", nil,
		"filter by review status (unreviewed, confirmed, false_positive, intentional)")
	flags.StringSliceVar(&f.detections, "detection-status", nil,
		"filter by detection status (new, resolved, unresolved, reopened, off, unavailable)")
	flags.StringSliceVar(&f.checkers, "checker-name", nil, "filter by checker name, * matches any text")
	flags.StringSliceVar(&f.files, "file", nil, "filter by file path, * matches any text")
	flags.StringSliceVar(&f.messages, "checker-msg", nil, "filter by checker message, * matches any text")
	flags.StringSliceVar(&f.components, "component", nil, "filter by source component name")
	flags.BoolVar(&f.uniqueByHash, "uniqueing", false, "list each bug hash once")
}

func (f *reportFilterFlags) reset() {
	*f = reportFilterFlags{}
}

// build converts the flags to a filter. A nil filter is returned when no
// flag is set.
func (f *reportFilterFlags) build() (*domain.ReportFilter, error) {
	filter := &domain.ReportFilter{
		CheckerName:    f.checkers,
		Filepath:       f.files,
		CheckerMsg:     f.messages,
		ComponentNames: f.components,
		IsUnique:       f.uniqueByHash,
	}
	for _, s := range f.severities {
		v, err := domain.ParseSeverity(s)
		if err != nil {
			return nil, err
		}
		filter.Severity = append(filter.Severity, v)
	}
	for _, s := range f.reviews {
		v, err := domain.ParseReviewStatus(s)
		if err != nil {
			return nil, err
		}
		filter.ReviewStatus = append(filter.ReviewStatus, v)
	}
	for _, s := range f.detections {
		v, err := domain.ParseDetectionStatus(s)
		if err != nil {
			return nil, err
		}
		filter.DetectionStatus = append(filter.DetectionStatus, v)
	}

	empty := len(filter.CheckerName)+len(filter.Filepath)+len(filter.CheckerMsg)+
		len(filter.ComponentNames)+len(filter.Severity)+len(filter.ReviewStatus)+
		len(filter.DetectionStatus) == 0 && !filter.IsUnique
	if empty {
		return nil, nil
	}
	return filter, nil
}

func formatLocation(r domain.ReportData) string {
	return fmt.Sprintf("%s:%d:%d", r.CheckedFile, r.Line, r.Column)
}
