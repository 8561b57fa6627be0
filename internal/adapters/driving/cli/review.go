package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	reviewMessage string
	reviewByHash  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [report-id] [status]",
	Short: "Change the review status of a report",
	Long: `Sets the review status of a report. The status is one of unreviewed,
confirmed, false_positive or intentional.

With --hash the first argument is a bug hash and every report with that
hash is changed.`,
	Args: cobra.ExactArgs(2),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewMessage, "message", "m", "", "review comment")
	reviewCmd.Flags().BoolVar(&reviewByHash, "hash", false, "treat the first argument as a bug hash")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	status, err := domain.ParseReviewStatus(args[1])
	if err != nil {
		return err
	}

	var reportID int64
	if !reviewByHash {
		reportID, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: report ID must be a number: %q", domain.ErrInvalidInput, args[0])
		}
	}

	if err := requireReportService(cmd); err != nil {
		return err
	}

	var ok bool
	if reviewByHash {
		ok, err = reportService.ChangeReviewStatusByHash(cmd.Context(), args[0], status, reviewMessage)
	} else {
		ok, err = reportService.ChangeReviewStatus(cmd.Context(), reportID, status, reviewMessage)
	}
	if err != nil {
		return fmt.Errorf("change review status: %w", err)
	}
	if !ok {
		return errors.New("server did not change the review status")
	}

	cmd.Printf("Review status of %s set to %s\n", args[0], reviewLabel(status))
	return nil
}
