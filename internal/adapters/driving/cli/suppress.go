package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/services"
)

var (
	suppressFile string
	suppressJSON bool
)

var suppressCmd = &cobra.Command{
	Use:   "suppress",
	Short: "Import and list suppressions",
}

var suppressImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Apply a suppress file as review statuses",
	Long: `Reads a suppress file and sets the review status of every report with a
listed bug hash. Lines have the form

  hash||file||message||status

where status is confirmed, intentional or false_positive. The older
hash||file||message and hash||message forms are marked false positive.`,
	Args: cobra.NoArgs,
	RunE: runSuppressImport,
}

var suppressListCmd = &cobra.Command{
	Use:   "list [run]",
	Short: "List the suppressions recorded for a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuppressList,
}

func init() {
	suppressImportCmd.Flags().StringVarP(&suppressFile, "input", "i", "", "suppress file to import")
	_ = suppressImportCmd.MarkFlagRequired("input")
	suppressListCmd.Flags().BoolVar(&suppressJSON, "json", false, "output as JSON")

	suppressCmd.AddCommand(suppressImportCmd, suppressListCmd)
	rootCmd.AddCommand(suppressCmd)
}

func runSuppressImport(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(suppressFile)
	if err != nil {
		return fmt.Errorf("open suppress file: %w", err)
	}
	defer f.Close()

	entries, err := services.ParseSuppressFile(f)
	if err != nil {
		return err
	}

	if suppressService == nil {
		if err := requireReportService(cmd); err != nil {
			return err
		}
	}
	if suppressService == nil {
		return errors.New("suppress service not configured")
	}

	result, err := suppressService.Import(cmd.Context(), entries)
	if result != nil {
		cmd.Printf("Applied %d of %d suppressions\n", result.Applied, len(entries))
		hashes := make([]string, 0, len(result.Failures))
		for hash := range result.Failures {
			hashes = append(hashes, hash)
		}
		sort.Strings(hashes)
		for _, hash := range hashes {
			cmd.Printf("  %s: %s\n", hash, renderError(result.Failures[hash]))
		}
	}
	if err != nil {
		return err
	}
	if len(result.Failures) > 0 {
		return fmt.Errorf("%d suppressions could not be applied", len(result.Failures))
	}
	return nil
}

func runSuppressList(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	runID, err := resolveRunID(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	bugs, err := reportService.GetSuppressedBugs(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("list suppressions: %w", err)
	}
	if suppressJSON {
		return printJSON(cmd, bugs)
	}
	if len(bugs) == 0 {
		cmd.Println("No suppressions found.")
		return nil
	}
	for _, b := range bugs {
		cmd.Printf("  %s||%s||%s||%s\n", b.BugHash, b.FileName, b.Comment, strings.ToLower(b.Status.String()))
	}
	return nil
}
