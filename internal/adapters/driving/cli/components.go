package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

var (
	componentsJSON        bool
	componentDescription  string
	componentValueFile    string
	componentIncludeRules []string
	componentExcludeRules []string
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Manage source components",
	Long: `Source components are named sets of path rules used to filter reports.
Each rule is a glob prefixed with + (include) or - (exclude).`,
}

var componentsListCmd = &cobra.Command{
	Use:   "list [name...]",
	Short: "List source components",
	RunE:  runComponentsList,
}

var componentsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add or replace a source component",
	Args:  cobra.ExactArgs(1),
	RunE:  runComponentsAdd,
}

var componentsRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a source component",
	Args:  cobra.ExactArgs(1),
	RunE:  runComponentsRemove,
}

func init() {
	componentsListCmd.Flags().BoolVar(&componentsJSON, "json", false, "output as JSON")
	componentsAddCmd.Flags().StringVar(&componentDescription, "description", "", "component description")
	componentsAddCmd.Flags().StringVarP(&componentValueFile, "import", "i", "", "file with one +/- rule per line")
	componentsAddCmd.Flags().StringSliceVar(&componentIncludeRules, "include", nil, "path glob to include")
	componentsAddCmd.Flags().StringSliceVar(&componentExcludeRules, "exclude", nil, "path glob to exclude")

	componentsCmd.AddCommand(componentsListCmd, componentsAddCmd, componentsRemoveCmd)
	rootCmd.AddCommand(componentsCmd)
}

func runComponentsList(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	components, err := reportService.GetSourceComponents(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("list components: %w", err)
	}

	if componentsJSON {
		return printJSON(cmd, components)
	}
	if len(components) == 0 {
		cmd.Println("No source components found.")
		return nil
	}
	for _, c := range components {
		cmd.Println(header(c.Name))
		if c.Description != "" {
			cmd.Printf("  %s\n", mutedStyle.Render(c.Description))
		}
		for _, rule := range strings.Split(c.Value, "\n") {
			if rule != "" {
				cmd.Printf("  %s\n", rule)
			}
		}
	}
	return nil
}

// componentValue builds the rule list from the import file and the
// include and exclude flags.
func componentValue() (string, error) {
	var rules []string
	if componentValueFile != "" {
		data, err := os.ReadFile(componentValueFile)
		if err != nil {
			return "", fmt.Errorf("read component file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line[0] != '+' && line[0] != '-' {
				return "", fmt.Errorf("%w: rule %q must start with + or -", domain.ErrInvalidInput, line)
			}
			rules = append(rules, line)
		}
	}
	for _, p := range componentIncludeRules {
		rules = append(rules, "+"+p)
	}
	for _, p := range componentExcludeRules {
		rules = append(rules, "-"+p)
	}
	if len(rules) == 0 {
		return "", fmt.Errorf("%w: component needs at least one rule", domain.ErrInvalidInput)
	}
	return strings.Join(rules, "\n"), nil
}

func runComponentsAdd(cmd *cobra.Command, args []string) error {
	value, err := componentValue()
	if err != nil {
		return err
	}
	if err := requireReportService(cmd); err != nil {
		return err
	}

	ok, err := reportService.AddSourceComponent(cmd.Context(), args[0], value, componentDescription)
	if err != nil {
		return fmt.Errorf("add component: %w", err)
	}
	if !ok {
		return errors.New("server did not add the component")
	}
	cmd.Printf("Source component %s saved\n", args[0])
	return nil
}

func runComponentsRemove(cmd *cobra.Command, args []string) error {
	if err := requireReportService(cmd); err != nil {
		return err
	}

	ok, err := reportService.RemoveSourceComponent(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("remove component: %w", err)
	}
	if !ok {
		return fmt.Errorf("source component %s: %w", args[0], domain.ErrNotFound)
	}
	cmd.Printf("Source component %s removed\n", args[0])
	return nil
}
