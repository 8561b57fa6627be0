package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/services"
)

var apiJSON bool

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Inspect the remote API",
}

var apiListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the remote operations this client can call",
	Args:  cobra.NoArgs,
	RunE:  runAPIList,
}

func init() {
	apiListCmd.Flags().BoolVar(&apiJSON, "json", false, "output as JSON")
	apiCmd.AddCommand(apiListCmd)
	rootCmd.AddCommand(apiCmd)
}

func runAPIList(cmd *cobra.Command, _ []string) error {
	catalog := services.Catalog()
	if apiJSON {
		return printJSON(cmd, catalog)
	}

	group := ""
	for _, op := range catalog {
		if op.Group != group {
			if group != "" {
				cmd.Println()
			}
			group = op.Group
			cmd.Println(header(group))
		}
		cmd.Printf("  %s(%s)\n", op.Name, strings.Join(op.Params, ", "))
	}
	return nil
}
