package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/reportctl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
)

// storeOptions are the flags of the store command. They can also be given
// in a JSON config file, where explicit command line flags win.
type storeOptions struct {
	name          string
	tag           string
	description   string
	force         bool
	trimPrefixes  []string
	statisticsDir string
}

func (o *storeOptions) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&o.name, "name", "n", "", "name of the run to store into")
	fs.StringVar(&o.tag, "tag", "", "version tag of the stored results")
	fs.StringVar(&o.description, "description", "", "description of the store")
	fs.BoolVarP(&o.force, "force", "f", false, "replace the results of the run instead of updating them")
	fs.StringSliceVar(&o.trimPrefixes, "trim-path-prefix", nil, "path prefix removed from stored file paths")
	fs.StringVar(&o.statisticsDir, "statistics-dir", "", "directory of analysis statistics to upload")
	return fs
}

// merge copies the options set in the config file that were not given on
// the command line.
func (o *storeOptions) merge(cfg *storeOptions, cfgSet, cliSet *pflag.FlagSet) {
	take := func(name string) bool { return cfgSet.Changed(name) && !cliSet.Changed(name) }
	if take("name") {
		o.name = cfg.name
	}
	if take("tag") {
		o.tag = cfg.tag
	}
	if take("description") {
		o.description = cfg.description
	}
	if take("force") {
		o.force = cfg.force
	}
	if take("trim-path-prefix") {
		o.trimPrefixes = cfg.trimPrefixes
	}
	if take("statistics-dir") {
		o.statisticsDir = cfg.statisticsDir
	}
}

var (
	storeOpts       storeOptions
	storeConfigFile string
	storeJSON       bool
	storeHistoryMax int
)

var storeCmd = &cobra.Command{
	Use:   "store [report-dir]",
	Short: "Store analysis results as a run",
	Long: `Uploads the files of a report directory to a run. Only files whose
content the server does not have yet are sent.

Options may also be read from a JSON config file with --config:
  {"store": ["--name", "nightly", "--trim-path-prefix", "/src"]}
Flags given on the command line take precedence.`,
	Args: cobra.ExactArgs(1),
	RunE: runStore,
}

var storeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stores made from this machine",
	Args:  cobra.NoArgs,
	RunE:  runStoreHistory,
}

func init() {
	storeCmd.Flags().AddFlagSet(storeOpts.flagSet("store"))
	storeCmd.Flags().StringVar(&storeConfigFile, "config", "", "JSON config file with extra store options")
	storeHistoryCmd.Flags().BoolVar(&storeJSON, "json", false, "output as JSON")
	storeHistoryCmd.Flags().IntVarP(&storeHistoryMax, "limit", "n", 20, "maximum number of entries (0 = all)")

	storeCmd.AddCommand(storeHistoryCmd)
	rootCmd.AddCommand(storeCmd)
}

// readStoreConfig parses the "store" argument list of a JSON config file.
// An empty file yields no arguments.
func readStoreConfig(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var cfg struct {
		Store []string `json:"store"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: config file %s: %v", domain.ErrInvalidInput, path, err)
	}
	return cfg.Store, nil
}

func applyStoreConfig(cmd *cobra.Command) error {
	if storeConfigFile == "" {
		return nil
	}
	args, err := readStoreConfig(storeConfigFile)
	if err != nil {
		return err
	}

	var cfg storeOptions
	cfgSet := cfg.flagSet("store config")
	cfgSet.SetOutput(io.Discard)
	if err := cfgSet.Parse(args); err != nil {
		return fmt.Errorf("%w: config file %s: %v", domain.ErrInvalidInput, storeConfigFile, err)
	}
	if cfgSet.NArg() > 0 {
		return fmt.Errorf("%w: config file %s: unexpected argument %q",
			domain.ErrInvalidInput, storeConfigFile, cfgSet.Arg(0))
	}
	storeOpts.merge(&cfg, cfgSet, cmd.Flags())
	return nil
}

func runStore(cmd *cobra.Command, args []string) error {
	if err := applyStoreConfig(cmd); err != nil {
		return err
	}
	if storeOpts.name == "" {
		return fmt.Errorf("%w: --name is required", domain.ErrInvalidInput)
	}

	if storeService == nil {
		if err := requireReportService(cmd); err != nil {
			return err
		}
	}
	if storeService == nil {
		return errors.New("store service not configured")
	}

	trim := storeOpts.trimPrefixes
	if len(trim) == 0 && configStore != nil {
		trim = configStore.GetStringSlice(file.KeyTrimPathPrefixes)
	}

	result, err := storeService.Store(cmd.Context(), driving.StoreRequest{
		ReportDir:        args[0],
		RunName:          storeOpts.name,
		Tag:              storeOpts.tag,
		Description:      storeOpts.description,
		Force:            storeOpts.force,
		TrimPathPrefixes: trim,
		StatisticsDir:    storeOpts.statisticsDir,
	})
	if err != nil {
		return fmt.Errorf("store failed: %w", err)
	}

	cmd.Printf("Stored %s as run %d\n", storeOpts.name, result.RunID)
	cmd.Printf("  Files: %d (%d uploaded, %d bytes)\n", result.FileCount, result.UploadedCount, result.ZipSize)
	if result.StatisticsSent {
		cmd.Println("  Analysis statistics uploaded")
	}
	return nil
}

func runStoreHistory(cmd *cobra.Command, _ []string) error {
	if storeService == nil {
		if err := requireReportService(cmd); err != nil {
			return err
		}
	}
	if storeService == nil {
		return errors.New("store service not configured")
	}

	records, err := storeService.History(cmd.Context(), storeHistoryMax)
	if err != nil {
		return fmt.Errorf("store history: %w", err)
	}
	if storeJSON {
		return printJSON(cmd, records)
	}
	if len(records) == 0 {
		cmd.Println("No stores recorded.")
		return nil
	}
	for i := range records {
		r := &records[i]
		cmd.Printf("  %s  %s  run %d  %d/%d files  %s\n",
			r.StoredAt.Local().Format("2006-01-02 15:04"), r.RunName, r.RunID,
			r.UploadedCount, r.FileCount, mutedStyle.Render(r.ServerURL))
	}
	return nil
}
