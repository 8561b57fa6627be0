package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/reportctl/internal/adapters/driven/auth"
	"github.com/custodia-labs/reportctl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/reportctl/internal/adapters/driven/rpc"
	"github.com/custodia-labs/reportctl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reportctl/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
	"github.com/custodia-labs/reportctl/internal/core/services"
	"github.com/custodia-labs/reportctl/internal/logger"
)

// Environment variables.
const (
	EnvURL          = "REPORTCTL_URL"
	EnvSessionToken = "REPORTCTL_SESSION_TOKEN"
	EnvUsername     = "REPORTCTL_USERNAME"
	EnvPassword     = "REPORTCTL_PASSWORD"
)

// settings are the connection parameters after flags, environment and
// configuration file have been merged.
type settings struct {
	product   domain.ProductURL
	token     string
	username  string
	timeout   time.Duration
	rateLimit float64
}

// resolveSettings merges flags over environment over configuration.
func resolveSettings(cfg driven.ConfigStore) (settings, error) {
	var s settings

	rawURL := firstNonEmpty(flagURL, os.Getenv(EnvURL), cfg.GetString(file.KeyServerURL))
	product, err := domain.ParseProductURL(rawURL)
	if err != nil {
		return s, err
	}
	s.product = product

	s.token = firstNonEmpty(flagToken, os.Getenv(EnvSessionToken))
	s.username = firstNonEmpty(flagUsername, os.Getenv(EnvUsername), cfg.GetString(file.KeyAuthUsername))

	s.timeout = flagTimeout
	if s.timeout <= 0 {
		if secs := cfg.GetInt(file.KeyServerTimeout); secs > 0 {
			s.timeout = time.Duration(secs) * time.Second
		}
	}
	s.rateLimit = cfg.GetFloat(file.KeyServerRateLimit)
	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadConfig opens the configuration store once.
func loadConfig() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	cfg, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	configStore = cfg
	return cfg, nil
}

// connectServices builds the report client and the services on top of it.
func connectServices(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := resolveSettings(cfg)
	if err != nil {
		return err
	}

	transport := rpc.New(rpc.Config{
		Timeout:   s.timeout,
		RateLimit: s.rateLimit,
		UserAgent: "reportctl/" + version,
	})

	var refresher driven.TokenRefresher
	if s.username != "" {
		login := auth.NewLoginSource(commandContext(cmd), transport, s.product.AuthEndpoint(),
			s.username, promptPassword(cmd, s.username))
		refresher = auth.FromTokenSource(login)
	}

	session := services.NewSession(s.product.ReportEndpoint(), s.token, refresher)
	client := services.NewReportClient(services.NewDispatcher(session, transport))
	logger.Debug("connected to %s (renewal: %t)", s.product, session.CanRenew())

	reportService = client
	resultsService = services.NewResultsService(client)
	suppressService = services.NewSuppressService(client)

	history, err := openHistory()
	if err != nil {
		logger.Warn("store history unavailable, keeping it in memory: %v", err)
		history = memory.NewHistoryStore()
	}
	storeService = services.NewStoreService(client, history, s.product.String(), version)
	return nil
}

// openHistory opens the local store ledger.
func openHistory() (driven.StoreHistory, error) {
	dataDir := ""
	if flagConfigDir != "" {
		dataDir = filepath.Join(flagConfigDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, err
	}
	closers = append(closers, store.Close)
	return store.StoreHistory(), nil
}

// promptPassword returns the password from the environment or, on a
// terminal, by prompting without echo.
func promptPassword(cmd *cobra.Command, username string) auth.PasswordFunc {
	return func() (string, error) {
		if pw := os.Getenv(EnvPassword); pw != "" {
			return pw, nil
		}
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", errors.New("password required: set " + EnvPassword + " or run in a terminal")
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Password for %s: ", username)
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(pw), nil
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
