package cli

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "reportctl", rootCmd.Use)
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"url", "token", "username", "config-dir", "verbose", "timeout"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRequireReportService_ConnectError(t *testing.T) {
	oldReport, oldConnect := reportService, connect
	reportService = nil
	connect = func(*cobra.Command) error { return errors.New("no server") }
	defer func() { reportService, connect = oldReport, oldConnect }()

	_, err := execute("runs", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no server")
}

func TestRequireReportService_NotConfigured(t *testing.T) {
	oldReport, oldConnect := reportService, connect
	reportService = nil
	connect = func(*cobra.Command) error { return nil }
	defer func() { reportService, connect = oldReport, oldConnect }()

	_, err := execute("runs", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report service not configured")
}

func TestRunClosers(t *testing.T) {
	var calls int
	closers = []func() error{
		func() error { calls++; return nil },
		func() error { calls++; return errors.New("close failed") },
	}

	err := runClosers()

	assert.Equal(t, 2, calls)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
	assert.Nil(t, closers)
	assert.NoError(t, runClosers())
}
