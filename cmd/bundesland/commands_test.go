package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundesland.at/internal/appconf"
	"bundesland.at/internal/statedata"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportCommandWritesSite(t *testing.T) {
	dir := t.TempDir()

	logs, err := runCommand(t, "export", "--strict", "--out", dir)
	require.NoError(t, err)

	for _, name := range []string{"index.html", "vienna.html", "lower_austria.html", "404.html"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}
	assert.Contains(t, logs, `"msg":"state_table_loaded"`)
	assert.Contains(t, logs, `"msg":"site_exported"`)
}

func TestStrictModeRejectsShortOverride(t *testing.T) {
	t.Setenv("vienna", "1,2")

	logs, err := runCommand(t, "export", "--strict", "--out", t.TempDir())
	require.Error(t, err)

	var validationErr *statedata.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, logs, "state configuration problem")
}

func TestLenientModeLogsShortOverride(t *testing.T) {
	t.Setenv("vienna", "1,2")
	dir := t.TempDir()

	logs, err := runCommand(t, "export", "--out", dir)
	require.NoError(t, err)

	assert.Contains(t, logs, `"level":"WARN"`)
	assert.Contains(t, logs, `"slug":"vienna"`)
	_, statErr := os.Stat(filepath.Join(dir, "vienna.html"))
	assert.NoError(t, statErr)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCommand(t, "export", "--log-level", "chatty", "--out", t.TempDir())
	assert.Error(t, err)
}

func TestMissingDataFile(t *testing.T) {
	_, err := runCommand(t, "export", "--data", filepath.Join(t.TempDir(), "missing.yaml"), "--out", t.TempDir())
	assert.Error(t, err)
}

func TestNewApplication(t *testing.T) {
	cfg := appconf.Default()
	cfg.Env = appconf.Test

	var logs bytes.Buffer
	application, err := newApplication(cfg, &logs)
	require.NoError(t, err)

	assert.Equal(t, cfg, application.Config)
	assert.NotNil(t, application.Logger)
	assert.Equal(t, 10, application.States.Len())
	assert.Contains(t, logs.String(), `"source":"built-in"`)
}

func TestServeFlagDefaults(t *testing.T) {
	cmd := newRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	port, err := serveCmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, appconf.DefaultPort, port)

	rate, err := serveCmd.Flags().GetInt("rate-limit")
	require.NoError(t, err)
	assert.Equal(t, 50, rate)
}
