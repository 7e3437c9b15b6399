package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/antenna-logo/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Root(viper.New())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "antenna-logo dev")
}

func TestSnapshotCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")

	_, err := execute(t, "snapshot", "--frames", "4", "--every", "2", "--out", dir, "--log-level", "none")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "frame-0000.png", entries[0].Name())
	require.Equal(t, "frame-0002.png", entries[1].Name())
}

func TestSnapshotRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "snapshot", "--frames", "0", "--out", t.TempDir())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTraceCommand(t *testing.T) {
	_, err := execute(t, "trace", "-n", "3", "--angle-step", "10", "--log-level", "none")
	require.NoError(t, err)
}

func TestTraceFullTurn(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "none"

	state := trace(cfg, 72)
	require.Equal(t, 0.0, state.AngleDegrees)
	require.Equal(t, 5.0, state.AngleStepDegrees)
}
