package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutOverridesMatchesDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("MINIRTOS_MAXUSERTASKS", "3")
	t.Setenv("MINIRTOS_ISALIVEENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxUserTasks)
	assert.False(t, cfg.IsAliveEnabled)
	assert.Equal(t, Default().StackWords, cfg.StackWords, "unset keys still fall back to Default")
}

func TestLoadReadsConfigFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "minirtos-*.yaml")
	require.NoError(t, err)
	_, err = f.WriteString("maxusertasks: 6\ntickperiodus: 2000\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := Load(f.Name())
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxUserTasks)
	assert.Equal(t, uint32(2000), cfg.TickPeriodUS)
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	_, err := Load("/nonexistent/minirtos.yaml")
	assert.Error(t, err)
}
