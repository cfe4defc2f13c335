package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kerbaras/anitrack/pkg/key"
	"github.com/kerbaras/anitrack/pkg/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabledDiscards(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(key.LogsWrite, false)

	require.NoError(t, Setup())
	assert.Equal(t, io.Discard, logger.Out)
}

func TestSetupWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(where.EnvConfigPath, dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { logger = newDiscard() })

	viper.Set(key.LogsWrite, true)
	viper.Set(key.LogsLevel, "debug")

	require.NoError(t, Setup())
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	Debugf("hello %s", "there")

	path := filepath.Join(dir, "logs", time.Now().Format("2006-01-02")+".log")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello there")
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv(where.EnvConfigPath, t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { logger = newDiscard() })

	viper.Set(key.LogsWrite, true)
	viper.Set(key.LogsLevel, "chatty")

	require.NoError(t, Setup())
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
