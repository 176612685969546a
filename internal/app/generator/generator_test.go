package generator

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beagle/internal/app/errors"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Info()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()

	return mockLog
}

func Test_NewGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)

	gen := NewGenerator(newTestLogger(ctrl))
	assert.NotNil(t, gen)
}

func Test_Generator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), config.ConfigFile)

	gen := NewGenerator(newTestLogger(ctrl))

	content, err := gen.Generate(path, false, false)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, content, written)
	assert.Contains(t, string(written), "version: 1")
	assert.Contains(t, string(written), "capacity: 20000")
	assert.Contains(t, string(written), "eviction_fraction: 0.1")
	assert.Contains(t, string(written), "time_format:")
}

func Test_Generator_Generate_RoundTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), config.ConfigFile)

	_, err := NewGenerator(newTestLogger(ctrl)).Generate(path, false, false)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg config.Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, *config.DefaultConfig(), cfg)
}

func Test_Generator_Generate_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), config.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0600))

	gen := NewGenerator(newTestLogger(ctrl))

	t.Run("Refuses to overwrite", func(t *testing.T) {
		_, err := gen.Generate(path, false, false)
		assert.ErrorIs(t, err, errors.ErrConfigExists)
	})

	t.Run("Dry run leaves the file alone", func(t *testing.T) {
		content, err := gen.Generate(path, false, true)
		require.NoError(t, err)

		written, _ := os.ReadFile(path)
		assert.Equal(t, "version: 1\n", string(written))
		assert.Contains(t, string(content), "buffer:")
	})

	t.Run("Force overwrites", func(t *testing.T) {
		_, err := gen.Generate(path, true, false)
		require.NoError(t, err)

		written, _ := os.ReadFile(path)
		assert.Contains(t, string(written), "buffer:")
	})
}
