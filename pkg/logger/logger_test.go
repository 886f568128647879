package logger_test

import (
	"testing"

	"github.com/jobeserver/demo/pkg/config"
	"github.com/jobeserver/demo/pkg/logger"
	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppLogger(t *testing.T) {
	tests := []struct {
		appEnv    string
		wantDebug bool
	}{
		{"local", true},
		{"production", false},
	}

	for _, tt := range tests {
		l, err := logger.NewAppLogger(&config.Config{AppEnv: tt.appEnv})
		require.NoError(t, err, tt.appEnv)

		assert.Equal(t, tt.wantDebug, l.Desugar().Core().Enabled(zap.DebugLevel), tt.appEnv)
	}

	t.Run("it should follow the config default environment", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		l, err := logger.NewAppLogger(cfg)
		require.NoError(t, err)

		assert.Equal(t, cfg.IsLocal(), l.Desugar().Core().Enabled(zap.DebugLevel))
	})
}
