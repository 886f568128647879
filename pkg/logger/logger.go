package logger

import (
	"github.com/jobeserver/demo/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewAppLogger writes JSON lines to stdout, or console lines at debug level
// when the app runs locally.
func NewAppLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.IsLocal() {
		zcfg = zap.NewDevelopmentConfig()
	}

	zcfg.OutputPaths = []string{"stdout"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	// stdout returns EINVAL/ENOTTY on Sync for terminals and pipes.
	_ = l.Sync()
}
