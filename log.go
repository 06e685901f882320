package frm2schema

import (
	"io"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const EnvPrefix = "frm2schema"

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"warn"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// LoadLogConfig reads FRM2SCHEMA_LOG_LEVEL and FRM2SCHEMA_LOG_FORMAT.
func LoadLogConfig() (cfg LogConfig, err error) {
	if err = envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, UsageError("LoadLogConfig", err.Error())
	}
	return cfg, nil
}

// Apply configures logger to write to w. Logs never go to the SQL stream.
func (cfg LogConfig) Apply(logger *log.Logger, w io.Writer) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return UsageError("LogConfig.Apply", err.Error())
	}
	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	default:
		return UsageError("LogConfig.Apply", "unknown log format "+cfg.Format)
	}
	logger.SetLevel(level)
	logger.SetOutput(w)
	return nil
}
