package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/cardcheck/pkg/config"
	"github.com/dmitrymomot/cardcheck/pkg/environment"
	"github.com/dmitrymomot/cardcheck/pkg/httpserver"
	"github.com/dmitrymomot/cardcheck/pkg/imagesource"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/requestid"
)

const (
	sourceLocal = "local"
	sourceS3    = "s3"
)

var errInvalidSetting = errors.New("invalid setting")

type appConfig struct {
	Env           string               `env:"APP_ENV" envDefault:"development"`
	Name          string               `env:"APP_NAME" envDefault:"cardcheck"`
	LogLevel      string               `env:"LOG_LEVEL"`
	LogFormat     string               `env:"LOG_FORMAT"`
	ImageSource   string               `env:"IMAGE_SOURCE" envDefault:"local"`
	ImageDir      string               `env:"IMAGE_DIR" envDefault:"."`
	ImageMaxBytes int64                `env:"IMAGE_MAX_BYTES" envDefault:"10485760"`
	S3            imagesource.S3Config `envPrefix:"S3_"`
	HTTP          httpserver.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	var errs []error
	switch c.LogFormat {
	case "", string(logger.FormatJSON), string(logger.FormatText):
	default:
		errs = append(errs, fmt.Errorf("%w: LOG_FORMAT %q must be json or text", errInvalidSetting, c.LogFormat))
	}
	switch c.ImageSource {
	case sourceLocal:
	case sourceS3:
		if c.S3.Bucket == "" {
			errs = append(errs, fmt.Errorf("%w: S3_BUCKET is required when IMAGE_SOURCE=s3", errInvalidSetting))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: IMAGE_SOURCE %q must be local or s3", errInvalidSetting, c.ImageSource))
	}
	if c.ImageMaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("%w: IMAGE_MAX_BYTES must be > 0", errInvalidSetting))
	}
	return errors.Join(errs...)
}

// newLogger writes to stderr so stdout carries only command output.
func (c appConfig) newLogger() *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(c.Env), c.Name),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithLevelName(c.LogLevel),
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return logger.New(opts...)
}

// newImageSource builds the configured source and the readiness checks
// that go with it.
func (c appConfig) newImageSource(ctx context.Context) (imagesource.Source, []httpserver.Check, error) {
	if c.ImageSource == sourceS3 {
		src, err := imagesource.NewS3Source(ctx, c.S3, imagesource.WithS3MaxBytes(c.ImageMaxBytes))
		if err != nil {
			return nil, nil, err
		}
		return src, nil, nil
	}

	src, err := imagesource.NewLocalSource(c.ImageDir, imagesource.WithLocalMaxBytes(c.ImageMaxBytes))
	if err != nil {
		return nil, nil, err
	}
	dirCheck := httpserver.Check{
		Name: "image_dir",
		Probe: func(context.Context) error {
			info, err := os.Stat(c.ImageDir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", c.ImageDir)
			}
			return nil
		},
	}
	return src, []httpserver.Check{dirCheck}, nil
}
