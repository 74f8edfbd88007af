package main

import (
	"context"
	"errors"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/cardcheck/pkg/api"
	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/config"
	"github.com/dmitrymomot/cardcheck/pkg/httpserver"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/ocr"
	"github.com/dmitrymomot/cardcheck/pkg/scanner"
)

// sampleNumber is validated when `validate` gets no arguments.
const sampleNumber = "5379 5625 8396 2700"

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   formatJSON,
		Usage:   "Output format: json, yaml or text",
	}
}

func newApp(version string, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "cardcheck",
		Usage:   "Validate payment card numbers and detect their brand",
		Version: version,
		Writer:  stdout,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment variables from these files before reading settings",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if files := cmd.StringSlice("env-file"); len(files) > 0 {
				return ctx, config.LoadFiles(files...)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate card numbers given as arguments",
				ArgsUsage: "[NUMBER...]",
				Flags:     []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runValidate(stdout, cmd.String("format"), cmd.Args().Slice())
				},
			},
			{
				Name:      "scan",
				Usage:     "Look for a card number in an image",
				ArgsUsage: "IMAGE_PATH",
				Flags: []cli.Flag{
					formatFlag(),
					&cli.StringFlag{
						Name:  "text",
						Usage: "Use this text as the recognized image text instead of an OCR engine",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("scan expects exactly one IMAGE_PATH")
					}
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return runScan(ctx, stdout, cfg, cmd.String("format"), cmd.Args().First(), cmd.String("text"))
				},
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return runServe(ctx, cfg)
				},
			},
		},
	}
}

// runValidate prints one result per number. Invalid numbers are regular
// output, not errors.
func runValidate(w io.Writer, format string, numbers []string) error {
	p, err := newPrinter(w, format)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		numbers = []string{sampleNumber}
	}

	results := make([]card.Result, 0, len(numbers))
	for _, n := range numbers {
		results = append(results, card.Validate(n))
	}
	if err := p.results(results...); err != nil {
		return err
	}
	return p.close()
}

func runScan(ctx context.Context, w io.Writer, cfg appConfig, format, path, text string) error {
	p, err := newPrinter(w, format)
	if err != nil {
		return err
	}

	log := cfg.newLogger()
	src, _, err := cfg.newImageSource(ctx)
	if err != nil {
		return err
	}

	opts := []scanner.Option{scanner.WithLogger(log)}
	if text != "" {
		opts = append(opts, scanner.WithExtractor(ocr.Static(text)))
	}

	report, err := scanner.New(src, opts...).ProcessFromImage(ctx, path)
	if err != nil {
		return err
	}
	if err := p.report(report); err != nil {
		return err
	}
	return p.close()
}

func runServe(ctx context.Context, cfg appConfig) error {
	log := cfg.newLogger()
	logger.SetAsDefault(log)

	src, checks, err := cfg.newImageSource(ctx)
	if err != nil {
		return err
	}

	svc := api.NewService(
		scanner.New(src, scanner.WithLogger(log)),
		api.WithLogger(log),
		api.WithReadinessChecks(checks...),
	)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, svc.Handle())
}
