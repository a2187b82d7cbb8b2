// Команда subbreeds — разовый поиск подпород через тот же кэширующий слой, что и сервис.
//
//	subbreeds [--base-url URL] [--timeout 5s] [--in FILE] [--format auto|json|lines] BREED...
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/internal/repo/dogapi"
	"github.com/Gunvolt24/dogbreeds/internal/usecase"
	"github.com/Gunvolt24/dogbreeds/pkg/logger"
	"github.com/Gunvolt24/dogbreeds/pkg/validate"
)

// errLookupFailed — хотя бы одно имя не найдено или отклонено; код выхода 1.
var errLookupFailed = errors.New("some breeds could not be resolved")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		if !errors.Is(err, errLookupFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "subbreeds",
		Usage:     "list sub-breeds of dog breeds via dog.ceo",
		UsageText: "subbreeds [options] BREED...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "dog.ceo API base URL",
				Value:   dogapi.DefaultBaseURL,
				Sources: cli.EnvVars("BREEDS_DOGAPI_BASE_URL"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-request timeout",
				Value:   dogapi.DefaultTimeout,
				Sources: cli.EnvVars("BREEDS_DOGAPI_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "in",
				Aliases: []string{"i"},
				Usage:   "read additional breed names from `FILE`",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "input file format: auto, json or lines",
				Value: string(validate.FormatAuto),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log cache and upstream activity to stderr",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names, err := collectNames(cmd.String("in"), cmd.String("format"), cmd.Args().Slice())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("no breed names given")
			}

			opts := []usecase.Option{}
			if cmd.Bool("verbose") {
				logg, cleanup, err := logger.NewZapLogger(false)
				if err != nil {
					return err
				}
				defer func() { _ = cleanup() }()
				opts = append(opts, usecase.WithLogger(logg))
			}

			fetcher := dogapi.NewBreedFetcher(cmd.String("base-url"), cmd.Duration("timeout"), nil)
			lookup, err := usecase.NewCachingLookup(fetcher, opts...)
			if err != nil {
				return err
			}

			return run(ctx, lookup, names, stdout, stderr)
		},
	}
}

// collectNames — имена из файла (если задан), затем позиционные аргументы.
func collectNames(path, format string, args []string) ([]string, error) {
	var names []string
	if path != "" {
		f, err := validate.ParseInputFormat(format)
		if err != nil {
			return nil, err
		}
		fromFile, err := validate.ReadBreedNames(path, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		names = append(names, fromFile...)
	}
	return append(names, args...), nil
}

// run — печатает «breed: a, b» по каждому имени и итоговый счётчик обращений к API.
func run(ctx context.Context, lookup *usecase.CachingLookup, names []string, stdout, stderr io.Writer) error {
	valid, invalid := validate.SplitValid(ctx, validate.NewBreedValidator(), names)
	failed := len(invalid) > 0
	for _, name := range invalid {
		fmt.Fprintf(stderr, "%s: invalid breed name\n", name)
	}

	for _, name := range valid {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		subBreeds, err := lookup.LookupName(ctx, name)
		switch {
		case errors.Is(err, domain.ErrBreedNotFound):
			failed = true
			fmt.Fprintf(stderr, "%s: not found\n", name)
		case err != nil:
			failed = true
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
		case len(subBreeds) == 0:
			fmt.Fprintf(stdout, "%s: (none)\n", name)
		default:
			fmt.Fprintf(stdout, "%s: %s\n", name, strings.Join(subBreeds, ", "))
		}
	}

	fmt.Fprintf(stdout, "calls made: %d\n", lookup.CallsMade())
	if failed {
		return errLookupFailed
	}
	return nil
}
