package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/samber/headerstamp/internal/config"
	"github.com/samber/headerstamp/internal/engine"
	"github.com/samber/headerstamp/internal/gitmeta"
	"github.com/samber/headerstamp/internal/runner"
	"github.com/samber/headerstamp/internal/watch"
)

type flags struct {
	LogLevel    string
	ConfigPath  string
	Force       bool
	RespectGit  bool
	StripEmojis bool
	Interval    time.Duration
}

func main() {
	ctx := context.Background()

	var (
		f   flags
		cfg engine.Config
		run *runner.Runner
	)

	app := &cli.Command{
		Name:  "headerstamp",
		Usage: "Insert, repair and refresh copyright headers",
		Description: `Headerstamp classifies the top of each file as having a well-formed
header, a malformed one, or none, then inserts or repairs a header rendered
from a configurable template. Shebang lines stay on top, leading blank lines
are tidied up, and well-formed headers are never rewritten.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("HEADERSTAMP_LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("HEADERSTAMP_CONFIG"),
				Destination: &f.ConfigPath,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "process non-UTF8 files and print non-blocking warnings",
				Destination: &f.Force,
			},
			&cli.BoolFlag{
				Name:        "respect-git",
				Usage:       "skip timestamp refreshes on files unchanged since HEAD",
				Value:       true,
				Destination: &f.RespectGit,
			},
			&cli.BoolFlag{
				Name:        "strip-emojis",
				Usage:       "remove emoji characters from file contents",
				Destination: &f.StripEmojis,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(f.LogLevel)
			if err != nil {
				return ctx, fmt.Errorf("parse log level: %w", err)
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().
				Timestamp().
				Logger().
				Level(level)

			root, err := os.Getwd()
			if err != nil {
				return ctx, fmt.Errorf("get working directory: %w", err)
			}

			cfg, err = config.Load(f.ConfigPath, root)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			git, err := gitmeta.New(ctx, root)
			if err != nil {
				log.Debug().Err(err).Msg("git metadata disabled")
				git = gitmeta.Disabled()
			}

			run = runner.New(runner.Options{
				Root:        root,
				Config:      cfg,
				Git:         git,
				Force:       f.Force,
				RespectGit:  f.RespectGit,
				StripEmojis: f.StripEmojis,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "report files whose header is missing or malformed",
				ArgsUsage: "[paths…]",
				Action: func(ctx context.Context, c *cli.Command) error {
					return process(ctx, run, c.Args().Slice(), false)
				},
			},
			{
				Name:      "fix",
				Usage:     "insert or repair headers in place",
				ArgsUsage: "[paths…]",
				Action: func(ctx context.Context, c *cli.Command) error {
					return process(ctx, run, c.Args().Slice(), true)
				},
			},
			{
				Name:      "watch",
				Usage:     "watch paths and fix headers as files change",
				ArgsUsage: "[paths…]",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:        "interval",
						Usage:       "minimum gap between runs on the same file",
						Value:       watch.DefaultInterval,
						Destination: &f.Interval,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					paths := defaultPaths(c.Args().Slice())
					log.Info().Strs("paths", paths).Msg("watching")
					return watch.New(run, f.Interval).Run(ctx, paths)
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("headerstamp failed")
	}
}

func defaultPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

func process(ctx context.Context, run *runner.Runner, args []string, fix bool) error {
	results, err := run.Process(ctx, absolute(defaultPaths(args)), fix)
	if err != nil {
		return err
	}

	var issues int
	for _, r := range results {
		if r.Warning != "" {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", r.Path, r.Warning)
		}
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", r.Path, r.Err)
			issues++
			continue
		}
		if r.Action == runner.ActionNone {
			continue
		}
		if fix {
			log.Info().Str("path", r.Path).Str("action", string(r.Action)).Msg("fixed")
			continue
		}
		fmt.Printf("%s:1: missing or incorrect header (%s)\n", displayPath(r.Path), r.Action)
		issues++
	}

	if issues > 0 && !fix {
		return cli.Exit("", 1)
	}
	return nil
}

func absolute(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			out[i] = abs
		} else {
			out[i] = p
		}
	}
	return out
}

func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}
