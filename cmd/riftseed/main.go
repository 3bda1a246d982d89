// Copyright 2025 Riftforge Games
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riftforge/riftseed"
	"github.com/riftforge/riftseed/ai"
	"github.com/riftforge/riftseed/core"
	"github.com/riftforge/riftseed/seeding"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "riftseed",
		Usage: "Generate RPG items and skills with an LLM and upload them to the game database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file before reading flags",
				Value: ".env",
			},
		},
		Before: func(c *cli.Context) error {
			if err := setupLogger(c); err != nil {
				return err
			}
			return loadEnvFile(c.String("env-file"), c.IsSet("env-file"))
		},
		Commands: []*cli.Command{
			{
				Name:   "items",
				Usage:  "Generate items and upload them to the items collection",
				Action: seedCommand(core.KindItem),
				Flags:  seedFlags(),
			},
			{
				Name:   "skills",
				Usage:  "Generate skills and upload them to the skills collection",
				Action: seedCommand(core.KindSkill),
				Flags:  seedFlags(),
			},
			{
				Name:   "all",
				Usage:  "Seed items, then skills",
				Action: allCommand,
				Flags: append(seedFlags(),
					&cli.IntFlag{
						Name:    "parallel",
						Usage:   "Number of kinds seeded at the same time",
						EnvVars: []string{"RIFTSEED_PARALLEL"},
						Value:   1,
					},
				),
			},
		},
	}
}

func seedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "credentials",
			Usage:   "Service-account JSON file for Google clients (empty for application default credentials)",
			EnvVars: []string{"GOOGLE_APPLICATION_CREDENTIALS"},
			Value:   riftseed.DefaultCredentialsFile,
		},
		&cli.StringFlag{
			Name:    "project",
			Usage:   "Google Cloud project (defaults to the credentials file's project)",
			EnvVars: []string{"GOOGLE_CLOUD_PROJECT"},
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Gemini API key",
			EnvVars: []string{"GEMINI_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "api-key-secret",
			Usage:   "Secret Manager secret holding the API key, used when --api-key is empty",
			EnvVars: []string{"RIFTSEED_API_KEY_SECRET"},
		},
		&cli.StringFlag{
			Name:    "provider",
			Usage:   "Generation provider (googleai, openai)",
			EnvVars: []string{"RIFTSEED_PROVIDER"},
			Value:   ai.ProviderGoogleAI,
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "Base URL of an OpenAI-compatible server",
			EnvVars: []string{"RIFTSEED_HOST"},
		},
		&cli.StringFlag{
			Name:    "model",
			Usage:   "Model name",
			EnvVars: []string{"RIFTSEED_MODEL"},
			Value:   "gemini-1.5-flash",
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature",
			Value: 0.7,
		},
		&cli.StringFlag{
			Name:    "backend",
			Usage:   "Document store (firestore, badger)",
			EnvVars: []string{"RIFTSEED_BACKEND"},
			Value:   riftseed.BackendFirestore,
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory (badger backend)",
			EnvVars: []string{"RIFTSEED_DB"},
		},
		&cli.StringFlag{
			Name:    "archive-bucket",
			Usage:   "Cloud Storage bucket that keeps every raw model response",
			EnvVars: []string{"RIFTSEED_ARCHIVE_BUCKET"},
		},
		&cli.BoolFlag{
			Name:  "repair-json",
			Usage: "Repair object keys missing their opening quote before decoding",
		},
		&cli.IntFlag{
			Name:  "report-interval",
			Usage: "Report progress every N entries",
			Value: 5,
		},
	}
}

func configFromFlags(c *cli.Context) *riftseed.Config {
	aiConfig := ai.NewConfig(
		ai.WithProvider(c.String("provider")),
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithAPIKey(c.String("api-key")),
		ai.WithTemperature(c.Float64("temperature")),
	)

	return riftseed.NewConfig(
		riftseed.WithAIConfig(aiConfig),
		riftseed.WithBackend(c.String("backend")),
		riftseed.WithCredentialsFile(c.String("credentials")),
		riftseed.WithProjectID(c.String("project")),
		riftseed.WithDBPath(c.String("db")),
		riftseed.WithAPIKeySecret(c.String("api-key-secret")),
		riftseed.WithArchiveBucket(c.String("archive-bucket")),
		riftseed.WithRepairJSON(c.Bool("repair-json")),
	)
}

func seedCommand(kind core.Kind) cli.ActionFunc {
	return func(c *cli.Context) error {
		return runSeed(c, []core.Kind{kind}, 1)
	}
}

func allCommand(c *cli.Context) error {
	parallel := c.Int("parallel")
	if parallel <= 0 {
		return fmt.Errorf("parallel must be greater than 0")
	}
	return runSeed(c, core.Kinds, parallel)
}

func runSeed(c *cli.Context, kinds []core.Kind, parallel int) error {
	if c.Int("report-interval") <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	ctx, stop := signal.NotifyContext(contextOf(c), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := configFromFlags(c)
	seeder, err := riftseed.NewSeeder(ctx, cfg)
	if err != nil {
		return err
	}
	defer seeder.Close()

	resolved := seeder.Config()
	fmt.Fprintf(os.Stderr, "Backend: %s\n", resolved.Backend)
	fmt.Fprintf(os.Stderr, "Provider: %s\n", resolved.AI.Provider)
	fmt.Fprintf(os.Stderr, "Model: %s\n", resolved.AI.Model)
	fmt.Fprintln(os.Stderr)

	pipeline, err := seeder.NewPipeline(seeding.WithProgress(os.Stderr, c.Int("report-interval")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	results, err := pipeline.RunAll(ctx, kinds, parallel)
	for _, result := range results {
		if result == nil {
			continue
		}
		slog.Info("seeding finished",
			"kind", result.Kind.String(),
			"state", result.State.String(),
			"run", result.RunID.String(),
			"generated", result.Generated,
			"staged", result.Staged,
			"skipped", result.Skipped,
			"elapsed", result.Elapsed.Round(time.Millisecond),
		)
		if result.Committed() {
			fmt.Fprintf(os.Stderr, "Uploaded %d %s to collection '%s'\n",
				result.Staged, result.Kind.Collection(), result.Collection)
		}
	}
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	return nil
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is only an error when the
// path was given explicitly.
func loadEnvFile(path string, explicit bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	slog.Debug("loaded environment file", "path", path)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
