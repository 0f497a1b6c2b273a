// Copyright 2026 Vedic Archive Project
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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	riksearch "github.com/vedicarchive/riksearch"
	"github.com/vedicarchive/riksearch/ai"
	"github.com/vedicarchive/riksearch/index"
	"github.com/vedicarchive/riksearch/search"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "riksearch",
		Usage:  "Relevance-ranked search over the Rigveda verse corpus",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the corpus, search, and user data over HTTP",
				Action: serveCommand,
				Flags: append(corpusFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8000",
						EnvVars: []string{"RIKSEARCH_ADDR"},
					},
					&cli.StringFlag{
						Name:    "db",
						Usage:   "Path to BadgerDB directory for bookmarks and notes (omit to disable)",
						EnvVars: []string{"RIKSEARCH_DB"},
					},
					&cli.StringFlag{
						Name:    "ai-host",
						Usage:   "OpenAI-compatible service host for the assistant (omit to disable)",
						EnvVars: []string{"RIKSEARCH_AI_HOST"},
					},
					&cli.StringFlag{
						Name:    "ai-model",
						Usage:   "Model name for the assistant",
						Value:   "qwen2.5:3b",
						EnvVars: []string{"RIKSEARCH_AI_MODEL"},
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Run one ranked search and print the hits",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append(corpusFlags(),
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Inclusive similarity threshold in [0, 1]",
						Value: search.DefaultMinSimilarity,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of hits",
						Value: search.DefaultPageSize,
					},
				),
			},
			{
				Name:      "keyword",
				Usage:     "Run one keyword search and print the hits",
				ArgsUsage: "QUERY...",
				Action:    keywordCommand,
				Flags: append(corpusFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of hits",
						Value: search.DefaultPageSize,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"d"},
			Usage:    "Path to the corpus JSON file",
			Required: true,
			EnvVars:  []string{"RIKSEARCH_DATA"},
		},
		&cli.IntFlag{
			Name:  "max-features",
			Usage: "Cap on the indexed vocabulary size",
			Value: index.DefaultMaxFeatures,
		},
	}
}

func setupLogger(c *cli.Context) error {
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

func newService(c *cli.Context, extra ...riksearch.ServiceOption) (*riksearch.Service, error) {
	opts := append([]riksearch.ServiceOption{
		riksearch.WithMaxFeatures(c.Int("max-features")),
	}, extra...)
	return riksearch.NewService(c.String("data"), opts...)
}

func serveCommand(c *cli.Context) error {
	var opts []riksearch.ServiceOption
	if db := c.String("db"); db != "" {
		opts = append(opts, riksearch.WithStoragePath(db))
	}
	if host := c.String("ai-host"); host != "" {
		opts = append(opts, riksearch.WithAIConfig(ai.NewConfig(
			ai.WithHost(host),
			ai.WithModel(c.String("ai-model")),
		)))
	}

	svc, err := newService(c, opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	handler, err := svc.Handler()
	if err != nil {
		return err
	}

	addr := c.String("addr")
	go func() {
		slog.Info("starting server", "addr", addr)
		if err := handler.Start(addr); err != nil {
			slog.Info("server stopped", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := handler.Shutdown(shutdownCtx); err != nil {
		slog.Error("error shutting down server", "err", err)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: riksearch search QUERY...")
	}

	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	resp, err := svc.Engine().Search(search.Params{
		Query:         strings.Join(c.Args().Slice(), " "),
		Fields:        []string{"translation", "deity"},
		Page:          1,
		PageSize:      c.Int("limit"),
		MinSimilarity: c.Float64("min-similarity"),
	})
	if err != nil {
		return err
	}

	printHits(resp)
	return nil
}

func keywordCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: riksearch keyword QUERY...")
	}

	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	resp, err := svc.Engine().KeywordSearch(search.KeywordParams{
		Query:    strings.Join(c.Args().Slice(), " "),
		Fields:   []string{"translation", "deity"},
		Page:     1,
		PageSize: c.Int("limit"),
	})
	if err != nil {
		return err
	}

	printHits(resp)
	return nil
}

func printHits(resp *search.Response) {
	fmt.Printf("Found %d hits\n", resp.TotalResults)
	for i, hit := range resp.Results {
		citation := fmt.Sprintf("%d.%d.%d", hit.Mandala, hit.Sukta, hit.Rik)
		if hit.SimilarityScore != nil {
			fmt.Printf("%d: %s [%0.3f] %s\n", i+1, citation, *hit.SimilarityScore, hit.Translation)
		} else {
			fmt.Printf("%d: %s %s\n", i+1, citation, hit.Translation)
		}
	}
}
