// Copyright 2025 Poiesic Systems
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
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/flightdesk"
	"github.com/poiesic/flightdesk/ai"
	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/pipeline"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env if present; missing file is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "flightdesk",
		Usage: "Flight information assistant with a deterministic fallback pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Interactive question-and-answer session",
				Action: chatCommand,
				Flags:  connectionFlags(),
			},
			{
				Name:      "ask",
				Usage:     "Answer a single question and exit",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags:     connectionFlags(),
			},
			{
				Name:   "batch",
				Usage:  "Answer one question per line from a file, concurrently",
				Action: batchCommand,
				Flags: append(connectionFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a file with one question per line",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent workers",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the flight database directory",
			Value:   "./flightdesk_db",
		},
		&cli.StringFlag{
			Name:     "host",
			Usage:    "Language service host URL",
			EnvVars:  []string{"OLLAMA_URL"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "model",
			Usage:   "Language model name",
			EnvVars: []string{"OLLAMA_MODEL"},
			Value:   "llama2",
		},
	}
}

func openAssistant(c *cli.Context) (*flightdesk.Assistant, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return flightdesk.NewAssistant(c.String("db"), flightdesk.WithAIConfig(cfg))
}

func chatCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	if available, detail := assistant.Probe(c.Context); !available {
		fmt.Println("Note: the language service is unavailable. Responses will be simplified.")
		slog.Debug("availability probe", "detail", detail)
	}

	fmt.Println("Ask me about flights! Try questions like:")
	fmt.Println("  - What flights are available from New York to London?")
	fmt.Println("  - Show me flight NY100.")
	fmt.Println("  - Are there any flights from Chicago?")
	fmt.Println("Press Ctrl-D to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		printResult(assistant.Ask(c.Context, query))
	}
	return scanner.Err()
}

func askCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("ask requires a question argument", 1)
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	printResult(assistant.Ask(c.Context, strings.Join(c.Args().Slice(), " ")))
	return nil
}

func batchCommand(c *cli.Context) error {
	file, err := os.Open(c.String("file"))
	if err != nil {
		return err
	}
	defer file.Close()

	var queries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			queries = append(queries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	var opts []pipeline.BatchOption
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, pipeline.WithPoolSize(size))
	}
	batch, err := assistant.NewBatch(opts...)
	if err != nil {
		return err
	}
	defer batch.Close()

	for i, result := range batch.Run(c.Context, queries) {
		fmt.Printf("--- %s\n", queries[i])
		printResult(result)
	}
	return nil
}

func printResult(result core.PipelineResult) {
	if !result.Success {
		fmt.Println(result.Message)
		return
	}
	fmt.Println(result.Answer)
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
