package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/cli"
	"ozzus/scicalc/internal/config"
	"ozzus/scicalc/internal/lib/logger/sl"
	"ozzus/scicalc/internal/lib/logger/slogfanout"
	"ozzus/scicalc/internal/lib/logger/slogpretty"
	"ozzus/scicalc/internal/logging"
	"ozzus/scicalc/internal/repository/kafka"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	var console io.Writer
	if cfg.Log.Console {
		console = os.Stdout
	}

	log := setupLogger(cfg.Env, console, logFile)

	events := logging.New(log, logging.NewSlogSink(log))

	if cfg.Kafka.Enabled {
		logsProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.Logs)
		defer logsProducer.Close()

		kafkaSink := logging.NewKafkaSink(logsProducer, log, logging.KafkaSinkConfig{Timeout: 5 * time.Second})
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafkaSink.Close(ctx); err != nil {
				log.Warn("log events not flushed to kafka", sl.Err(err))
			}
		}()

		events.AddSink(kafkaSink)
	}

	app := &cli.App{
		Config:     cfg,
		Log:        log,
		Events:     events,
		Calculator: calculator.New(events),
	}

	if err := cli.NewRootCommand(app).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "couldn't execute command,", err)
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// setupLogger writes to the console in the env's format and always appends
// plain text lines to the log file. console may be nil.
func setupLogger(env string, console io.Writer, file io.Writer) *slog.Logger {
	fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo})

	if console == nil {
		return slog.New(fileHandler)
	}

	var consoleHandler slog.Handler

	switch env {
	case envLocal:
		consoleHandler = prettyHandler(console)
	case envDev:
		consoleHandler = slog.NewJSONHandler(console, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		consoleHandler = slog.NewJSONHandler(console, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		consoleHandler = prettyHandler(console)
	}

	return slog.New(slogfanout.New(consoleHandler, fileHandler))
}

func prettyHandler(out io.Writer) slog.Handler {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return opts.NewPrettyHandler(out)
}
