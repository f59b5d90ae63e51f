// Package main implements quizgen, a command-line client that generates a
// quiz for a single URL with the same pipeline the API server uses.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/quizgen-api/internal/config"
	"github.com/phrazzld/quizgen-api/internal/domain"
	"github.com/phrazzld/quizgen-api/internal/generation"
	"github.com/phrazzld/quizgen-api/internal/pipeline"
	"github.com/phrazzld/quizgen-api/internal/platform/logger"
	"github.com/phrazzld/quizgen-api/internal/redact"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitUsage      = 2
	exitConfigFail = 3
)

type quizGenerator interface {
	GenerateQuiz(ctx context.Context, url string, questionAmount *int) (*domain.QuizQuestions, error)
}

// generatorFactory builds the pipeline from configuration. The returned
// closer releases its resources.
type generatorFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (quizGenerator, func(), error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, config.Load, newGenerator)
	stop()
	os.Exit(code)
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	loadConfig func() (*config.Config, error),
	factory generatorFactory,
) int {
	flags := pflag.NewFlagSet("quizgen", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	url := flags.StringP("url", "u", "", "URL of the page to build the quiz from (required)")
	amount := flags.IntP("count", "n", 0, "number of questions (server default when omitted)")
	verbose := flags.BoolP("verbose", "v", false, "log pipeline progress to stderr")
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: quizgen --url <url> [-n <count>]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *url == "" && flags.NArg() == 1 {
		*url = flags.Arg(0)
	}
	if *url == "" {
		flags.Usage()
		return exitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "configuration error: %s\n", redact.Error(err))
		return exitConfigFail
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	l := logger.New(stderr, level)

	generator, closeFn, err := factory(ctx, cfg, l)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "initialization error: %s\n", redact.Error(err))
		return exitConfigFail
	}
	defer closeFn()

	var questionAmount *int
	if flags.Changed("count") {
		questionAmount = amount
	}

	quiz, err := generator.GenerateQuiz(ctx, *url, questionAmount)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "quiz generation failed (%s): %s\n",
			generation.Classify(err), redact.Error(err))
		return exitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(quiz); err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to write quiz: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// newGenerator builds the same pipeline the API server uses.
func newGenerator(ctx context.Context, cfg *config.Config, l *slog.Logger) (quizGenerator, func(), error) {
	p, err := pipeline.New(ctx, cfg, l)
	if err != nil {
		return nil, nil, err
	}
	return p.Orchestrator, func() { _ = p.Close() }, nil
}
