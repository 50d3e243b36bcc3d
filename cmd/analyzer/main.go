package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentiscore/config"
	"github.com/spacesedan/sentiscore/internal/export"
	"github.com/spacesedan/sentiscore/internal/ingest"
	"github.com/spacesedan/sentiscore/internal/logging"
	"github.com/spacesedan/sentiscore/internal/pipeline"
	"github.com/spacesedan/sentiscore/internal/report"
	"github.com/spacesedan/sentiscore/internal/sentiment"
)

const (
	modeAdvanced = "advanced"
	modeBase     = "base"
	modeTalk     = "talk"
	modeAuthor   = "author"
)

func main() {
	mode := flag.String("mode", modeAdvanced, "output: advanced, base, talk or author")
	author := flag.String("author", "", "author name for -mode author")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	settings := config.FromEnv()
	logging.InitLogger(settings.LogLevel)

	if err := run(settings, *mode, *author); err != nil {
		slog.Error("[Analyzer] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(settings config.Settings, mode, author string) error {
	switch mode {
	case modeAdvanced, modeBase, modeTalk, modeAuthor:
	default:
		return fmt.Errorf("[Analyzer] unknown mode %q", mode)
	}
	if mode == modeAuthor && author == "" {
		return fmt.Errorf("[Analyzer] -author is required with -mode %s", modeAuthor)
	}

	posts, err := ingest.LoadPosts(settings.PostsPath)
	if err != nil {
		return err
	}
	if settings.StripMarkdown {
		ingest.StripMarkdown(posts)
	}
	positive := ingest.LoadWordList(settings.PositiveWordsPath)
	negative := ingest.LoadWordList(settings.NegativeWordsPath)

	res := pipeline.Analyze(posts, positive, negative, pipeline.DefaultOptions())

	switch mode {
	case modeBase:
		printBaseStats(os.Stdout, res.BaseStats)
		return nil
	case modeTalk:
		printTalkStats(os.Stdout, res.TalkStats)
		return nil
	case modeAuthor:
		printAuthorExtremes(os.Stdout, res, author)
		return nil
	}

	printAdvanced(os.Stdout, res.Summaries)

	in := report.Input{
		Analyses:  res.Analyses,
		Summaries: res.Summaries,
		BaseStats: res.BaseStats,
	}
	if settings.ReferenceScores {
		in.Reference = sentiment.NewReferenceScorer()
	}
	rep := report.Build(in)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// Restore default handling so a second signal kills the process.
		<-ctx.Done()
		stop()
	}()

	exporters, cleanup, err := buildExporters(ctx, settings)
	defer cleanup()
	if err != nil {
		return err
	}
	return export.RunAll(ctx, exporters, rep)
}
