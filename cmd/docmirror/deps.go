package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/difflib"
	"github.com/fwojciec/docmirror/fs"
	"github.com/fwojciec/docmirror/goquery"
	"github.com/fwojciec/docmirror/htmltomarkdown"
	dochttp "github.com/fwojciec/docmirror/http"
	"github.com/fwojciec/docmirror/mirror"
	"github.com/fwojciec/docmirror/robotstxt"
	mirrorslog "github.com/fwojciec/docmirror/slog"
	"github.com/google/uuid"
)

// Dependencies holds the wired services for a run.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  docmirror.Config
	Sources docmirror.SourceLoader
	Archive *fs.Archive
	Mirror  *mirror.Mirror
}

// newLogger returns a text logger tagging every record with a run id.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}

// NewDependencies wires the production services described by cfg.
func NewDependencies(ctx context.Context, cfg docmirror.Config, logger *slog.Logger, stdout, stderr io.Writer) *Dependencies {
	sources := fs.NewSourceFile(cfg.SourcesPath())
	archive := fs.NewArchive(cfg, difflib.NewDiffer())

	fetcher := mirrorslog.NewLoggingFetcher(
		dochttp.NewFetcher(
			dochttp.WithTimeout(cfg.Timeout),
			dochttp.WithUserAgent(cfg.UserAgent),
		),
		logger,
	)

	var extractorOpts []goquery.Option
	if !cfg.StripNoscript {
		extractorOpts = append(extractorOpts, goquery.KeepNoscript())
	}

	m := &mirror.Mirror{
		Sources:   sources,
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(extractorOpts...),
		Store:     archive,
		Index:     archive,
		Changelog: archive,
		Logger:    logger,
		Delay:     cfg.Delay,
	}

	if cfg.RespectRobots {
		m.Robots = mirrorslog.NewLoggingRobotsPolicy(
			robotstxt.NewPolicy(
				robotstxt.WithTimeout(cfg.Timeout),
				robotstxt.WithUserAgent(cfg.UserAgent),
			),
			logger,
		)
	}
	if cfg.Markdown {
		m.Converter = htmltomarkdown.NewConverter()
	}

	return &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Config:  cfg,
		Sources: sources,
		Archive: archive,
		Mirror:  m,
	}
}
