package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
// Unset flags leave the configuration file values in place.
type CLI struct {
	Root          string        `arg:"" optional:"" help:"Archive root directory (default: docs)"`
	Config        string        `short:"c" type:"existingfile" help:"YAML configuration file"`
	Sources       string        `short:"s" help:"URL list file, relative to the archive root"`
	RespectRobots bool          `short:"r" help:"Skip URLs disallowed by robots.txt"`
	KeepNoscript  bool          `help:"Keep <noscript> content in page bodies"`
	Markdown      bool          `short:"m" help:"Render page bodies as Markdown"`
	Timeout       time.Duration `short:"t" help:"Fetch timeout per page (default: 45s)"`
	Delay         string        `short:"d" placeholder:"DURATION" help:"Pause between fetches (default: 1s)"`
	UserAgent     string        `help:"User-Agent header sent with every request"`
	Preview       bool          `short:"p" help:"List the source URLs without fetching"`
	Debug         bool          `help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmirror"),
		kong.Description("Mirror a list of web pages into a Markdown archive with daily changelogs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := cli.config()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := newLogger(stderr, level)

	deps := NewDependencies(ctx, cfg, logger, stdout, stderr)

	if cli.Preview {
		return runPreview(deps)
	}
	return runMirror(deps)
}

// config resolves the effective configuration: defaults, then the
// configuration file, then command-line flags.
func (c *CLI) config() (docmirror.Config, error) {
	cfg := docmirror.DefaultConfig()

	if c.Config != "" {
		if err := yaml.LoadConfig(c.Config, &cfg); err != nil {
			return cfg, err
		}
	}

	if c.Root != "" {
		cfg.Root = c.Root
	}
	if c.Sources != "" {
		cfg.SourcesFile = c.Sources
	}
	if c.RespectRobots {
		cfg.RespectRobots = true
	}
	if c.KeepNoscript {
		cfg.StripNoscript = false
	}
	if c.Markdown {
		cfg.Markdown = true
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Delay != "" {
		d, err := time.ParseDuration(c.Delay)
		if err != nil {
			return cfg, docmirror.Errorf(docmirror.EINVALID, "invalid delay %q", c.Delay)
		}
		cfg.Delay = d
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
