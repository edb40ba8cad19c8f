package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fale"
	"github.com/fwojciec/fale/goquery"
	"github.com/fwojciec/fale/htmltomarkdown"
	falehttp "github.com/fwojciec/fale/http"
	"github.com/fwojciec/fale/proxy"
	faleslog "github.com/fwojciec/fale/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service replaces the fetch pipeline when set. Used for end-to-end testing.
	Service fale.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fale"),
		kong.Description("Fetch web pages with every Yale rewritten to Fale"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fale --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(stderr, cli.LogFile, cli.LogLevel)
	defer closeLog()
	deps.Logger = logger

	if m.Service != nil {
		deps.Service = m.Service
	} else {
		fetcher := falehttp.NewFetcher(
			falehttp.WithTimeout(cli.Timeout),
			falehttp.WithUserAgent(cli.UserAgent),
		)
		defer fetcher.Close()

		transformer := goquery.NewTransformer(goquery.WithSubstitution(fale.Substitution{
			Find:    cli.Find,
			Replace: cli.Replace,
		}))
		svc := proxy.NewService(
			faleslog.NewLoggingFetcher(fetcher, logger),
			goquery.NewRewriter(transformer),
		)
		deps.Service = faleslog.NewLoggingService(svc, logger)
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// newLogger builds the program logger. Output goes to w unless path names
// a log file, which is then rotated by size.
func newLogger(w io.Writer, path string, level slog.Level) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), func() {}
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }
}
