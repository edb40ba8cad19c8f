package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/fale"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Service   fale.Service
	Converter fale.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `short:"t" default:"10s" help:"Timeout for each outbound fetch"`
	UserAgent string        `default:"fale/1.0 (+https://github.com/fwojciec/fale)" help:"User-Agent sent to remote sites"`
	Find      string        `default:"yale" hidden:"" help:"Word to replace"`
	Replace   string        `default:"fale" hidden:"" help:"Replacement word"`
	LogFile   string        `type:"path" env:"FALE_LOG_FILE" help:"Write logs to a rotating file instead of stderr"`
	LogLevel  slog.Level    `default:"info" help:"Log level (debug, info, warn, error)"`

	Serve ServeCmd `cmd:"" help:"Serve the web interface and JSON API"`
	Fetch FetchCmd `cmd:"" help:"Fetch pages and print the rewritten content"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `short:"a" default:":3001" env:"FALE_ADDR" help:"Listen address"`
	Rate  float64 `default:"0" help:"Requests per second allowed per client (0 disables limiting)"`
	Burst int     `default:"5" help:"Request burst allowed per client when rate limiting"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs        []string `arg:"" name:"url" help:"URLs to fetch"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
	Markdown    bool     `short:"m" xor:"format" help:"Print content as Markdown"`
	JSON        bool     `short:"j" xor:"format" help:"Print one JSON object per URL"`
}
