// Command reserve books a tool from the command line.
//
//	TOOLSHARE_TOKEN=... reserve -tool <id> -start 2024-06-10 -end 2024-06-12
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toolshare/internal/client/reservationform"
	"toolshare/internal/client/toolshare"
	"toolshare/internal/domain/availability"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/config"

	"github.com/google/uuid"
)

type options struct {
	toolID       uuid.UUID
	start, end   time.Time
	dryRun       bool
	quoteTimeout time.Duration
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("reserve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		toolID = fs.String("tool", "", "tool ID")
		start  = fs.String("start", "", "first day, YYYY-MM-DD")
		end    = fs.String("end", "", "last day, YYYY-MM-DD")
		opts   options
	)
	fs.BoolVar(&opts.dryRun, "dry-run", false, "quote only, do not submit")
	fs.DurationVar(&opts.quoteTimeout, "quote-timeout", 10*time.Second, "how long to wait for the price quote")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var err error
	if opts.toolID, err = uuid.Parse(*toolID); err != nil {
		return options{}, fmt.Errorf("-tool: %w", err)
	}
	if opts.start, err = clock.ParseDate(*start); err != nil {
		return options{}, fmt.Errorf("-start: %w", err)
	}
	if opts.end, err = clock.ParseDate(*end); err != nil {
		return options{}, fmt.Errorf("-end: %w", err)
	}
	return opts, nil
}

func run(ctx context.Context, opts options, cfg config.ClientConfig, clk clock.Clock, out io.Writer) error {
	client, err := toolshare.New(cfg)
	if err != nil {
		return err
	}

	form := reservationform.New(opts.toolID, reservationform.Deps{
		Ranges:    client,
		Quoter:    client,
		Submitter: client,
		Clock:     clk,
	})
	defer form.Close()

	if err := form.Load(ctx); err != nil {
		return fmt.Errorf("load availability: %w", err)
	}
	for _, r := range form.State().Booked {
		fmt.Fprintf(out, "booked  %s\n", r)
	}

	d := form.SetDates(opts.start, opts.end)
	if !d.QuoteNeeded {
		return d.BlockingError(form.State().Quote)
	}

	quoteCtx, cancel := context.WithTimeout(ctx, opts.quoteTimeout)
	defer cancel()
	q, err := form.AwaitQuote(quoteCtx)
	if err != nil {
		return fmt.Errorf("waiting for quote: %w", err)
	}
	if q.State != availability.QuoteResolved {
		return d.BlockingError(q)
	}
	fmt.Fprintf(out, "price   %s for %d day(s)\n", q.Price, form.State().Request.Range().Days())

	if opts.dryRun {
		return nil
	}

	res, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created %s (%s)\n", res.ID, res.Status)
	return nil
}

func main() {
	os.Exit(reserve())
}

// reserve returns the process exit code so deferred cleanups still run.
func reserve() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Error("invalid arguments", "error", err)
		return 2
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := setupTracing(ctx)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		return 2
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	if err := run(ctx, opts, cfg, clock.NewRealClockIn(cfg.Location()), os.Stdout); err != nil {
		var rejected *availability.SubmissionRejectedError
		if errors.As(err, &rejected) {
			logger.Error("reservation rejected", "status", rejected.Status, "message", rejected.Message)
		} else {
			logger.Error("reservation failed", "error", err)
		}
		return 1
	}
	return 0
}
