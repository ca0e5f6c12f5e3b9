// Package cmd implements the CLI application to keep a trading calendar.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/config"
	"github.com/etnz/tradecal/date"
	"github.com/etnz/tradecal/logger"
	"github.com/etnz/tradecal/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// EnvToday overrides the current date, in M/D/YYYY format.
const EnvToday = "TRADECAL_TODAY"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "calendar")
	c.Register(&statsCmd{}, "calendar")
	c.Register(&holidaysCmd{}, "calendar")

	c.Register(&setCmd{}, "records")
	c.Register(&importCmd{}, "records")
	c.Register(&exportCmd{}, "records")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to $TRADECAL_CONFIG, then "+config.DefaultFile+")")
var dataPath = flag.String("data", "", "Path to the calendar data, a CSV file or a sqlite database")
var backendKind = flag.String("backend", "", "Storage backend: "+strings.Join(storage.Kinds, " or "))
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error")
var rawMarkdown = flag.Bool("raw", false, "Print markdown without terminal styling")

// loadConfig reads the configuration and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *backendKind != "" {
		cfg.Storage.Backend = *backendKind
	}
	if *dataPath != "" {
		cfg.Storage.Path = *dataPath
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// clock returns the function giving the current date.
func clock() (func() date.Date, error) {
	v := os.Getenv(EnvToday)
	if v == "" {
		return date.Today, nil
	}
	today, err := date.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvToday, err)
	}
	return func() date.Date { return today }, nil
}

// app holds what a command needs to work on the calendar.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	backend storage.Backend
	tracker *tradecal.Tracker
}

// openApp loads the configuration and the saved calendar.
//
// Options are passed to the tracker, after the logger and the clock.
func openApp(ctx context.Context, opts ...tradecal.Option) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})

	today, err := clock()
	if err != nil {
		return nil, err
	}

	path := cfg.StoragePath()
	backend, err := storage.Open(cfg.Storage.Backend, path, log)
	if err != nil {
		return nil, fmt.Errorf("opening storage %q: %w", path, err)
	}

	opts = append([]tradecal.Option{tradecal.WithLogger(log), tradecal.WithClock(today)}, opts...)
	tracker := tradecal.NewTracker(cfg.NewCalendar(), opts...)

	text, ok, err := backend.Load(ctx)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("loading calendar from %q: %w", path, err)
	}
	if ok {
		tracker.LoadCSV(text)
	} else {
		log.Info().Str("path", path).Msg("no saved calendar, starting empty")
	}

	return &app{cfg: cfg, log: log, backend: backend, tracker: tracker}, nil
}

// save writes the calendar back to the storage.
func (a *app) save(ctx context.Context) error {
	if err := a.backend.Save(ctx, a.tracker.CSV()); err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}
	return nil
}

func (a *app) Close() error { return a.backend.Close() }

// currency of the profits.
func (a *app) currency() string { return a.cfg.Calendar.Currency }

// printMarkdown prints markdown to stdout, styled for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseMonth parses a month number (1-12) or an English month name, possibly abbreviated.
func parseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month %d", n)
		}
		return time.Month(n), nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for m := time.January; m <= time.December; m++ {
			if strings.HasPrefix(strings.ToLower(m.String()), name) {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month %q", s)
}
