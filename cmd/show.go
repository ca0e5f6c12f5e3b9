package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	month string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the trading calendar" }
func (*showCmd) Usage() string {
	return `tcal show [-m <month>]

  Displays every day of the calendar year with its record, and the statistics of each month.
  Use -m to display a single month.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to display, a number (1-12) or a name (defaults to the whole year)")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	cal, store, stats := a.tracker.Calendar(), a.tracker.Store(), a.tracker.Stats()

	if c.month == "" {
		printMarkdown(renderer.RenderCalendar(renderer.NewCalendar(cal, store, stats, a.currency())))
		return subcommands.ExitSuccess
	}

	month, err := parseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderMonth(renderer.NewMonth(cal, store, stats[month-1], a.currency())))
	return subcommands.ExitSuccess
}
