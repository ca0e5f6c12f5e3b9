package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/date"
	"github.com/etnz/tradecal/renderer"
	"github.com/google/subcommands"
)

type setCmd struct {
	date  string
	force bool
	// values by field, only for the flags given on the command line.
	values map[tradecal.Field]*string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "record the trading activity of a day" }
func (*setCmd) Usage() string {
	return `tcal set [-d <date>] [-underlying <symbol>] [-profit <amount>] [-trades <count>] [-force]

  Records the underlying traded, the profit and the number of trades of a day.
  Only the fields given are changed. An empty value clears a field.

  Holidays and weekends are closed days and cannot be edited unless -force is set.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to edit in M/D/YYYY format (defaults to today)")
	f.BoolVar(&c.force, "force", false, "Edit the day even if the market is closed or it is out of the calendar year")
	c.values = make(map[tradecal.Field]*string)
	for _, field := range []tradecal.Field{tradecal.Underlying, tradecal.Profit, tradecal.Trades} {
		c.values[field] = new(string)
	}
	f.StringVar(c.values[tradecal.Underlying], "underlying", "", "Underlying traded, e.g. SPY")
	f.StringVar(c.values[tradecal.Profit], "profit", "", "Profit of the day, negative for a loss")
	f.StringVar(c.values[tradecal.Trades], "trades", "", "Number of trades of the day")
}

// edits returns the fields given on the command line, in field order.
func (c *setCmd) edits(f *flag.FlagSet) (fields []tradecal.Field) {
	given := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { given[fl.Name] = true })
	for _, field := range []tradecal.Field{tradecal.Underlying, tradecal.Profit, tradecal.Trades} {
		if given[field.String()] {
			fields = append(fields, field)
		}
	}
	return fields
}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields := c.edits(f)
	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to set, use -underlying, -profit or -trades")
		return subcommands.ExitUsageError
	}
	for _, field := range fields {
		if v := *c.values[field]; strings.ContainsAny(v, ",\r\n") {
			fmt.Fprintf(os.Stderr, "Error: invalid %s %q: commas and line breaks are not allowed\n", field, v)
			return subcommands.ExitUsageError
		}
	}

	var stats []tradecal.MonthlyStats
	a, err := openApp(ctx, tradecal.WithNotifier(tradecal.NotifierFunc(func(s []tradecal.MonthlyStats, _ *tradecal.Store) {
		stats = s
	})))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	day := a.tracker.Today()
	if c.date != "" {
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	cal := a.tracker.Calendar()
	if err := checkEditable(cal, day); err != nil && !c.force {
		fmt.Fprintf(os.Stderr, "Error: %v (use -force to edit it anyway)\n", err)
		return subcommands.ExitFailure
	}

	for _, field := range fields {
		value := strings.TrimSpace(*c.values[field])
		if field == tradecal.Underlying && !slices.Contains(a.cfg.Calendar.Underlyings, value) {
			a.log.Warn().Str("underlying", value).Msg("underlying is not in the configured list")
		}
		a.tracker.CommitField(day, field, value)
	}

	if err := a.save(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if day.Year() == cal.Year() {
		printMarkdown(renderer.RenderMonth(renderer.NewMonth(cal, a.tracker.Store(), stats[day.Month()-1], a.currency())))
	} else {
		fmt.Printf("Recorded %s, out of the %d calendar\n", day, cal.Year())
	}
	return subcommands.ExitSuccess
}

// checkEditable returns an error if the day cannot be edited in the calendar.
func checkEditable(cal *tradecal.Calendar, day date.Date) error {
	if day.Year() != cal.Year() {
		return fmt.Errorf("%s is not in the %d calendar", day, cal.Year())
	}
	switch cal.Label(day) {
	case tradecal.Holiday:
		name, _ := cal.HolidayName(day)
		return fmt.Errorf("%s is a market holiday (%s)", day, name)
	case tradecal.Weekend:
		return fmt.Errorf("%s is on a weekend", day)
	}
	return nil
}
