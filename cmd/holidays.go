package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal/renderer"
	"github.com/google/subcommands"
)

type holidaysCmd struct{}

func (*holidaysCmd) Name() string     { return "holidays" }
func (*holidaysCmd) Synopsis() string { return "list the market holidays" }
func (*holidaysCmd) Usage() string {
	return `tcal holidays

  Lists the market holidays of the calendar year. Holidays are set in the configuration file.
`
}

func (c *holidaysCmd) SetFlags(f *flag.FlagSet) {}

func (c *holidaysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderHolidays(renderer.NewHolidays(cfg.NewCalendar())))
	return subcommands.ExitSuccess
}
