package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the statistics of each month" }
func (*statsCmd) Usage() string {
	return `tcal stats

  Displays, for each month, the total profit and the number of days without trades,
  with a profit and with a loss. Holidays, weekends and future days are not counted.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	v := renderer.NewStats(a.tracker.Calendar().Year(), a.tracker.Stats(), a.currency())
	printMarkdown(renderer.RenderStats(v))
	return subcommands.ExitSuccess
}
