package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradecal/config"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the calendar records to a CSV file" }
func (*exportCmd) Usage() string {
	return `tcal export [-o <file>]

  Writes all the records to a CSV file, trades_tracker_<year>.csv by default.
  Use '-o -' to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for the standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	csv := a.tracker.CSV()
	if c.output == "-" {
		fmt.Println(csv)
		return subcommands.ExitSuccess
	}

	output := c.output
	if output == "" {
		output = config.ExportFileName(a.tracker.Calendar().Year())
	}
	if err := os.WriteFile(output, []byte(csv), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d records to %s\n", a.tracker.Store().Len(), output)
	return subcommands.ExitSuccess
}
