package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/readmefeed/pkg/io"
	"github.com/matzehuels/readmefeed/pkg/pipeline"
)

func (c *CLI) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file>",
		Short: "Show a run report written by update --report",
		Example: `  readmefeed update --report run.json
  readmefeed report run.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}

			rows := make([][]string, len(rep.Regions))
			for i, reg := range rep.Regions {
				rows[i] = []string{reg.Name, reg.Source, reg.Outcome, strconv.FormatInt(reg.DurationMS, 10) + "ms", reg.Error}
			}
			printTable(c.Out, []string{"REGION", "SOURCE", "OUTCOME", "DURATION", "ERROR"}, rows)

			printInfo(c.Out, "Run %s on %s", rep.RunID, rep.Document)
			printDetail(c.Out, "%d updated, %d degraded, %d skipped",
				rep.Count(pipeline.Updated), rep.Count(pipeline.Degraded), rep.Count(pipeline.Skipped))
			if !rep.Saved {
				printWarning(c.Out, "Document was not saved")
			}
			return nil
		},
	}
}
