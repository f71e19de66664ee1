package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/document"
	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/inject"
)

func (c *CLI) regionsCommand() *cobra.Command {
	var docPath string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List configured regions and check their markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if docPath != "" {
				cfg.Document = docPath
			}
			c.printRegions(cfg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&docPath, "document", "d", "", "document to check (default from config)")
	return cmd
}

// printRegions prints the region table. A document that cannot be read is
// reported but does not fail the command.
func (c *CLI) printRegions(cfg *config.Config) {
	regions := make([]inject.Region, len(cfg.Regions))
	for i, r := range cfg.Regions {
		regions[i] = r.Inject()
	}

	doc, err := document.Load(cfg.Document)
	var present map[string]bool
	if err != nil {
		printWarning(c.Out, "%s", errors.UserMessage(err))
	} else {
		present = doc.Regions(regions)
	}

	rows := make([][]string, len(cfg.Regions))
	for i, r := range cfg.Regions {
		status := "?"
		if doc != nil {
			status = iconError
			if present[r.Name] {
				status = iconSuccess
			}
		}
		rows[i] = []string{r.Name, r.Kind(), regions[i].Start, regions[i].End, status}
	}
	printTable(c.Out, []string{"REGION", "SOURCE", "START", "END", "FOUND"}, rows)

	if doc == nil {
		return
	}
	for _, pair := range inject.Overlaps(doc.String(), regions) {
		printWarning(c.Out, "regions %s and %s overlap; results are undefined", pair[0], pair[1])
	}
	missing := 0
	for _, r := range cfg.Regions {
		if !present[r.Name] {
			missing++
		}
	}
	if missing > 0 {
		printDetail(c.Out, "%d of %d regions have no markers in %s and will be skipped", missing, len(cfg.Regions), cfg.Document)
	}
}
