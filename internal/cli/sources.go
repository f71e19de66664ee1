package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) sourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List available source kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := c.Registry.Kinds()
			rows := make([][]string, len(kinds))
			for i, k := range kinds {
				api := k.API
				if api == "" {
					api = "offline"
				}
				rows[i] = []string{k.Name, k.Title, api, k.Description}
			}
			printTable(c.Out, []string{"KIND", "TITLE", "API", "DESCRIPTION"}, rows)
			return nil
		},
	}
}
