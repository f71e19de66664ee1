package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readmefeed/pkg/document"
	"github.com/matzehuels/readmefeed/pkg/render"
)

func (c *CLI) previewCommand() *cobra.Command {
	var (
		docPath string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the document to a standalone HTML page",
		Example: `  readmefeed preview --out readme.html
  readmefeed preview -d docs/README.md > page.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if docPath == "" {
				cfg, err := c.loadConfig(cmd)
				if err != nil {
					return err
				}
				docPath = cfg.Document
			}
			page, err := previewPage(docPath)
			if err != nil {
				return err
			}
			if out == "" {
				_, err := fmt.Fprint(c.Out, page)
				return err
			}
			if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			printSuccess(c.Out, "Preview written")
			printFile(c.Out, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&docPath, "document", "d", "", "document to render (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func previewPage(path string) (string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	body, err := render.Markdown(doc.String())
	if err != nil {
		return "", err
	}
	return render.Page(filepath.Base(path), body), nil
}
