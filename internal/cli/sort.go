package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gotsort/pkg/pipeline"
)

// sortCommand creates the sort command, the classic ordering driver.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Topologically sort a dependency graph",
		Long: `Topologically sort a dependency graph.

Reads whitespace-separated "node successor..." lines and prints one name
per line, each node before all of its successors. Reads stdin when no file
(or "-") is given. TOML manifests and graph.json files are detected by
their extension.

Examples:
  gotsort sort deps.txt
  echo "a b" | gotsort sort
  gotsort sort deps.toml --format json -o order.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSort(cmd.Context(), path, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "output format: text (default), json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runSort parses, sorts, and writes the ordering in the requested format.
func (c *CLI) runSort(ctx context.Context, path, format, output string) error {
	if format != pipeline.FormatText && format != pipeline.FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", format)
	}

	input, name, err := readInput(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:       input,
		InputFormat: detectInputFormat(path),
		Formats:     []string{format},
		Logger:      c.Logger,
	})
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(result.Artifacts[format]); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Sorted %s", name)
		printFile(output)
		printStats(result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	return nil
}
