package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/pipeline"
)

// formatText prints the report and an outline of the tree to the terminal.
const formatText = "text"

type showOptions struct {
	limit    int
	lang     string
	format   string
	layout   string
	detailed bool
	scale    float64
	output   string
}

// showCommand creates the show command, which extracts the bounded tree
// below a sense and prints or renders it.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show <sense-key|lemma>",
		Short: "Show the bounded hyponym tree below a sense",
		Long: `Show the tree of senses below a sense, cut off after --limit distinct senses
in breadth-first order.

A lemma that names several senses shows the first; pass a sense key to pick
another. Formats other than text are written to --output or stdout.`,
		Example: `  synsetree show entity.n.01
  synsetree show dog --limit 50
  synsetree show animal.n.01 -f svg -o animal.svg
  synsetree show animal.n.01 -f png --layout dot -o animal.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "maximum distinct senses (default graph_node_limit)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "display language (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, dot, svg, png, pdf")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "graphviz layout: twopi (radial) or dot (layered)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "mark nodes as ELEMENT or ITEM in rendered output")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) runShow(ctx context.Context, input string, opts showOptions) error {
	ropts := pipeline.RenderOptions{
		Format:   opts.format,
		Layout:   opts.layout,
		Detailed: opts.detailed,
		Scale:    opts.scale,
	}
	if opts.format != formatText {
		if err := ropts.ValidateAndSetDefaults(); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()
	if opts.limit == 0 {
		opts.limit = c.cfg.Graph.NodeLimit
	}
	if opts.lang == "" {
		opts.lang = c.cfg.Graph.Language
	}

	senses, err := runner.Resolve(ctx, input, opts.lang)
	if err != nil {
		return err
	}
	if len(senses) > 1 {
		printInfo("%q has %d senses, showing %s", input, len(senses), senses[0].Key)
		for _, s := range senses[1:] {
			printDetail("%s  %s", s.Key, truncate(s.Definition, 60))
		}
	}

	spinner := newSpinnerWithContext(ctx, "Extracting...")
	spinner.Start()
	view, err := runner.Explore(ctx, pipeline.Options{
		Root:     senses[0].Key,
		Limit:    opts.limit,
		Language: opts.lang,
		Progress: extractProgress(spinner, "Extracting"),
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	if opts.format == formatText {
		writeReport(os.Stdout, view)
		fmt.Println()
		writeTree(os.Stdout, view.Tree, view.Snapshot().Kind)
		return nil
	}

	data, err := runner.Render(ctx, view, ropts)
	if err != nil {
		return err
	}
	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	for _, line := range view.Report() {
		printDetail("%s", line)
	}
	printFile(opts.output)
	return nil
}
