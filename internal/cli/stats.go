package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command, which summarizes the graph.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the hypernym graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			snap, err := runner.Snapshot()
			if err != nil {
				return err
			}
			st := snap.Stats()
			langs, err := runner.Languages(ctx)
			if err != nil {
				return err
			}

			printKeyValue("Senses", fmt.Sprint(st.Nodes))
			printKeyValue("Hypernyms", fmt.Sprint(st.Edges))
			printKeyValue("Roots", fmt.Sprint(st.Roots))
			printKeyValue("Items", fmt.Sprint(st.Terminals))
			printKeyValue("Elements", fmt.Sprint(st.Nodes-st.Terminals))
			printKeyValue("Largest tree", fmt.Sprint(st.MaxSize))
			printKeyValue("Languages", fmt.Sprint(langs))
			return nil
		},
	}
}
