package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/pkg/edgelist"
)

// newInspectCmd creates the inspect command that validates an edge-list file
// and summarizes its contents. The scan streams, so heavy-tier files are
// fine.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Validate an edge-list file and summarize its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := edgelist.ReadStats(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "header:     %s\n", stats.Header)
			fmt.Fprintf(out, "edges:      %d\n", stats.Edges)
			fmt.Fprintf(out, "max node:   %d\n", stats.MaxNode)
			fmt.Fprintf(out, "self loops: %d\n", stats.SelfLoops)

			if stats.SelfLoops > 0 {
				return fmt.Errorf("%s violates the no-self-loop invariant (%d self loops)", args[0], stats.SelfLoops)
			}
			return nil
		},
	}
}
