package cli

import (
	"github.com/spf13/cobra"

	"github.com/graphforge/graphforge/pkg/plan"
)

// newSizesCmd creates the sizes command that reports per-file sizes of a
// generated corpus directory without running anything.
func newSizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes [dir]",
		Short: "Report the size of every edge-list file under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := plan.DefaultDataDir
			if len(args) == 1 {
				dir = args[0]
			}

			sizes, err := plan.Sizes(dir)
			if err != nil {
				return err
			}
			printSizes(cmd, sizes)
			return nil
		},
	}
}
