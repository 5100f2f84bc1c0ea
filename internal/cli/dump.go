package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdsketch/kdsketch/pkg/render/shape"
	"github.com/kdsketch/kdsketch/pkg/treeio"
)

// dumpCommand creates the dump command for printing a tree's nested shape
// to stdout.
func (c *CLI) dumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the nested shape of a k-d tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := treeio.ReadTreeFile(args[0])
			if err != nil {
				return err
			}
			if err := shape.Write(os.Stdout, t); err != nil {
				return err
			}
			fmt.Println()
			return nil
		},
	}
	return cmd
}
