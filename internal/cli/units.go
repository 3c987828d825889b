package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Inspect the unit catalog",
	}

	cmd.AddCommand(newUnitsListCmd())

	return cmd
}

func newUnitsListCmd() *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the units the catalog resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := registry.Names()

			if dimension != "" {
				dims, ok := registry.Dimension(dimension)
				if !ok {
					return fmt.Errorf("unknown dimension %q", dimension)
				}
				filtered := names[:0]
				for _, name := range names {
					u, ok := registry.Lookup(name)
					if ok && u.Dims().Equal(dims) {
						filtered = append(filtered, name)
					}
				}
				names = filtered
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, name := range names {
				u, ok := registry.Lookup(name)
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", name, u.Dims())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dimension, "dimension", "", "only list units of this dimension")

	return cmd
}
