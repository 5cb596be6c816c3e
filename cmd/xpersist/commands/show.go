package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/xpersist/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a summary of a cached dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			vars, _ := cmd.Flags().GetStringSlice("vars")

			ds, err := c.app.Open(args[0], domain.Format(format), domain.ReadOptions{Variables: vars})
			if err != nil {
				return err
			}

			names := make([]string, 0, len(ds.Variables))
			for name := range ds.Variables {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				v := ds.Variables[name]
				dims := strings.Join(v.Dims, ",")
				if dims == "" {
					dims = "-"
				}
				fmt.Fprintf(out, "%s\tdims=%s\tlen=%d\n", name, dims, len(v.Values))
			}
			for k, v := range ds.Attrs {
				fmt.Fprintf(out, "attr %s=%s\n", k, v)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "", "Storage format (json or yaml)")
	cmd.Flags().StringSlice("vars", nil, "Restrict output to the named variables")
	return cmd
}
