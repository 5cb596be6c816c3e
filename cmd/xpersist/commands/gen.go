package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/xpersist/internal/app"
	"go.trai.ch/xpersist/internal/core/domain"
)

func (c *CLI) newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <generator>",
		Short: "Run a built-in dataset generator through the cache",
		Long: "Run one of the built-in deterministic dataset generators (" +
			strings.Join(app.GeneratorNames(), ", ") +
			") through the persist pipeline and report the cache action taken.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _ := cmd.Flags().GetFloat64("scale")
			name, _ := cmd.Flags().GetString("name")
			format, _ := cmd.Flags().GetString("format")
			trust, _ := cmd.Flags().GetBool("trust")
			force, _ := cmd.Flags().GetBool("force")

			gen, err := app.GeneratorFor(args[0])
			if err != nil {
				return err
			}

			p, err := c.app.Persist(gen, app.PersistOptions{
				Name:           name,
				Format:         domain.Format(format),
				Key:            args[0],
				Trust:          trust,
				ForceOverwrite: force,
			})
			if err != nil {
				return err
			}

			ds, err := p.CallKW(cmd.Context(), nil, map[string]any{"scale": scale})
			if err != nil {
				return err
			}

			action, _ := c.app.LastAction(p.Identity())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d variables)\n", action, p.Identity(), len(ds.Variables))
			return nil
		},
	}
	cmd.Flags().Float64("scale", 1.0, "Scale factor passed to the generator")
	cmd.Flags().StringP("name", "n", "", "Cache file name (generated when omitted)")
	cmd.Flags().String("format", "", "Storage format (json or yaml)")
	cmd.Flags().Bool("trust", false, "Accept an existing cache file without verification")
	cmd.Flags().Bool("force", false, "Always overwrite an existing cache file")
	return cmd
}
