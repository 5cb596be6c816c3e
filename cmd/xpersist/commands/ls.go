package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List cache files in the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := c.app.Settings().CacheDir

			entries, err := os.ReadDir(dir)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintf(cmd.OutOrStdout(), "cache directory %s does not exist\n", dir)
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to read cache directory"), "path", dir)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				info, err := entry.Info()
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", entry.Name(), info.Size(), info.ModTime().Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
}
