package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newServerCommand(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Inspect the authority server",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List server instances behind the API endpoint",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := ctx.LoadConfig()
			if err != nil {
				fail(err)
			}
			servers, err := ctx.Client(cfg).ListServers(context.Background())
			if err != nil {
				fail(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDAEMON\tVERSION")
			for _, s := range servers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.DaemonType, s.Version)
			}
			w.Flush()
		},
	})

	return cmd
}
