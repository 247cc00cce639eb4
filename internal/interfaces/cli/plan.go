package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newPlanCommand(ctx *Context) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the changes a reconciliation would apply",
		Long:  "Compute the diff between the declared zone and the authority's records without applying anything.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runPlan(ctx, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Desired-state zone file (YAML or JSON)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runPlan(ctx *Context, file string) {
	cfg, err := ctx.LoadConfig()
	if err != nil {
		fail(err)
	}

	zone, cs, err := ctx.Workflow(cfg).Plan(context.Background(), file)
	if err != nil {
		fail(err)
	}

	displayChangeSet(zone.Name, cs)
}
