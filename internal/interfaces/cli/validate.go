package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lite-lake/dnsops/internal/infrastructure/persistence"
)

func newValidateCommand(ctx *Context) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a desired-state zone file",
		Long:  "Parse and validate the zone declaration without contacting the authority.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runValidate(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Desired-state zone file (YAML or JSON)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runValidate(file string) {
	zone, err := persistence.NewZoneLoader().LoadFile(file)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s is valid: zone %s with %d record set(s).\n", file, zone.Name, zone.Len())
}
