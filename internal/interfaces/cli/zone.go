package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lite-lake/dnsops/internal/domain/entity"
	"github.com/lite-lake/dnsops/internal/infrastructure/pdns"
)

func newZoneCommand(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Manage zones on the authority server",
	}

	cmd.AddCommand(newZoneListCommand(ctx))
	cmd.AddCommand(newZoneQueryCommand(ctx))
	cmd.AddCommand(newZoneCreateCommand(ctx))
	cmd.AddCommand(newZoneDeleteCommand(ctx))

	return cmd
}

func newZoneListCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List zones",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := ctx.LoadConfig()
			if err != nil {
				fail(err)
			}
			zones, err := ctx.Client(cfg).ListZones(context.Background())
			if err != nil {
				fail(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tSERIAL\tDNSSEC")
			for _, z := range zones {
				fmt.Fprintf(w, "%s\t%s\t%d\t%t\n", z.Name, z.Kind, z.Serial, z.DNSSec)
			}
			w.Flush()
		},
	}
}

func newZoneQueryCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "query <zone>",
		Short: "Show a zone with its record sets",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := ctx.LoadConfig()
			if err != nil {
				fail(err)
			}
			zone, err := ctx.Client(cfg).GetZone(context.Background(), entity.CanonicalName(args[0]))
			if err != nil {
				fail(err)
			}

			fmt.Printf("%s (%s, serial %d)\n", zone.Name, zone.Kind, zone.Serial)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tTTL\tCONTENT")
			for _, rs := range zone.RRSets {
				for _, rec := range rs.Records {
					content := rec.Content
					if rec.Disabled {
						content += " (disabled)"
					}
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", rs.Name, rs.Type, rs.TTL, content)
				}
			}
			w.Flush()
		},
	}
}

func newZoneCreateCommand(ctx *Context) *cobra.Command {
	var (
		nameservers []string
		masters     []string
		account     string
		soa         pdns.SOAParams
	)

	cmd := &cobra.Command{
		Use:   "create <zone>",
		Short: "Create a zone",
		Long: "Create a Native zone with an initial SOA when nameservers are given,\n" +
			"or a Slave zone fed from the given masters when they are not.",
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := ctx.LoadConfig()
			if err != nil {
				fail(err)
			}

			request := pdns.NewZoneRequest(args[0], account, nameservers, masters, soa)
			created, err := ctx.Client(cfg).CreateZone(context.Background(), request)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Created zone %s (%s).\n", created.Name, created.Kind)
		},
	}

	cmd.Flags().StringSliceVar(&nameservers, "nameserver", nil, "Authoritative nameserver (repeatable)")
	cmd.Flags().StringSliceVar(&masters, "master", nil, "Master server for a slave zone (repeatable)")
	cmd.Flags().StringVar(&account, "account", "hostmaster", "SOA responsible account")
	cmd.Flags().Int64Var(&soa.Refresh, "refresh", 0, "SOA refresh seconds")
	cmd.Flags().Int64Var(&soa.Retry, "retry", 0, "SOA retry seconds")
	cmd.Flags().Int64Var(&soa.Expire, "expire", 0, "SOA expire seconds")
	cmd.Flags().Int64Var(&soa.NegCaching, "neg-caching", 0, "SOA negative-caching seconds")

	return cmd
}

func newZoneDeleteCommand(ctx *Context) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <zone>",
		Short: "Delete a zone and all of its records",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := entity.CanonicalName(args[0])
			if !yes && !Confirm(fmt.Sprintf("Delete zone %s and all of its records?", name), false) {
				fmt.Println("Cancelled.")
				return
			}

			cfg, err := ctx.LoadConfig()
			if err != nil {
				fail(err)
			}
			if err := ctx.Client(cfg).DeleteZone(context.Background(), name); err != nil {
				fail(err)
			}
			fmt.Printf("Deleted zone %s.\n", name)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without confirmation")

	return cmd
}
