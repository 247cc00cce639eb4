package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/dnsops/internal/domain/entity"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
)

func newRecordCommand(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Set or delete a single record set",
		Long: "One-off record edits outside the declarative flow. The operation is\n" +
			"routed through the same executor as apply, so retry and reporting behave\n" +
			"identically.",
	}

	cmd.AddCommand(newRecordSetCommand(ctx))
	cmd.AddCommand(newRecordDeleteCommand(ctx))

	return cmd
}

func newRecordSetCommand(ctx *Context) *cobra.Command {
	var ttl int64

	cmd := &cobra.Command{
		Use:   "set <zone> <name> <type> <value>...",
		Short: "Create or replace one record set",
		Args:  cobra.MinimumNArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			zone := entity.CanonicalName(args[0])
			record := entity.Record{
				Name:    entity.QualifyName(args[1], zone),
				Type:    entity.RecordType(args[2]),
				TTL:     ttl,
				Content: args[3:],
			}

			desired, err := entity.NewZone(zone)
			if err != nil {
				fail(err)
			}
			if err := desired.AddRecord(&record); err != nil {
				fail(err)
			}

			cs := valueobject.NewChangeSet()
			for _, rs := range desired.RRSets() {
				cs.Add(valueobject.NewCreate(rs))
			}
			runSingleChange(ctx, zone, cs)
		},
	}

	cmd.Flags().Int64Var(&ttl, "ttl", 3600, "Record TTL in seconds")

	return cmd
}

func newRecordDeleteCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <zone> <name> <type>",
		Short: "Delete one record set",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			zone := entity.CanonicalName(args[0])
			target := &entity.RRSet{
				Name: entity.CanonicalName(entity.QualifyName(args[1], zone)),
				Type: entity.RecordType(args[2]),
			}

			cs := valueobject.NewChangeSet()
			cs.Add(valueobject.NewDelete(target))
			runSingleChange(ctx, zone, cs)
		},
	}
}

func runSingleChange(ctx *Context, zone string, cs *valueobject.ChangeSet) {
	cfg, err := ctx.LoadConfig()
	if err != nil {
		fail(err)
	}

	client := ctx.Client(cfg)
	summary := ctx.Executor(cfg, client).Apply(context.Background(), zone, cs)
	displaySummary(summary)
	if summary.Verdict() != valueobject.VerdictFull {
		os.Exit(ExitPartialApply)
	}
}
