package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lite-lake/dnsops/internal/config"
	"github.com/lite-lake/dnsops/internal/domain"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
	"github.com/lite-lake/dnsops/internal/infrastructure/logger"
)

func newApplyCommand(ctx *Context) *cobra.Command {
	var (
		file   string
		dryRun bool
		yes    bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile the zone with the declared state",
		Long:  "Compute the diff between the declared zone and the authority's records and apply it through the REST API.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runApply(ctx, file, dryRun, yes, watch)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Desired-state zone file (YAML or JSON)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and show the plan but apply nothing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Apply without confirmation")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and re-reconcile when the zone file changes")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runApply(ctx *Context, file string, dryRun, yes, watch bool) {
	cfg, err := ctx.LoadConfig()
	if err != nil {
		fail(err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		watchAndApply(runCtx, ctx, cfg, file, dryRun, yes)
		return
	}

	code := applyOnce(runCtx, ctx, cfg, file, dryRun, yes)
	os.Exit(code)
}

func applyOnce(runCtx context.Context, ctx *Context, cfg *config.Config, file string, dryRun, yes bool) int {
	wf := ctx.Workflow(cfg)

	zone, cs, err := wf.Plan(runCtx, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	displayChangeSet(zone.Name, cs)
	if cs.IsEmpty() {
		return ExitOK
	}
	if dryRun {
		fmt.Println(mutedStyle.Render("Dry run: nothing applied."))
		return ExitOK
	}
	if !yes && !Confirm("\nApply these changes?", false) {
		fmt.Println("Cancelled.")
		return ExitOK
	}

	// Apply re-plans under the run lock so the executed diff is never
	// staler than the declaration on disk.
	summary, err := wf.Apply(runCtx, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	displaySummary(summary)
	switch summary.Verdict() {
	case valueobject.VerdictFull:
		return ExitOK
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", domain.ErrPartialApply)
		return ExitPartialApply
	}
}

// watchAndApply keeps reconciling until interrupted: once at startup, then
// on every write to the zone file. Events are debounced because editors
// produce bursts of writes for a single save.
func watchAndApply(runCtx context.Context, ctx *Context, cfg *config.Config, file string, dryRun, yes bool) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fail(domain.WrapOp("start watcher", err))
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which would
	// drop a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		fail(domain.WrapOp("watch zone file", err))
	}

	target, _ := filepath.Abs(file)
	applyOnce(runCtx, ctx, cfg, file, dryRun, yes)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	logger.Info("watching for changes", "file", file)
	for {
		select {
		case <-runCtx.Done():
			logger.Info("watch stopped")
			return
		case <-pending:
			applyOnce(runCtx, ctx, cfg, file, dryRun, yes)
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			abs, _ := filepath.Abs(event.Name)
			if abs != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
