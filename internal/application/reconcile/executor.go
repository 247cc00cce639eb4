package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/lite-lake/dnsops/internal/domain/retry"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
	"github.com/lite-lake/dnsops/internal/infrastructure/logger"
	"github.com/lite-lake/dnsops/internal/infrastructure/pdns"
)

// API is the slice of the authority client the reconciler needs; tests
// substitute an in-memory fake.
type API interface {
	GetZone(ctx context.Context, name string) (*pdns.Zone, error)
	PatchRRSets(ctx context.Context, zone string, rrsets []pdns.RRSet) error
}

type ExecutorConfig struct {
	Client API
	// MaxBatchSize bounds how many RRSet operations share one PATCH.
	MaxBatchSize int
	// MaxInFlight bounds concurrent PATCH requests within one phase.
	MaxInFlight       int
	RetryAttempts     int
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
}

// Executor applies a change set in two phases: every REPLACE first, then
// every DELETE, so a record another one points at never disappears before
// its referrer is rewritten. Batches within a phase touch disjoint keys and
// run concurrently; a key never splits across batches because one change is
// exactly one RRSet.
type Executor struct {
	cfg ExecutorConfig
}

func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 20
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = 4
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 4
	}
	if cfg.RetryInitialDelay <= 0 {
		cfg.RetryInitialDelay = 250 * time.Millisecond
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = 15 * time.Second
	}
	return &Executor{cfg: cfg}
}

// Apply submits the change set and reports per-operation outcomes. Already
// applied operations are never rolled back: the API has no transaction
// spanning RRSets, so a failed run is repaired by re-running the diff.
func (e *Executor) Apply(ctx context.Context, zone string, cs *valueobject.ChangeSet) *valueobject.Summary {
	ctx = logger.WithOperation(ctx, "apply")
	log := logger.FromContext(ctx)
	log.Info("applying changes", "zone", zone, "changes", cs.Len())

	outcomes := newOutcomeBook(cs)

	replacementsOK := e.runPhase(ctx, zone, batchChanges(cs.Replacements(), e.cfg.MaxBatchSize), outcomes)

	deletions := batchChanges(cs.Deletions(), e.cfg.MaxBatchSize)
	if replacementsOK {
		e.runPhase(ctx, zone, deletions, outcomes)
	} else if len(deletions) > 0 {
		// A failed create can leave a referrer unwritten; deleting its
		// target now could break resolution. Leave deletions for the next run.
		log.Warn("skipping deletions after replacement failures", "zone", zone)
	}

	summary := &valueobject.Summary{Zone: zone, Results: outcomes.ordered(cs)}
	log.Info("apply finished",
		"zone", zone,
		"verdict", summary.Verdict().String(),
		"applied", summary.Applied(),
		"failed", summary.Failed(),
		"skipped", summary.Skipped())
	return summary
}

// runPhase submits the phase's batches with bounded concurrency and waits
// for all of them. It returns false if any batch failed or the phase was
// cut short by cancellation.
func (e *Executor) runPhase(ctx context.Context, zone string, batches [][]*valueobject.Change, outcomes *outcomeBook) bool {
	if len(batches) == 0 {
		return true
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.cfg.MaxInFlight)
	ok := true
	var mu sync.Mutex

	for _, batch := range batches {
		// Cancellation is honored between submissions, never by aborting
		// a request already on the wire.
		if ctx.Err() != nil {
			mu.Lock()
			ok = false
			mu.Unlock()
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(batch []*valueobject.Change) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := e.submitBatch(ctx, zone, batch); err != nil {
				outcomes.fail(batch, err)
				mu.Lock()
				ok = false
				mu.Unlock()
				return
			}
			outcomes.apply(batch)
		}(batch)
	}

	wg.Wait()
	return ok
}

func (e *Executor) submitBatch(ctx context.Context, zone string, batch []*valueobject.Change) error {
	log := logger.FromContext(ctx)

	rrsets := make([]pdns.RRSet, 0, len(batch))
	for _, change := range batch {
		rrsets = append(rrsets, toWire(change))
	}

	// The request itself runs on an uncancelable context: once a PATCH is
	// on the wire its outcome must be known, so the in-flight call always
	// completes (the client's own timeout still bounds it).
	reqCtx := context.WithoutCancel(ctx)

	return retry.Do(ctx, func() error {
		err := e.cfg.Client.PatchRRSets(reqCtx, zone, rrsets)
		if err != nil {
			log.Warn("patch failed", "zone", zone, "rrsets", len(rrsets), "error", err)
		}
		return err
	},
		retry.WithMaxAttempts(e.cfg.RetryAttempts),
		retry.WithInitialDelay(e.cfg.RetryInitialDelay),
		retry.WithMaxDelay(e.cfg.RetryMaxDelay),
		retry.WithIsRetryable(pdns.IsTransient),
	)
}

func toWire(change *valueobject.Change) pdns.RRSet {
	if change.Type() == valueobject.ChangeTypeDelete {
		return pdns.FromEntityRRSet(change.OldState(), pdns.ChangeTypeDelete)
	}
	return pdns.FromEntityRRSet(change.NewState(), pdns.ChangeTypeReplace)
}

func batchChanges(changes []*valueobject.Change, size int) [][]*valueobject.Change {
	var batches [][]*valueobject.Change
	for len(changes) > 0 {
		n := size
		if n > len(changes) {
			n = len(changes)
		}
		batches = append(batches, changes[:n])
		changes = changes[n:]
	}
	return batches
}

// outcomeBook records per-change outcomes as batches complete. Changes with
// no recorded outcome were never attempted and report as skipped.
type outcomeBook struct {
	mu      sync.Mutex
	results map[*valueobject.Change]*valueobject.Result
	log     *logger.Logger
}

func newOutcomeBook(cs *valueobject.ChangeSet) *outcomeBook {
	return &outcomeBook{
		results: make(map[*valueobject.Change]*valueobject.Result, cs.Len()),
		log:     logger.L(),
	}
}

func (b *outcomeBook) apply(batch []*valueobject.Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, change := range batch {
		b.results[change] = &valueobject.Result{Change: change, Status: valueobject.OpStatusApplied}
		b.log.Info("change applied", "op", change.Type().String(), "key", change.Key().String())
	}
}

func (b *outcomeBook) fail(batch []*valueobject.Change, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, change := range batch {
		b.results[change] = &valueobject.Result{Change: change, Status: valueobject.OpStatusFailed, Err: err}
		b.log.Error("change failed", "op", change.Type().String(), "key", change.Key().String(), "error", err)
	}
}

func (b *outcomeBook) ordered(cs *valueobject.ChangeSet) []*valueobject.Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*valueobject.Result, 0, cs.Len())
	for _, change := range cs.Changes() {
		if r, ok := b.results[change]; ok {
			out = append(out, r)
			continue
		}
		b.log.Warn("change skipped", "op", change.Type().String(), "key", change.Key().String())
		out = append(out, &valueobject.Result{Change: change, Status: valueobject.OpStatusSkipped})
	}
	return out
}
