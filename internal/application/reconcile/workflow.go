package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"

	"github.com/lite-lake/dnsops/internal/domain"
	"github.com/lite-lake/dnsops/internal/domain/entity"
	"github.com/lite-lake/dnsops/internal/domain/service"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
	"github.com/lite-lake/dnsops/internal/infrastructure/logger"
	"github.com/lite-lake/dnsops/internal/infrastructure/pdns"
	"github.com/lite-lake/dnsops/internal/infrastructure/persistence"
)

// Workflow drives one reconciliation run: Load -> Fetch -> Diff -> Apply.
// Desired state is parsed and validated before the first network call; the
// remote snapshot is fetched exactly once and never re-read mid-run.
type Workflow struct {
	loader   *persistence.ZoneLoader
	differ   *service.DifferService
	client   API
	executor *Executor
}

func NewWorkflow(client API, executor *Executor) *Workflow {
	return &Workflow{
		loader:   persistence.NewZoneLoader(),
		differ:   service.NewDifferService(),
		client:   client,
		executor: executor,
	}
}

// Plan computes the change set without mutating anything.
func (w *Workflow) Plan(ctx context.Context, desiredPath string) (*entity.Zone, *valueobject.ChangeSet, error) {
	desired, err := w.loader.LoadFile(desiredPath)
	if err != nil {
		return nil, nil, err
	}

	current, err := w.fetch(ctx, desired.Name)
	if err != nil {
		return nil, nil, err
	}

	log := logger.FromContext(ctx)
	cs := w.differ.Diff(desired, current)
	log.Info("plan computed",
		"zone", desired.Name,
		"desired_rrsets", desired.Len(),
		"current_rrsets", current.Len(),
		"changes", cs.Len())
	return desired, cs, nil
}

// Apply plans and then executes. A file lock beside the declaration keeps
// two local runs from reconciling the same desired state at once; it does
// not guard against other writers of the remote zone.
func (w *Workflow) Apply(ctx context.Context, desiredPath string) (*valueobject.Summary, error) {
	lock := flock.New(desiredPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, domain.WrapOp("acquire run lock", err)
	}
	if !locked {
		return nil, fmt.Errorf("another run holds the lock for %s", desiredPath)
	}
	defer lock.Unlock()

	desired, cs, err := w.Plan(ctx, desiredPath)
	if err != nil {
		return nil, err
	}
	if cs.IsEmpty() {
		return &valueobject.Summary{Zone: desired.Name}, nil
	}

	return w.executor.Apply(ctx, desired.Name, cs), nil
}

// fetch retrieves the authority's view of the zone. A fetch failure aborts
// the run outright: a diff against unknown current state is meaningless.
func (w *Workflow) fetch(ctx context.Context, name string) (*entity.Zone, error) {
	apiZone, err := w.client.GetZone(ctx, name)
	if err != nil {
		if pdns.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, name)
		}
		return nil, errors.Join(domain.ErrAPIUnavailable, err)
	}
	return pdns.ToEntityZone(apiZone)
}
