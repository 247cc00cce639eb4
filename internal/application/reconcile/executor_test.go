package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lite-lake/dnsops/internal/domain/entity"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
	"github.com/lite-lake/dnsops/internal/infrastructure/pdns"
)

// fakeAPI records every call and answers PATCH requests through an optional
// script keyed by call order.
type fakeAPI struct {
	mu      sync.Mutex
	zone    *pdns.Zone
	zoneErr error
	patches [][]pdns.RRSet
	// patchErr is consulted per call; nil entries and calls beyond the
	// script succeed.
	patchErr []error
	calls    int
}

func (f *fakeAPI) GetZone(ctx context.Context, name string) (*pdns.Zone, error) {
	if f.zoneErr != nil {
		return nil, f.zoneErr
	}
	return f.zone, nil
}

func (f *fakeAPI) PatchRRSets(ctx context.Context, zone string, rrsets []pdns.RRSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := f.calls
	f.calls++
	if call < len(f.patchErr) && f.patchErr[call] != nil {
		return f.patchErr[call]
	}
	f.patches = append(f.patches, rrsets)
	return nil
}

func (f *fakeAPI) patchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testExecutor(api API, batchSize int) *Executor {
	return NewExecutor(ExecutorConfig{
		Client:            api,
		MaxBatchSize:      batchSize,
		MaxInFlight:       2,
		RetryAttempts:     3,
		RetryInitialDelay: time.Millisecond,
		RetryMaxDelay:     5 * time.Millisecond,
	})
}

func createChange(name string) *valueobject.Change {
	return valueobject.NewCreate(&entity.RRSet{
		Name: name, Type: entity.RecordTypeA, TTL: 300,
		Records: []entity.RecordContent{{Content: "192.0.2.1"}},
	})
}

func deleteChange(name string) *valueobject.Change {
	return valueobject.NewDelete(&entity.RRSet{
		Name: name, Type: entity.RecordTypeA, TTL: 300,
		Records: []entity.RecordContent{{Content: "192.0.2.1"}},
	})
}

func TestApply_FullSuccess(t *testing.T) {
	api := &fakeAPI{}
	cs := valueobject.NewChangeSet()
	cs.Add(createChange("a.example.com."))
	cs.Add(createChange("b.example.com."))
	cs.Add(deleteChange("old.example.com."))

	summary := testExecutor(api, 20).Apply(context.Background(), "example.com.", cs)

	if summary.Verdict() != valueobject.VerdictFull {
		t.Fatalf("verdict = %s, want full", summary.Verdict())
	}
	if summary.Applied() != 3 {
		t.Errorf("applied = %d, want 3", summary.Applied())
	}
}

func TestApply_DeletionsRunAfterReplacements(t *testing.T) {
	api := &fakeAPI{}
	cs := valueobject.NewChangeSet()
	cs.Add(deleteChange("old.example.com."))
	cs.Add(createChange("new.example.com."))

	testExecutor(api, 20).Apply(context.Background(), "example.com.", cs)

	if len(api.patches) != 2 {
		t.Fatalf("expected 2 patches, got %d", len(api.patches))
	}
	if api.patches[0][0].ChangeType != pdns.ChangeTypeReplace {
		t.Errorf("first patch = %s, want REPLACE", api.patches[0][0].ChangeType)
	}
	if api.patches[1][0].ChangeType != pdns.ChangeTypeDelete {
		t.Errorf("second patch = %s, want DELETE", api.patches[1][0].ChangeType)
	}
}

func TestApply_Batching(t *testing.T) {
	api := &fakeAPI{}
	cs := valueobject.NewChangeSet()
	for _, name := range []string{"a.example.com.", "b.example.com.", "c.example.com."} {
		cs.Add(createChange(name))
	}

	testExecutor(api, 2).Apply(context.Background(), "example.com.", cs)

	if len(api.patches) != 2 {
		t.Fatalf("expected 2 batches for 3 changes at size 2, got %d", len(api.patches))
	}
	total := 0
	for _, p := range api.patches {
		if len(p) > 2 {
			t.Errorf("batch exceeds size limit: %d", len(p))
		}
		total += len(p)
	}
	if total != 3 {
		t.Errorf("batches carry %d rrsets, want 3", total)
	}
}

func TestApply_TransientFailureRetriedToSuccess(t *testing.T) {
	api := &fakeAPI{
		patchErr: []error{
			&pdns.Error{StatusCode: 503, Message: "backend unavailable"},
			&pdns.Error{StatusCode: 503, Message: "backend unavailable"},
		},
	}
	cs := valueobject.NewChangeSet()
	cs.Add(createChange("a.example.com."))

	summary := testExecutor(api, 20).Apply(context.Background(), "example.com.", cs)

	if summary.Verdict() != valueobject.VerdictFull {
		t.Fatalf("verdict = %s, want full after retries", summary.Verdict())
	}
	if api.patchCalls() != 3 {
		t.Errorf("expected 3 attempts, got %d", api.patchCalls())
	}
}

func TestApply_PermanentFailureNotRetried(t *testing.T) {
	api := &fakeAPI{
		patchErr: []error{
			&pdns.Error{StatusCode: 422, Message: "duplicate record"},
		},
	}
	cs := valueobject.NewChangeSet()
	cs.Add(createChange("a.example.com."))

	summary := testExecutor(api, 20).Apply(context.Background(), "example.com.", cs)

	if summary.Verdict() != valueobject.VerdictFailed {
		t.Fatalf("verdict = %s, want failed", summary.Verdict())
	}
	if api.patchCalls() != 1 {
		t.Errorf("permanent rejection retried: %d calls", api.patchCalls())
	}
	if summary.Results[0].Err == nil {
		t.Error("failed result must carry its error")
	}
}

func TestApply_SkipsDeletionsAfterReplacementFailure(t *testing.T) {
	api := &fakeAPI{
		patchErr: []error{
			&pdns.Error{StatusCode: 422, Message: "rejected"},
		},
	}
	cs := valueobject.NewChangeSet()
	cs.Add(createChange("a.example.com."))
	cs.Add(deleteChange("old.example.com."))

	summary := testExecutor(api, 20).Apply(context.Background(), "example.com.", cs)

	if summary.Verdict() != valueobject.VerdictFailed {
		t.Fatalf("verdict = %s, want failed", summary.Verdict())
	}
	if summary.Failed() != 1 || summary.Skipped() != 1 {
		t.Errorf("failed/skipped = %d/%d, want 1/1", summary.Failed(), summary.Skipped())
	}
	for _, r := range summary.Results {
		if r.Change.Type() == valueobject.ChangeTypeDelete && r.Status != valueobject.OpStatusSkipped {
			t.Errorf("deletion status = %s, want skipped", r.Status)
		}
	}
}

func TestApply_PartialVerdict(t *testing.T) {
	api := &fakeAPI{
		patchErr: []error{
			&pdns.Error{StatusCode: 422, Message: "rejected"},
		},
	}
	cs := valueobject.NewChangeSet()
	cs.Add(createChange("a.example.com."))
	cs.Add(createChange("b.example.com."))

	summary := testExecutor(api, 1).Apply(context.Background(), "example.com.", cs)

	if summary.Verdict() != valueobject.VerdictPartial {
		t.Fatalf("verdict = %s, want partial", summary.Verdict())
	}
	if summary.Applied() != 1 || summary.Failed() != 1 {
		t.Errorf("applied/failed = %d/%d, want 1/1", summary.Applied(), summary.Failed())
	}
}

func TestApply_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := &fakeAPI{}
	cs := valueobject.NewChangeSet()
	cs.Add(createChange("a.example.com."))
	cs.Add(deleteChange("old.example.com."))

	summary := testExecutor(api, 20).Apply(ctx, "example.com.", cs)

	if summary.Skipped() != 2 {
		t.Errorf("skipped = %d, want 2", summary.Skipped())
	}
	if api.patchCalls() != 0 {
		t.Errorf("cancelled run must not reach the API, got %d calls", api.patchCalls())
	}
}

func TestApply_EmptyChangeSet(t *testing.T) {
	api := &fakeAPI{}
	summary := testExecutor(api, 20).Apply(context.Background(), "example.com.", valueobject.NewChangeSet())

	if summary.Verdict() != valueobject.VerdictFull {
		t.Errorf("verdict = %s, want full for empty set", summary.Verdict())
	}
	if api.patchCalls() != 0 {
		t.Errorf("empty set must not reach the API")
	}
}
