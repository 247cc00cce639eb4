package cli

import (
	"fmt"
	"strings"

	"github.com/lite-lake/dnsops/internal/domain/entity"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
)

func displayChangeSet(zone string, cs *valueobject.ChangeSet) {
	if cs.IsEmpty() {
		fmt.Println("No changes. Zone matches the declared state.")
		return
	}

	fmt.Println(boldStyle.Render(fmt.Sprintf("Plan for %s:", zone)))
	for _, change := range cs.Changes() {
		var line string
		switch change.Type() {
		case valueobject.ChangeTypeCreate:
			rs := change.NewState()
			line = createStyle.Render(fmt.Sprintf("+ %s ttl=%d [%s]", change.Key(), rs.TTL, contentSummary(rs)))
		case valueobject.ChangeTypeUpdate:
			oldSet, newSet := change.OldState(), change.NewState()
			line = updateStyle.Render(fmt.Sprintf("~ %s ttl=%d->%d [%s] -> [%s]",
				change.Key(), oldSet.TTL, newSet.TTL, contentSummary(oldSet), contentSummary(newSet)))
		case valueobject.ChangeTypeDelete:
			line = deleteStyle.Render(fmt.Sprintf("- %s [%s]", change.Key(), contentSummary(change.OldState())))
		}
		fmt.Println(line)
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d change(s), deletions apply last", cs.Len())))
}

func displaySummary(summary *valueobject.Summary) {
	for _, result := range summary.Results {
		key := result.Change.Key()
		op := result.Change.Type().String()
		switch result.Status {
		case valueobject.OpStatusApplied:
			fmt.Println(createStyle.Render(fmt.Sprintf("✓ %s %s", op, key)))
		case valueobject.OpStatusFailed:
			fmt.Println(deleteStyle.Render(fmt.Sprintf("✗ %s %s: %v", op, key, result.Err)))
		case valueobject.OpStatusSkipped:
			fmt.Println(mutedStyle.Render(fmt.Sprintf("· %s %s: not attempted", op, key)))
		}
	}
	fmt.Printf("Result: %s (%d applied, %d failed, %d skipped)\n",
		summary.Verdict(), summary.Applied(), summary.Failed(), summary.Skipped())
}

func contentSummary(rs *entity.RRSet) string {
	values := make([]string, 0, len(rs.Records))
	for _, rec := range rs.Records {
		v := rec.Content
		if rec.Disabled {
			v += " (disabled)"
		}
		values = append(values, v)
	}
	return strings.Join(values, ", ")
}
