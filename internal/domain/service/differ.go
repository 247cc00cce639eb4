package service

import (
	"github.com/lite-lake/dnsops/internal/domain/entity"
	"github.com/lite-lake/dnsops/internal/domain/valueobject"
)

// DifferService computes the minimal change set that transforms the
// authority's current record sets into the desired ones.
type DifferService struct{}

func NewDifferService() *DifferService {
	return &DifferService{}
}

// Diff walks the union of both zones' keys. A key present only in desired
// becomes a Create, only in current a Delete, and present in both either an
// Update or nothing at all when the RRSets already agree. Re-running a diff
// against converged state therefore yields an empty change set.
func (s *DifferService) Diff(desired, current *entity.Zone) *valueobject.ChangeSet {
	cs := valueobject.NewChangeSet()

	seen := make(map[entity.RRSetKey]bool, desired.Len())
	for _, key := range desired.Keys() {
		seen[key] = true
		want, _ := desired.Get(key)
		have, ok := current.Get(key)
		if !ok {
			cs.Add(valueobject.NewCreate(want))
			continue
		}
		if !want.Equal(have) {
			cs.Add(valueobject.NewUpdate(have, want))
		}
	}

	for _, key := range current.Keys() {
		if seen[key] {
			continue
		}
		have, _ := current.Get(key)
		cs.Add(valueobject.NewDelete(have))
	}

	return cs
}
