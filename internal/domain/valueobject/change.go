package valueobject

import (
	"sort"

	"github.com/lite-lake/dnsops/internal/domain/entity"
)

type ChangeType int

const (
	ChangeTypeNoop ChangeType = iota
	ChangeTypeCreate
	ChangeTypeUpdate
	ChangeTypeDelete
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeTypeNoop:
		return "NOOP"
	case ChangeTypeCreate:
		return "CREATE"
	case ChangeTypeUpdate:
		return "UPDATE"
	case ChangeTypeDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Change is one RRSet-level operation. Create and Update carry the desired
// RRSet; Delete carries only the key (issuing it against an already-absent
// key is harmless, the authority treats DELETE as idempotent).
type Change struct {
	changeType ChangeType
	key        entity.RRSetKey
	oldState   *entity.RRSet
	newState   *entity.RRSet
}

func NewCreate(desired *entity.RRSet) *Change {
	return &Change{changeType: ChangeTypeCreate, key: desired.Key(), newState: desired.Clone()}
}

func NewUpdate(current, desired *entity.RRSet) *Change {
	return &Change{changeType: ChangeTypeUpdate, key: desired.Key(), oldState: current.Clone(), newState: desired.Clone()}
}

func NewDelete(current *entity.RRSet) *Change {
	return &Change{changeType: ChangeTypeDelete, key: current.Key(), oldState: current.Clone()}
}

func (c *Change) Type() ChangeType        { return c.changeType }
func (c *Change) Key() entity.RRSetKey    { return c.key }
func (c *Change) OldState() *entity.RRSet { return c.oldState }
func (c *Change) NewState() *entity.RRSet { return c.newState }

// ChangeSet is the ordered outcome of a diff: Creates and Updates first,
// Deletes last, each bucket sorted by key. The ordering keeps referenced
// records (a CNAME target, an NS host) present until everything that still
// needs them has been written.
type ChangeSet struct {
	changes []*Change
	sealed  bool
}

func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

func (cs *ChangeSet) Add(c *Change) {
	if c == nil || c.changeType == ChangeTypeNoop {
		return
	}
	cs.changes = append(cs.changes, c)
	cs.sealed = false
}

// Changes returns the operations in apply order.
func (cs *ChangeSet) Changes() []*Change {
	cs.seal()
	return cs.changes
}

// Replacements returns the Create and Update operations in apply order.
func (cs *ChangeSet) Replacements() []*Change {
	return cs.filter(func(t ChangeType) bool { return t == ChangeTypeCreate || t == ChangeTypeUpdate })
}

// Deletions returns the Delete operations in apply order.
func (cs *ChangeSet) Deletions() []*Change {
	return cs.filter(func(t ChangeType) bool { return t == ChangeTypeDelete })
}

func (cs *ChangeSet) Len() int {
	return len(cs.changes)
}

func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.changes) == 0
}

func (cs *ChangeSet) filter(keep func(ChangeType) bool) []*Change {
	cs.seal()
	var out []*Change
	for _, c := range cs.changes {
		if keep(c.changeType) {
			out = append(out, c)
		}
	}
	return out
}

func (cs *ChangeSet) seal() {
	if cs.sealed {
		return
	}
	sort.SliceStable(cs.changes, func(i, j int) bool {
		a, b := cs.changes[i], cs.changes[j]
		aDel := a.changeType == ChangeTypeDelete
		bDel := b.changeType == ChangeTypeDelete
		if aDel != bDel {
			return !aDel
		}
		return a.key.Less(b.key)
	})
	cs.sealed = true
}
