package entity

import (
	"fmt"
	"sort"

	"github.com/lite-lake/dnsops/internal/domain"
)

// Zone is a snapshot of one DNS namespace: the desired declaration or the
// state fetched from the authority. It holds at most one RRSet per
// (name, type) key and is not mutated after assembly.
type Zone struct {
	Name   string
	rrsets map[RRSetKey]*RRSet
}

func NewZone(name string) (*Zone, error) {
	canonical := CanonicalName(name)
	if err := ValidateName(canonical); err != nil {
		return nil, domain.WrapEntity("zone", name, err)
	}
	return &Zone{
		Name:   canonical,
		rrsets: make(map[RRSetKey]*RRSet),
	}, nil
}

// AddRecord validates the record and folds it into the zone's RRSet for its
// key. Records sharing a key merge their content; a TTL disagreement within
// one key is an error because the authority stores one TTL per RRSet.
func (z *Zone) AddRecord(r *Record) error {
	if err := r.Validate(); err != nil {
		return domain.WrapEntity("record", fmt.Sprintf("%s/%s", r.Name, r.Type), err)
	}

	key := RRSetKey{Name: r.Name, Type: r.Type}
	existing, ok := z.rrsets[key]
	if !ok {
		rs := &RRSet{Name: r.Name, Type: r.Type, TTL: r.TTL}
		for _, c := range r.Content {
			rs.Records = append(rs.Records, RecordContent{Content: c, Disabled: r.Disabled})
		}
		z.rrsets[key] = rs
		return nil
	}

	if existing.TTL != r.TTL {
		return fmt.Errorf("%w: %s has TTL %d and %d", domain.ErrTTLConflict, key, existing.TTL, r.TTL)
	}
	for _, c := range r.Content {
		existing.Records = append(existing.Records, RecordContent{Content: c, Disabled: r.Disabled})
	}
	return nil
}

// AddRRSet inserts an already-shaped RRSet, used when building the zone
// from an authority snapshot. Duplicate keys are rejected.
func (z *Zone) AddRRSet(rs *RRSet) error {
	key := rs.Key()
	if _, ok := z.rrsets[key]; ok {
		return fmt.Errorf("duplicate rrset %s", key)
	}
	z.rrsets[key] = rs
	return nil
}

func (z *Zone) Get(key RRSetKey) (*RRSet, bool) {
	rs, ok := z.rrsets[key]
	return rs, ok
}

func (z *Zone) Len() int {
	return len(z.rrsets)
}

// Keys returns the zone's keys sorted by (name, type).
func (z *Zone) Keys() []RRSetKey {
	keys := make([]RRSetKey, 0, len(z.rrsets))
	for k := range z.rrsets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// RRSets returns the zone's record sets in key order.
func (z *Zone) RRSets() []*RRSet {
	out := make([]*RRSet, 0, len(z.rrsets))
	for _, k := range z.Keys() {
		out = append(out, z.rrsets[k])
	}
	return out
}
