package entity

import (
	"fmt"
	"sort"
)

// RRSetKey identifies the atomic unit the authority API mutates: all
// records sharing one name and type.
type RRSetKey struct {
	Name string
	Type RecordType
}

func (k RRSetKey) String() string {
	return fmt.Sprintf("%s/%s", k.Name, k.Type)
}

// Less orders keys by (name, type) for deterministic output.
func (k RRSetKey) Less(other RRSetKey) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	return k.Type < other.Type
}

// RecordContent is one value inside an RRSet, in canonical wire form.
type RecordContent struct {
	Content  string
	Disabled bool
}

// RRSet owns the content values for one (name, type) key under a single TTL.
type RRSet struct {
	Name    string
	Type    RecordType
	TTL     int64
	Records []RecordContent
}

func (rs *RRSet) Key() RRSetKey {
	return RRSetKey{Name: rs.Name, Type: rs.Type}
}

// Equal reports whether two RRSets describe the same remote state: same
// TTL and the same content values regardless of order. The disabled flag
// is part of a value's identity.
func (rs *RRSet) Equal(other *RRSet) bool {
	if other == nil {
		return false
	}
	if rs.Name != other.Name || rs.Type != other.Type || rs.TTL != other.TTL {
		return false
	}
	if len(rs.Records) != len(other.Records) {
		return false
	}
	a := contentFingerprints(rs.Records)
	b := contentFingerprints(other.Records)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy; RRSets handed to a change set must not alias
// the zone they came from.
func (rs *RRSet) Clone() *RRSet {
	records := make([]RecordContent, len(rs.Records))
	copy(records, rs.Records)
	return &RRSet{Name: rs.Name, Type: rs.Type, TTL: rs.TTL, Records: records}
}

func contentFingerprints(records []RecordContent) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = fmt.Sprintf("%t\x00%s", r.Disabled, r.Content)
	}
	sort.Strings(out)
	return out
}
