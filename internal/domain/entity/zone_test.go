package entity

import (
	"errors"
	"testing"

	"github.com/lite-lake/dnsops/internal/domain"
)

func TestNewZone(t *testing.T) {
	z, err := NewZone("Example.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Name != "example.com." {
		t.Errorf("name not canonicalized: %q", z.Name)
	}

	if _, err := NewZone("-bad.example.com"); !errors.Is(err, domain.ErrInvalidName) {
		t.Errorf("got %v, want ErrInvalidName", err)
	}
}

func TestZoneAddRecord_MergesSameKey(t *testing.T) {
	z, _ := NewZone("example.com.")
	records := []Record{
		{Name: "www.example.com.", Type: RecordTypeA, TTL: 300, Content: []string{"192.0.2.1"}},
		{Name: "www.example.com.", Type: RecordTypeA, TTL: 300, Content: []string{"192.0.2.2"}},
	}
	for i := range records {
		if err := z.AddRecord(&records[i]); err != nil {
			t.Fatalf("AddRecord: %v", err)
		}
	}

	if z.Len() != 1 {
		t.Fatalf("expected 1 rrset, got %d", z.Len())
	}
	rs, ok := z.Get(RRSetKey{Name: "www.example.com.", Type: RecordTypeA})
	if !ok {
		t.Fatal("rrset not found")
	}
	if len(rs.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(rs.Records))
	}
}

func TestZoneAddRecord_TTLConflict(t *testing.T) {
	z, _ := NewZone("example.com.")
	a := Record{Name: "www.example.com.", Type: RecordTypeA, TTL: 300, Content: []string{"192.0.2.1"}}
	b := Record{Name: "www.example.com.", Type: RecordTypeA, TTL: 600, Content: []string{"192.0.2.2"}}

	if err := z.AddRecord(&a); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}
	if err := z.AddRecord(&b); !errors.Is(err, domain.ErrTTLConflict) {
		t.Errorf("got %v, want ErrTTLConflict", err)
	}
}

func TestZoneAddRecord_ValidationPropagates(t *testing.T) {
	z, _ := NewZone("example.com.")
	bad := Record{Name: "www.example.com.", Type: RecordTypeA, TTL: 300, Content: []string{"nope"}}
	if err := z.AddRecord(&bad); !errors.Is(err, domain.ErrInvalidContent) {
		t.Errorf("got %v, want ErrInvalidContent", err)
	}
	if z.Len() != 0 {
		t.Error("invalid record must not be stored")
	}
}

func TestZoneAddRRSet_RejectsDuplicate(t *testing.T) {
	z, _ := NewZone("example.com.")
	rs := &RRSet{Name: "www.example.com.", Type: RecordTypeA, TTL: 300,
		Records: []RecordContent{{Content: "192.0.2.1"}}}

	if err := z.AddRRSet(rs); err != nil {
		t.Fatalf("AddRRSet: %v", err)
	}
	if err := z.AddRRSet(rs.Clone()); err == nil {
		t.Error("duplicate key accepted")
	}
}

func TestZoneKeys_Sorted(t *testing.T) {
	z, _ := NewZone("example.com.")
	for _, rs := range []*RRSet{
		{Name: "z.example.com.", Type: RecordTypeA, TTL: 300},
		{Name: "a.example.com.", Type: RecordTypeTXT, TTL: 300},
		{Name: "a.example.com.", Type: RecordTypeA, TTL: 300},
	} {
		if err := z.AddRRSet(rs); err != nil {
			t.Fatalf("AddRRSet: %v", err)
		}
	}

	keys := z.Keys()
	want := []RRSetKey{
		{Name: "a.example.com.", Type: RecordTypeA},
		{Name: "a.example.com.", Type: RecordTypeTXT},
		{Name: "z.example.com.", Type: RecordTypeA},
	}
	for i, k := range keys {
		if k != want[i] {
			t.Errorf("keys[%d] = %v, want %v", i, k, want[i])
		}
	}
}
