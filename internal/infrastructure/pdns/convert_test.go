package pdns

import (
	"testing"

	"github.com/lite-lake/dnsops/internal/domain/entity"
)

func TestToEntityZone_DropsUnmanagedTypes(t *testing.T) {
	apiZone := &Zone{
		Name: "example.com.",
		RRSets: []RRSet{
			{Name: "example.com.", Type: "SOA", TTL: 3600,
				Records: []Record{{Content: "ns1.example.com. hostmaster.example.com. 1 3600 900 604800 86400"}}},
			{Name: "example.com.", Type: "NS", TTL: 3600,
				Records: []Record{{Content: "ns1.example.com."}}},
			{Name: "www.example.com.", Type: "A", TTL: 300,
				Records: []Record{{Content: "192.0.2.1"}, {Content: "192.0.2.2", Disabled: true}}},
		},
	}

	zone, err := ToEntityZone(apiZone)
	if err != nil {
		t.Fatalf("ToEntityZone: %v", err)
	}
	if zone.Len() != 2 {
		t.Fatalf("expected 2 rrsets (SOA dropped), got %d", zone.Len())
	}
	if _, ok := zone.Get(entity.RRSetKey{Name: "example.com.", Type: "SOA"}); ok {
		t.Error("SOA must not enter the domain model")
	}

	rs, ok := zone.Get(entity.RRSetKey{Name: "www.example.com.", Type: entity.RecordTypeA})
	if !ok {
		t.Fatal("A rrset missing")
	}
	if !rs.Records[1].Disabled {
		t.Error("disabled flag lost in conversion")
	}
}

func TestFromEntityRRSet_Replace(t *testing.T) {
	rs := &entity.RRSet{
		Name: "www.example.com.", Type: entity.RecordTypeA, TTL: 300,
		Records: []entity.RecordContent{{Content: "192.0.2.1"}},
	}
	wire := FromEntityRRSet(rs, ChangeTypeReplace)
	if wire.ChangeType != ChangeTypeReplace || wire.TTL != 300 || len(wire.Records) != 1 {
		t.Errorf("unexpected wire rrset: %+v", wire)
	}
}

func TestFromEntityRRSet_DeleteCarriesKeyOnly(t *testing.T) {
	rs := &entity.RRSet{
		Name: "old.example.com.", Type: entity.RecordTypeA, TTL: 300,
		Records: []entity.RecordContent{{Content: "192.0.2.1"}},
	}
	wire := FromEntityRRSet(rs, ChangeTypeDelete)
	if wire.TTL != 0 {
		t.Errorf("delete must not carry a TTL, got %d", wire.TTL)
	}
	if wire.Records == nil || len(wire.Records) != 0 {
		t.Errorf("delete must carry an empty records array, got %v", wire.Records)
	}
}
