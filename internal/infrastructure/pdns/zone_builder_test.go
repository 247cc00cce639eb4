package pdns

import (
	"strings"
	"testing"
)

func TestNewZoneRequest_Native(t *testing.T) {
	zone := NewZoneRequest("Example.COM", "hostmaster",
		[]string{"ns1.example.com", "ns2.example.com"}, nil,
		SOAParams{Refresh: 7200})

	if zone.Name != "example.com." {
		t.Errorf("name = %q", zone.Name)
	}
	if zone.Kind != ZoneKindNative {
		t.Errorf("kind = %q, want Native", zone.Kind)
	}
	if len(zone.Nameservers) != 2 || zone.Nameservers[0] != "ns1.example.com." {
		t.Errorf("nameservers = %v", zone.Nameservers)
	}

	if len(zone.RRSets) != 1 || zone.RRSets[0].Type != "SOA" {
		t.Fatalf("expected one SOA rrset, got %+v", zone.RRSets)
	}
	soa := zone.RRSets[0].Records[0].Content
	fields := strings.Fields(soa)
	if len(fields) != 7 {
		t.Fatalf("SOA content %q has %d fields, want 7", soa, len(fields))
	}
	if fields[0] != "example.com." || fields[1] != "hostmaster.example.com." {
		t.Errorf("SOA mname/rname = %q %q", fields[0], fields[1])
	}
	if !strings.HasSuffix(fields[2], "01") || len(fields[2]) != 10 {
		t.Errorf("SOA serial %q is not date-based", fields[2])
	}
	if fields[3] != "7200" {
		t.Errorf("refresh = %q, want overridden 7200", fields[3])
	}
	if fields[4] != "900" || fields[5] != "604800" || fields[6] != "86400" {
		t.Errorf("default timers not applied: %v", fields[3:])
	}
}

func TestNewZoneRequest_Slave(t *testing.T) {
	zone := NewZoneRequest("example.com", "", nil, []string{"198.51.100.1"}, SOAParams{})
	if zone.Kind != ZoneKindSlave {
		t.Errorf("kind = %q, want Slave", zone.Kind)
	}
	if len(zone.RRSets) != 0 {
		t.Errorf("slave zone must not carry an SOA, got %+v", zone.RRSets)
	}
	if len(zone.Masters) != 1 || zone.Masters[0] != "198.51.100.1" {
		t.Errorf("masters must pass through untouched, got %v", zone.Masters)
	}
}
