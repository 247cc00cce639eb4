package entity

import "testing"

func rrset(name string, typ RecordType, ttl int64, contents ...string) *RRSet {
	rs := &RRSet{Name: name, Type: typ, TTL: ttl}
	for _, c := range contents {
		rs.Records = append(rs.Records, RecordContent{Content: c})
	}
	return rs
}

func TestRRSetEqual_OrderIndependent(t *testing.T) {
	a := rrset("www.example.com.", RecordTypeA, 300, "192.0.2.1", "192.0.2.2")
	b := rrset("www.example.com.", RecordTypeA, 300, "192.0.2.2", "192.0.2.1")
	if !a.Equal(b) {
		t.Error("record order must not affect equality")
	}
}

func TestRRSetEqual_Differences(t *testing.T) {
	base := rrset("www.example.com.", RecordTypeA, 300, "192.0.2.1")

	tests := []struct {
		name  string
		other *RRSet
	}{
		{"nil", nil},
		{"different ttl", rrset("www.example.com.", RecordTypeA, 600, "192.0.2.1")},
		{"different content", rrset("www.example.com.", RecordTypeA, 300, "192.0.2.9")},
		{"extra record", rrset("www.example.com.", RecordTypeA, 300, "192.0.2.1", "192.0.2.2")},
		{"different type", rrset("www.example.com.", RecordTypeAAAA, 300, "192.0.2.1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if base.Equal(tt.other) {
				t.Error("expected inequality")
			}
		})
	}
}

func TestRRSetEqual_DisabledIsIdentity(t *testing.T) {
	a := rrset("www.example.com.", RecordTypeA, 300)
	a.Records = []RecordContent{{Content: "192.0.2.1", Disabled: false}}
	b := rrset("www.example.com.", RecordTypeA, 300)
	b.Records = []RecordContent{{Content: "192.0.2.1", Disabled: true}}
	if a.Equal(b) {
		t.Error("disabled flag must distinguish otherwise equal values")
	}
}

func TestRRSetClone(t *testing.T) {
	orig := rrset("www.example.com.", RecordTypeA, 300, "192.0.2.1")
	clone := orig.Clone()
	clone.Records[0].Content = "192.0.2.99"
	if orig.Records[0].Content != "192.0.2.1" {
		t.Error("clone must not alias the original records")
	}
}

func TestRRSetKey(t *testing.T) {
	k := RRSetKey{Name: "www.example.com.", Type: RecordTypeA}
	if k.String() != "www.example.com./A" {
		t.Errorf("got %q", k.String())
	}

	less := RRSetKey{Name: "a.example.com.", Type: RecordTypeTXT}
	if !less.Less(k) {
		t.Error("name should dominate ordering")
	}
	sameName := RRSetKey{Name: "www.example.com.", Type: RecordTypeAAAA}
	if !k.Less(sameName) {
		t.Error("type breaks ties: A before AAAA")
	}
}
