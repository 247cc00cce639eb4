package valueobject

import (
	"testing"

	"github.com/lite-lake/dnsops/internal/domain/entity"
)

func testRRSet(name string, typ entity.RecordType) *entity.RRSet {
	return &entity.RRSet{
		Name: name, Type: typ, TTL: 300,
		Records: []entity.RecordContent{{Content: "192.0.2.1"}},
	}
}

func TestChangeSet_OrdersDeletesLast(t *testing.T) {
	cs := NewChangeSet()
	cs.Add(NewDelete(testRRSet("a.example.com.", entity.RecordTypeA)))
	cs.Add(NewCreate(testRRSet("z.example.com.", entity.RecordTypeA)))
	cs.Add(NewDelete(testRRSet("b.example.com.", entity.RecordTypeA)))
	cs.Add(NewCreate(testRRSet("m.example.com.", entity.RecordTypeA)))

	changes := cs.Changes()
	wantTypes := []ChangeType{ChangeTypeCreate, ChangeTypeCreate, ChangeTypeDelete, ChangeTypeDelete}
	wantNames := []string{"m.example.com.", "z.example.com.", "a.example.com.", "b.example.com."}
	for i, c := range changes {
		if c.Type() != wantTypes[i] {
			t.Errorf("changes[%d].Type() = %s, want %s", i, c.Type(), wantTypes[i])
		}
		if c.Key().Name != wantNames[i] {
			t.Errorf("changes[%d].Key().Name = %s, want %s", i, c.Key().Name, wantNames[i])
		}
	}
}

func TestChangeSet_Buckets(t *testing.T) {
	cs := NewChangeSet()
	cs.Add(NewCreate(testRRSet("a.example.com.", entity.RecordTypeA)))
	cs.Add(NewUpdate(testRRSet("b.example.com.", entity.RecordTypeA), testRRSet("b.example.com.", entity.RecordTypeA)))
	cs.Add(NewDelete(testRRSet("c.example.com.", entity.RecordTypeA)))

	if got := len(cs.Replacements()); got != 2 {
		t.Errorf("Replacements() = %d, want 2", got)
	}
	if got := len(cs.Deletions()); got != 1 {
		t.Errorf("Deletions() = %d, want 1", got)
	}
	if cs.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cs.Len())
	}
}

func TestChangeSet_IgnoresNoopAndNil(t *testing.T) {
	cs := NewChangeSet()
	cs.Add(nil)
	cs.Add(&Change{changeType: ChangeTypeNoop})
	if !cs.IsEmpty() {
		t.Error("noop and nil changes must not be recorded")
	}
}

func TestChange_ClonesPayload(t *testing.T) {
	rs := testRRSet("a.example.com.", entity.RecordTypeA)
	c := NewCreate(rs)
	rs.Records[0].Content = "192.0.2.99"
	if c.NewState().Records[0].Content != "192.0.2.1" {
		t.Error("change must not alias the source rrset")
	}
}

func TestChange_DeleteCarriesOnlyOldState(t *testing.T) {
	c := NewDelete(testRRSet("a.example.com.", entity.RecordTypeA))
	if c.NewState() != nil {
		t.Error("delete must not carry a desired state")
	}
	if c.OldState() == nil {
		t.Error("delete must carry the current state")
	}
}
