package pdns

import (
	"fmt"

	"github.com/lite-lake/dnsops/internal/domain/entity"
)

// ToEntityZone converts an API zone snapshot into the domain model. RRSet
// types outside the managed enum (SOA, DNSKEY, ...) are dropped so the
// differ can never schedule their deletion; the reconciler only owns the
// record types an operator can declare.
func ToEntityZone(z *Zone) (*entity.Zone, error) {
	zone, err := entity.NewZone(z.Name)
	if err != nil {
		return nil, err
	}

	for _, rs := range z.RRSets {
		rtype := entity.RecordType(rs.Type)
		if !entity.IsManagedType(rtype) {
			continue
		}

		set := &entity.RRSet{
			Name: entity.CanonicalName(rs.Name),
			Type: rtype,
			TTL:  rs.TTL,
		}
		for _, rec := range rs.Records {
			set.Records = append(set.Records, entity.RecordContent{
				Content:  rec.Content,
				Disabled: rec.Disabled,
			})
		}
		if err := zone.AddRRSet(set); err != nil {
			return nil, fmt.Errorf("zone %s: %w", z.Name, err)
		}
	}
	return zone, nil
}

// FromEntityRRSet shapes one domain RRSet into its wire form with the given
// changetype. A DELETE carries neither TTL nor records; the key is enough.
func FromEntityRRSet(rs *entity.RRSet, changeType string) RRSet {
	out := RRSet{
		Name:       rs.Name,
		Type:       string(rs.Type),
		ChangeType: changeType,
		Records:    []Record{},
	}
	if changeType == ChangeTypeDelete {
		return out
	}
	out.TTL = rs.TTL
	for _, rec := range rs.Records {
		out.Records = append(out.Records, Record{Content: rec.Content, Disabled: rec.Disabled})
	}
	return out
}
