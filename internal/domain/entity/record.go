package entity

import (
	"fmt"

	"github.com/lite-lake/dnsops/internal/domain"
)

type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeURI   RecordType = "URI"
)

var validRecordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeAAAA:  true,
	RecordTypeCNAME: true,
	RecordTypeMX:    true,
	RecordTypeTXT:   true,
	RecordTypeNS:    true,
	RecordTypeSRV:   true,
	RecordTypePTR:   true,
	RecordTypeURI:   true,
}

// IsManagedType reports whether the reconciler owns records of this type.
// Types outside the enum (SOA among them) are left to the authority.
func IsManagedType(t RecordType) bool {
	return validRecordTypes[t]
}

// MaxTTL is the largest TTL the authority accepts (RFC 2181 §8).
const MaxTTL = 1<<31 - 1

// Record is one desired-state declaration: a name/type pair with its
// content values. Several records for the same (name, type) merge into one
// RRSet when the zone is assembled.
type Record struct {
	Name     string     `yaml:"name" json:"name"`
	Type     RecordType `yaml:"type" json:"type"`
	TTL      int64      `yaml:"ttl" json:"ttl"`
	Content  []string   `yaml:"content" json:"content"`
	Disabled bool       `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Validate normalizes the record in place and checks every field. It is
// pure beyond the normalization: all failures come back as errors wrapped
// on the domain sentinels.
func (r *Record) Validate() error {
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	r.Name = CanonicalName(r.Name)
	if err := ValidateName(r.Name); err != nil {
		return err
	}

	if !validRecordTypes[r.Type] {
		return fmt.Errorf("%w: %q", domain.ErrInvalidType, string(r.Type))
	}

	if r.TTL <= 0 || r.TTL > MaxTTL {
		return fmt.Errorf("%w: %d out of range (0, %d]", domain.ErrInvalidTTL, r.TTL, int64(MaxTTL))
	}

	if len(r.Content) == 0 && !r.Disabled {
		return fmt.Errorf("%w: %s/%s", domain.ErrEmptyContent, r.Name, r.Type)
	}

	for i, raw := range r.Content {
		value, err := ParseContent(r.Type, raw)
		if err != nil {
			return fmt.Errorf("content[%d]: %w", i, err)
		}
		r.Content[i] = value.String()
	}
	return nil
}
