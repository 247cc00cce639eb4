package entity

import (
	"fmt"
	"net/netip"
	"net/url"
	"strconv"
	"strings"

	"github.com/lite-lake/dnsops/internal/domain"
)

// ContentValue is the typed form of one record value. Each record type has
// its own variant; construction through ParseContent is the only way to
// obtain one, so an existing value is always well-formed.
type ContentValue interface {
	Type() RecordType
	// String renders the canonical wire form the authority API stores.
	String() string
}

// ParseContent parses one content string for the given record type into its
// typed variant, normalizing as it goes.
func ParseContent(t RecordType, s string) (ContentValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, domain.ErrEmptyContent
	}

	switch t {
	case RecordTypeA:
		return parseA(s)
	case RecordTypeAAAA:
		return parseAAAA(s)
	case RecordTypeCNAME, RecordTypeNS, RecordTypePTR:
		return parseTarget(t, s)
	case RecordTypeMX:
		return parseMX(s)
	case RecordTypeTXT:
		return parseTXT(s)
	case RecordTypeSRV:
		return parseSRV(s)
	case RecordTypeURI:
		return parseURI(s)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidType, t)
	}
}

type AValue struct{ Addr netip.Addr }

func (v AValue) Type() RecordType { return RecordTypeA }
func (v AValue) String() string   { return v.Addr.String() }

func parseA(s string) (ContentValue, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return nil, fmt.Errorf("%w: %q is not an IPv4 address", domain.ErrInvalidContent, s)
	}
	return AValue{Addr: addr}, nil
}

type AAAAValue struct{ Addr netip.Addr }

func (v AAAAValue) Type() RecordType { return RecordTypeAAAA }
func (v AAAAValue) String() string   { return v.Addr.String() }

func parseAAAA(s string) (ContentValue, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Is4In6() {
		return nil, fmt.Errorf("%w: %q is not an IPv6 address", domain.ErrInvalidContent, s)
	}
	return AAAAValue{Addr: addr}, nil
}

// TargetValue covers the hostname-valued types: CNAME, NS and PTR.
type TargetValue struct {
	RType  RecordType
	Target string
}

func (v TargetValue) Type() RecordType { return v.RType }
func (v TargetValue) String() string   { return v.Target }

func parseTarget(t RecordType, s string) (ContentValue, error) {
	target := CanonicalName(s)
	if err := ValidateHostname(target); err != nil {
		return nil, err
	}
	return TargetValue{RType: t, Target: target}, nil
}

type MXValue struct {
	Preference uint16
	Exchange   string
}

func (v MXValue) Type() RecordType { return RecordTypeMX }
func (v MXValue) String() string   { return fmt.Sprintf("%d %s", v.Preference, v.Exchange) }

func parseMX(s string) (ContentValue, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: MX wants %q, got %q", domain.ErrInvalidContent, "preference exchange", s)
	}
	pref, err := parseUint16(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: MX preference %q: %v", domain.ErrInvalidContent, fields[0], err)
	}
	exchange := CanonicalName(fields[1])
	if err := ValidateHostname(exchange); err != nil {
		return nil, err
	}
	return MXValue{Preference: pref, Exchange: exchange}, nil
}

type TXTValue struct{ Text string }

func (v TXTValue) Type() RecordType { return RecordTypeTXT }
func (v TXTValue) String() string   { return strconv.Quote(v.Text) }

func parseTXT(s string) (ContentValue, error) {
	// The API stores TXT content quoted. Accept both quoted and bare input.
	if strings.HasPrefix(s, `"`) {
		text, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed quoted TXT value %q", domain.ErrInvalidContent, s)
		}
		return TXTValue{Text: text}, nil
	}
	return TXTValue{Text: s}, nil
}

type SRVValue struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (v SRVValue) Type() RecordType { return RecordTypeSRV }
func (v SRVValue) String() string {
	return fmt.Sprintf("%d %d %d %s", v.Priority, v.Weight, v.Port, v.Target)
}

func parseSRV(s string) (ContentValue, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: SRV wants %q, got %q", domain.ErrInvalidContent, "priority weight port target", s)
	}
	nums := make([]uint16, 3)
	for i := 0; i < 3; i++ {
		n, err := parseUint16(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: SRV field %q: %v", domain.ErrInvalidContent, fields[i], err)
		}
		nums[i] = n
	}
	target := CanonicalName(fields[3])
	if err := ValidateHostname(target); err != nil {
		return nil, err
	}
	return SRVValue{Priority: nums[0], Weight: nums[1], Port: nums[2], Target: target}, nil
}

type URIValue struct {
	Priority uint16
	Weight   uint16
	Target   *url.URL
}

func (v URIValue) Type() RecordType { return RecordTypeURI }
func (v URIValue) String() string {
	return fmt.Sprintf("%d %d %q", v.Priority, v.Weight, v.Target.String())
}

func parseURI(s string) (ContentValue, error) {
	fields := strings.SplitN(s, " ", 3)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: URI wants %q, got %q", domain.ErrInvalidContent, `priority weight "target"`, s)
	}
	priority, err := parseUint16(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: URI priority %q: %v", domain.ErrInvalidContent, fields[0], err)
	}
	weight, err := parseUint16(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: URI weight %q: %v", domain.ErrInvalidContent, fields[1], err)
	}

	raw := strings.TrimSpace(fields[2])
	if strings.HasPrefix(raw, `"`) {
		raw, err = strconv.Unquote(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed quoted URI target", domain.ErrInvalidContent)
		}
	}
	target, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: URI target %q: %v", domain.ErrInvalidContent, raw, err)
	}
	if !target.IsAbs() || target.Scheme == "" {
		return nil, fmt.Errorf("%w: URI target %q must be absolute with a scheme", domain.ErrInvalidContent, raw)
	}
	return URIValue{Priority: priority, Weight: weight, Target: target}, nil
}

func parseUint16(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
