package pdns

import (
	"fmt"
	"time"

	"github.com/lite-lake/dnsops/internal/domain/entity"
)

// SOAParams are the timer fields of the SOA record written when a zone is
// created. Zero fields fall back to the defaults below.
type SOAParams struct {
	Refresh    int64
	Retry      int64
	Expire     int64
	NegCaching int64
}

func (p SOAParams) withDefaults() SOAParams {
	if p.Refresh == 0 {
		p.Refresh = 3600
	}
	if p.Retry == 0 {
		p.Retry = 900
	}
	if p.Expire == 0 {
		p.Expire = 604800
	}
	if p.NegCaching == 0 {
		p.NegCaching = 86400
	}
	return p
}

// NewZoneRequest builds the POST body for zone creation. With nameservers
// the zone is Native and gets an initial SOA; without them it is a Slave
// zone fed from the given masters.
func NewZoneRequest(name, account string, nameservers, masters []string, soa SOAParams) *Zone {
	canonical := entity.CanonicalName(name)

	if len(nameservers) == 0 {
		// Masters are IP addresses, not names; they go through as given.
		return &Zone{
			Name:    canonical,
			Kind:    ZoneKindSlave,
			Masters: masters,
		}
	}

	soa = soa.withDefaults()
	serial := time.Now().UTC().Format("20060102") + "01"
	soaContent := fmt.Sprintf("%s %s.%s %s %d %d %d %d",
		canonical, account, canonical, serial,
		soa.Refresh, soa.Retry, soa.Expire, soa.NegCaching)

	return &Zone{
		Name: canonical,
		Kind: ZoneKindNative,
		RRSets: []RRSet{{
			Name:    canonical,
			Type:    "SOA",
			TTL:     soa.Refresh,
			Records: []Record{{Content: soaContent}},
		}},
		Nameservers: canonicalAll(nameservers),
	}
}

func canonicalAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = entity.CanonicalName(n)
	}
	return out
}
