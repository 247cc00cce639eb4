package pdns

// Wire types for the PowerDNS authoritative HTTP API.
// See: https://doc.powerdns.com/authoritative/http-api/zone.html

const (
	ChangeTypeReplace = "REPLACE"
	ChangeTypeDelete  = "DELETE"

	ZoneKindNative = "Native"
	ZoneKindMaster = "Master"
	ZoneKindSlave  = "Slave"
)

// Zone is the full zone document returned by GET and accepted by POST.
type Zone struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Serial      uint64   `json:"serial,omitempty"`
	Account     string   `json:"account,omitempty"`
	DNSSec      bool     `json:"dnssec,omitempty"`
	Masters     []string `json:"masters,omitempty"`
	Nameservers []string `json:"nameservers,omitempty"`
	RRSets      []RRSet  `json:"rrsets,omitempty"`
}

// ZoneInfo is the abbreviated zone returned by the list endpoint.
type ZoneInfo struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	Kind           string   `json:"kind"`
	Serial         uint64   `json:"serial"`
	EditedSerial   uint64   `json:"edited_serial,omitempty"`
	NotifiedSerial uint64   `json:"notified_serial,omitempty"`
	LastCheck      uint64   `json:"last_check,omitempty"`
	DNSSec         bool     `json:"dnssec"`
	Masters        []string `json:"masters,omitempty"`
	Account        string   `json:"account,omitempty"`
}

// RRSet is the unit of mutation: on PATCH, ChangeType selects whether the
// whole (name, type) set is replaced or deleted.
type RRSet struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	TTL        int64     `json:"ttl,omitempty"`
	ChangeType string    `json:"changetype,omitempty"`
	Records    []Record  `json:"records"`
	Comments   []Comment `json:"comments,omitempty"`
}

type Record struct {
	Content  string `json:"content"`
	Disabled bool   `json:"disabled"`
}

type Comment struct {
	Content    string `json:"content"`
	Account    string `json:"account"`
	ModifiedAt int64  `json:"modified_at,omitempty"`
}

// Server describes one authoritative server instance.
type Server struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	DaemonType string `json:"daemon_type,omitempty"`
	Version    string `json:"version,omitempty"`
}

// rrsetPatch is the PATCH request body.
type rrsetPatch struct {
	RRSets []RRSet `json:"rrsets"`
}

// apiError is the error document PowerDNS returns on non-2xx responses.
type apiError struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}
