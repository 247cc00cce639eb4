package entity

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/lite-lake/dnsops/internal/domain"
)

// CanonicalName normalizes a domain name to the form the authority API
// stores: lower-case with a trailing dot.
func CanonicalName(name string) string {
	return strings.ToLower(dns.Fqdn(strings.TrimSpace(name)))
}

// ValidateName checks a canonical FQDN against the DNS name grammar.
// A leading "*." wildcard label is accepted.
func ValidateName(fqdn string) error {
	if fqdn == "" || fqdn == "." {
		return fmt.Errorf("%w: empty domain name", domain.ErrInvalidName)
	}
	if !dns.IsFqdn(fqdn) {
		return fmt.Errorf("%w: %s is not fully qualified", domain.ErrInvalidName, fqdn)
	}
	if _, ok := dns.IsDomainName(fqdn); !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvalidName, fqdn)
	}

	labels := dns.SplitDomainName(fqdn)
	for i, label := range labels {
		if label == "*" && i == 0 {
			continue
		}
		if !isValidLabel(label) {
			return fmt.Errorf("%w: bad label %q in %s", domain.ErrInvalidName, label, fqdn)
		}
	}
	return nil
}

// ValidateHostname is ValidateName without wildcard labels, for names that
// appear as record content (CNAME/NS/PTR/MX/SRV targets).
func ValidateHostname(fqdn string) error {
	if strings.HasPrefix(fqdn, "*.") {
		return fmt.Errorf("%w: wildcard not allowed in record content: %s", domain.ErrInvalidContent, fqdn)
	}
	return ValidateName(fqdn)
}

// QualifyName resolves a possibly-relative record name against its zone:
// "@" or empty means the apex, a trailing dot is already absolute, a name
// ending in the zone only needs the dot, anything else is a relative label.
func QualifyName(name, zone string) string {
	name = strings.TrimSpace(name)
	apex := strings.TrimSuffix(zone, ".")
	switch {
	case name == "" || name == "@":
		return zone
	case strings.HasSuffix(name, "."):
		return name
	case strings.EqualFold(name, apex), strings.HasSuffix(strings.ToLower(name), "."+apex):
		return name + "."
	default:
		return name + "." + zone
	}
}

// isValidLabel implements the label grammar as an explicit scanner. The
// rules need positional context (hyphens are interior-only, underscores
// open service labels) that a single RE2 pattern cannot carry, so the
// grammar lives here and callers depend only on this contract.
func isValidLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}

	// Service labels such as _sip or _tcp: underscore prefix, then the
	// ordinary grammar for the remainder.
	body := label
	if body[0] == '_' {
		body = body[1:]
		if len(body) == 0 {
			return false
		}
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
			// Canonical names are lower-cased before validation.
			return false
		case c == '-':
			if i == 0 || i == len(body)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
