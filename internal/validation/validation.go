// Package validation provides pure validation functions for DNS record
// fields: hostnames, IPv4 addresses, and record types.
//
// Each function is side-effect-free and returns a typed *Error naming the
// first rule the input violates, so callers can map rules to transport
// semantics without parsing message strings. Checks run in a fixed order
// and the first failure wins.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rule identifies a specific validation rule.
type Rule string

// Hostname rules.
const (
	RuleEmptyHostname    Rule = "empty_hostname"
	RuleTooLong          Rule = "too_long"
	RuleConsecutiveDots  Rule = "consecutive_dots"
	RuleEdgeDot          Rule = "edge_dot"
	RuleLabelTooLong     Rule = "label_too_long"
	RuleLabelInvalidChar Rule = "label_invalid_char"
	RuleLabelEdgeHyphen  Rule = "label_edge_hyphen"
	RuleNoDotSeparator   Rule = "no_dot_separator"
	RuleFormatInvalid    Rule = "format_invalid"
)

// IPv4 rules.
const (
	RuleEmptyIP         Rule = "empty_ip"
	RuleIPv6Unsupported Rule = "ipv6_unsupported"
	RuleIPv4Format      Rule = "ipv4_format"
	RuleIPv4Parse       Rule = "ipv4_parse"
)

// Record type rules.
const (
	RuleUnsupportedType Rule = "unsupported_type"
)

// Error describes a violated validation rule.
type Error struct {
	Rule    Rule
	Message string
}

func (e *Error) Error() string { return e.Message }

const (
	maxHostnameLen = 253
	maxLabelLen    = 63
)

// hostnameRegexp is the final full-string format check: one or more labels
// of alphanumerics and hyphens (no edge hyphens, 1-63 chars) separated by
// dots, ending in an all-letter TLD of length >= 2.
var hostnameRegexp = regexp.MustCompile(
	`^((?:[A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9-]{0,61}[A-Za-z0-9])\.)+[A-Za-z]{2,}$`,
)

// ipv4Regexp matches four dot-separated decimal groups in 0-255. Leading
// zeros pass here and are re-checked by the strict numeric parse.
var ipv4Regexp = regexp.MustCompile(
	`^(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}$`,
)

// validRecordTypes is the complete set of supported record types.
var validRecordTypes = []string{"A", "CNAME"}

// Hostname checks that s complies with DNS naming rules.
func Hostname(s string) error {
	if s == "" {
		return &Error{RuleEmptyHostname, "hostname cannot be empty"}
	}
	if len(s) > maxHostnameLen {
		return &Error{RuleTooLong, fmt.Sprintf("hostname exceeds maximum length of %d characters", maxHostnameLen)}
	}
	if strings.Contains(s, "..") {
		return &Error{RuleConsecutiveDots, "hostname cannot contain consecutive dots"}
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return &Error{RuleEdgeDot, "hostname cannot start or end with a dot"}
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) > maxLabelLen {
			return &Error{RuleLabelTooLong, fmt.Sprintf("label %q exceeds maximum length of %d characters", label, maxLabelLen)}
		}
		for _, c := range label {
			if !isAlphanumeric(c) && c != '-' {
				return &Error{RuleLabelInvalidChar, fmt.Sprintf("label %q contains invalid characters (only alphanumeric and hyphen allowed)", label)}
			}
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return &Error{RuleLabelEdgeHyphen, fmt.Sprintf("label %q cannot start or end with a hyphen", label)}
		}
	}
	if !strings.Contains(s, ".") {
		return &Error{RuleNoDotSeparator, "hostname must include at least one dot separator (domain.tld)"}
	}
	if !hostnameRegexp.MatchString(s) {
		return &Error{RuleFormatInvalid, "hostname format is invalid"}
	}
	return nil
}

// IPv4 checks that s is a syntactically valid IPv4 dotted quad.
// IPv6 is explicitly rejected rather than reported as a format error.
func IPv4(s string) error {
	if s == "" {
		return &Error{RuleEmptyIP, "IP address cannot be empty"}
	}
	if strings.Contains(s, ":") {
		return &Error{RuleIPv6Unsupported, "IPv6 addresses are not supported"}
	}
	if !ipv4Regexp.MatchString(s) {
		return &Error{RuleIPv4Format, "invalid IPv4 address format"}
	}
	// The regex admits leading zeros; the strict numeric parse is the
	// authority and rejects them.
	for _, group := range strings.Split(s, ".") {
		if len(group) > 1 && group[0] == '0' {
			return &Error{RuleIPv4Parse, fmt.Sprintf("invalid IPv4 octet %q", group)}
		}
		n, err := strconv.Atoi(group)
		if err != nil || n < 0 || n > 255 {
			return &Error{RuleIPv4Parse, fmt.Sprintf("invalid IPv4 octet %q", group)}
		}
	}
	return nil
}

// RecordType checks that s is a supported record type, case-insensitively.
// On success it returns the normalized (uppercase) form.
func RecordType(s string) (string, error) {
	if s == "" {
		return "", &Error{RuleUnsupportedType, "record type cannot be empty"}
	}
	normalized := strings.ToUpper(s)
	for _, t := range validRecordTypes {
		if normalized == t {
			return normalized, nil
		}
	}
	return "", &Error{
		RuleUnsupportedType,
		fmt.Sprintf("invalid record type %q, supported types: %s", normalized, strings.Join(validRecordTypes, ", ")),
	}
}

func isAlphanumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
