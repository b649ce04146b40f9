// Package grammar parses and renders ARK URLs per the fixed grammar:
//
//	http://<ResolverHost>/ark:/<NAAN>/<UrlVersion>
//	    [/<ProjectId>
//	        [/<EscapedResourceIdWithCheckDigit>
//	            [.<Timestamp>]
//	        ]
//	    ]
//
// Hyphens in the resource tail are escaped as '=' on the wire; this
// package owns both directions of that transliteration.
package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkerr"
	"github.com/dasch-swiss/ark-resolver/internal/ark/checkdigit"
	"github.com/dasch-swiss/ark-resolver/internal/ark/urlinfo"
)

// SupportedVersion is the only UrlVersion this package accepts.
const SupportedVersion = 1

// timestampPattern is the YYYYMMDDThhmmssNNNNNNNNNZ shape from the ARK URL
// grammar: an 8-digit date, 'T', a 6-digit time, any number of extra digits
// (no separator), and a trailing 'Z'.
const timestampPattern = `[0-9]{8}T[0-9]{6}[0-9]*Z`

// Grammar parses and renders ARK URLs for a specific resolver host and NAAN.
type Grammar struct {
	resolverHost string
	naan         string
	urlRegex     *regexp.Regexp
}

// New builds a Grammar bound to resolverHost and naan, the values that
// appear literally in every ARK URL it parses or formats.
func New(resolverHost, naan string) *Grammar {
	pattern := fmt.Sprintf(
		`^http://%s/ark:/%s/([0-9]+)(?:/([0-9A-F]+)(?:/([A-Za-z0-9_=]+)(?:\.(%s))?)?)?$`,
		regexp.QuoteMeta(resolverHost), regexp.QuoteMeta(naan), timestampPattern,
	)
	return &Grammar{
		resolverHost: resolverHost,
		naan:         naan,
		urlRegex:     regexp.MustCompile(pattern),
	}
}

// Parse matches urlText against the grammar and returns the extracted UrlInfo.
// A non-match, unsupported version, or failing check digit yields an
// *arkerr.MalformedUrlError or *arkerr.BadCheckDigitError.
func (g *Grammar) Parse(urlText string) (urlinfo.UrlInfo, error) {
	match := g.urlRegex.FindStringSubmatch(urlText)
	if match == nil {
		return urlinfo.UrlInfo{}, arkerr.NewMalformedUrlError(fmt.Sprintf("%q does not match the ARK URL grammar", urlText))
	}

	versionText, projectID, escapedTail, timestamp := match[1], match[2], match[3], match[4]

	var version int
	if _, err := fmt.Sscanf(versionText, "%d", &version); err != nil {
		return urlinfo.UrlInfo{}, arkerr.NewMalformedUrlError(fmt.Sprintf("invalid URL version %q", versionText))
	}
	if version != SupportedVersion {
		return urlinfo.UrlInfo{}, arkerr.NewMalformedUrlError(fmt.Sprintf("unsupported URL version %d", version))
	}

	info := urlinfo.UrlInfo{URLVersion: version, ProjectID: projectID}
	if escapedTail == "" {
		return info, nil
	}

	resourceIDWithCheckDigit := Unescape(escapedTail)
	if !checkdigit.IsValid(resourceIDWithCheckDigit) {
		return urlinfo.UrlInfo{}, arkerr.NewBadCheckDigitError(resourceIDWithCheckDigit)
	}

	info.ResourceID = resourceIDWithCheckDigit[:len(resourceIDWithCheckDigit)-1]
	info.Timestamp = timestamp
	return info, nil
}

// Format deterministically renders an ARK URL. escapedTail must already
// have its hyphens escaped to '=' (see Escape); it is not re-escaped here.
func Format(resolverHost, naan, projectID, escapedTail, timestamp string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "http://%s/ark:/%s/%d", resolverHost, naan, SupportedVersion)
	if projectID != "" {
		sb.WriteString("/" + projectID)
		if escapedTail != "" {
			sb.WriteString("/" + escapedTail)
			if timestamp != "" {
				sb.WriteString("." + timestamp)
			}
		}
	}
	return sb.String()
}

// Escape transliterates '-' to '=' in a resource tail, the only place in
// an ARK URL where this substitution applies.
func Escape(s string) string {
	return strings.ReplaceAll(s, "-", "=")
}

// Unescape reverses Escape, transliterating '=' back to '-'.
func Unescape(s string) string {
	return strings.ReplaceAll(s, "=", "-")
}
