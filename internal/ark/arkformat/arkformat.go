// Package arkformat builds ARK URLs from repository resource identifiers:
// the native IRI shape, and the legacy numeric id used by the PHP backend.
package arkformat

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkerr"
	"github.com/dasch-swiss/ark-resolver/internal/ark/checkdigit"
	"github.com/dasch-swiss/ark-resolver/internal/ark/grammar"
)

// LegacyIDFactor (K) pads legacy small integers into a consistent alphabet.
// It is a fixed part of the external wire contract and must never change.
const LegacyIDFactor = 982_451_653

var resourceIriRegex = regexp.MustCompile(`^http://rdfh\.ch/([0-9A-F]+)/([A-Za-z0-9_-]+)$`)

// FromResourceIri converts a repository resource IRI (http://rdfh.ch/<ProjectId>/<ResourceId>)
// into its ARK URL form, optionally carrying a version timestamp.
func FromResourceIri(resolverHost, naan, iri, timestamp string) (string, error) {
	match := resourceIriRegex.FindStringSubmatch(iri)
	if match == nil {
		return "", arkerr.NewMalformedUrlError(fmt.Sprintf("invalid resource IRI: %s", iri))
	}
	projectID, resourceID := match[1], match[2]

	digit, err := checkdigit.CalculateCheckDigit(resourceID)
	if err != nil {
		// InvalidCharacter/InvalidCode never escape the check-digit
		// boundary untranslated.
		return "", arkerr.NewMalformedUrlError(fmt.Sprintf("cannot compute check digit for %q: %v", resourceID, err))
	}

	escapedTail := grammar.Escape(resourceID + string(digit))
	return grammar.Format(resolverHost, naan, projectID, escapedTail, timestamp), nil
}

// FromLegacyNumericId converts a legacy PHP resource number and project id
// into its ARK URL form. The pseudo resource id is hex((n+1) * LegacyIDFactor).
func FromLegacyNumericId(resolverHost, naan string, n int64, projectID, timestamp string) (string, error) {
	resourceID := strconv.FormatInt((n+1)*LegacyIDFactor, 16)

	digit, err := checkdigit.CalculateCheckDigit(resourceID)
	if err != nil {
		return "", arkerr.NewMalformedUrlError(fmt.Sprintf("cannot compute check digit for %q: %v", resourceID, err))
	}

	// No hyphens appear in a hex string, so escaping is a no-op here, but
	// applying it keeps this path consistent with FromResourceIri.
	escapedTail := grammar.Escape(resourceID + string(digit))
	return grammar.Format(resolverHost, naan, projectID, escapedTail, timestamp), nil
}
