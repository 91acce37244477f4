// Package extract recovers on-chain addresses from the free-form text that
// external chain tools print. Tools do not share a canonical line format, so
// extraction works from an explicit table of marker phrases: the first line
// (top to bottom) containing any marker wins, and its last whitespace token
// is taken as the address.
package extract

import (
	"strings"

	"tokensmith/internal/services"
)

// Markers enumerates the phrases that identify an address-bearing line.
type Markers []string

var (
	// TokenMarkers match spl-token create-token output.
	TokenMarkers = Markers{"Creating token ", "Token: "}
	// AccountMarkers match spl-token create-account output.
	AccountMarkers = Markers{"Creating account ", "Account: "}
	// MetadataAddressMarkers match spl-token-metadata find output.
	MetadataAddressMarkers = Markers{"Metadata address:"}
)

// Address scans text line by line and returns the last whitespace-delimited
// token of the first line containing any configured marker. Trailing words
// on the matched line are swallowed into the result; that is the documented
// contract, not a defect to smooth over.
func Address(text string, markers Markers) (string, error) {
	for _, line := range strings.Split(text, "\n") {
		if !matchesAny(line, markers) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return fields[len(fields)-1], nil
	}
	return "", services.Wrap(services.ErrExtraction, "extract", "scan", "no line matched any marker phrase", nil)
}

func matchesAny(line string, markers Markers) bool {
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
