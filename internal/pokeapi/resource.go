package pokeapi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ResourceParser extracts the numeric identifier embedded in a resource URL
// of the form <base>/pokemon/<id>/.
//
// The match is anchored and total: the literal base, the pokemon segment, a
// run of decimal digits, a trailing slash, and end of input. URLs that merely
// contain a number somewhere are rejected.
type ResourceParser struct {
	re *regexp.Regexp
}

// NewResourceParser builds a parser for resource URLs under the given API
// base (no trailing slash).
func NewResourceParser(baseURL string) *ResourceParser {
	base := strings.TrimRight(baseURL, "/")
	return &ResourceParser{
		re: regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `/pokemon/([0-9]+)/$`),
	}
}

// ExtractID parses the identifier out of rawURL, failing on any deviation
// from the expected grammar.
func (p *ResourceParser) ExtractID(rawURL string) (int, error) {
	m := p.re.FindStringSubmatch(rawURL)
	if m == nil {
		return 0, fmt.Errorf("resource url %q does not match <base>/pokemon/<id>/", rawURL)
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("resource id in %q: %w", rawURL, err)
	}
	if id < 1 {
		return 0, fmt.Errorf("resource id in %q must be positive", rawURL)
	}
	return id, nil
}
