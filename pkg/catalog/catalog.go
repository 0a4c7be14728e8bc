package catalog

import (
	"encoding/json"
	"slices"
	"strings"
)

// Endpoint is one resolved (region, service, endpoint URL) triple.
type Endpoint struct {
	Region  string
	Service string
	URL     string
}

// Catalog is the nested region -> service -> endpoint mapping the tool emits.
// Regions that yielded no endpoint do not appear.
type Catalog map[string]map[string]string

// Collect folds endpoint triples into the nested catalog. A later triple for
// the same (region, service) pair overwrites an earlier one.
func Collect(endpoints []Endpoint) Catalog {
	collected := make(Catalog)
	for _, endpoint := range endpoints {
		services, ok := collected[endpoint.Region]
		if !ok {
			services = make(map[string]string)
			collected[endpoint.Region] = services
		}
		services[endpoint.Service] = endpoint.URL
	}
	return collected
}

// RenderJSON serializes the catalog with 4-space indentation and a trailing
// newline. encoding/json emits map keys in sorted order, which matches the
// sorted region and service axes.
func (c Catalog) RenderJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// NormalizeOverrides prepares a user-supplied override list for use as a
// survey axis: entries are trimmed, blanks left behind by stray commas are
// dropped, duplicates are removed and the rest is sorted.
func NormalizeOverrides(entries []string) []string {
	trimmed := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			trimmed = append(trimmed, entry)
		}
	}
	slices.Sort(trimmed)
	return slices.Compact(trimmed)
}
