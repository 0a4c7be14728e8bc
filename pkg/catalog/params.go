package catalog

import (
	"fmt"
	"strings"
)

// RegionsPath is the public parameter hierarchy listing one parameter per
// AWS region. Its value entries include the sentinel "global", which is not
// a real region.
const RegionsPath = "/aws/service/global-infrastructure/regions"

// RegionServicesPath returns the parameter hierarchy listing the services
// available in one region.
func RegionServicesPath(region string) string {
	return fmt.Sprintf("%s/%s/services", RegionsPath, region)
}

// ServiceEndpointParameter returns the name of the parameter holding the
// endpoint hostname for a service in a region.
func ServiceEndpointParameter(region, service string) string {
	return fmt.Sprintf("%s/%s/services/%s/endpoint", RegionsPath, region, service)
}

// ServiceFromParameter derives the service name from an endpoint parameter
// name: the second-to-last path segment. Returns "" for names too short to
// carry one.
func ServiceFromParameter(name string) string {
	segments := strings.Split(name, "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[len(segments)-2]
}
